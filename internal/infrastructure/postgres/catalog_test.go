package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishly/backend/internal/domain"
	"github.com/furnishly/backend/internal/infrastructure/cache"
)

func TestBuildNameQuery(t *testing.T) {
	t.Run("brand lookup has no published filter", func(t *testing.T) {
		sql := buildNameQuery("brands", false)
		assert.Equal(t, `SELECT DISTINCT id, name FROM "brands" WHERE name ILIKE $1 LIMIT 10`, sql)
	})

	t.Run("product lookup filters on isPublished", func(t *testing.T) {
		sql := buildNameQuery("products", true)
		assert.Equal(t, `SELECT DISTINCT id, name FROM "products" WHERE name ILIKE $1 AND "isPublished" = TRUE LIMIT 10`, sql)
	})

	t.Run("table names are quoted", func(t *testing.T) {
		sql := buildNameQuery(`odd"table`, false)
		assert.Contains(t, sql, `"odd""table"`)
	})
}

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mod", "mod"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`c:\dir`, `c:\\dir`},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLikePattern(tt.in), "input %q", tt.in)
	}
}

func TestCacheKey(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		assert.Equal(t, "catalog:products:modern sofa", cacheKey("products", "  Modern   SOFA "))
	})

	t.Run("distinct tables get distinct keys", func(t *testing.T) {
		assert.NotEqual(t, cacheKey("products", "mod"), cacheKey("brands", "mod"))
	})
}

func TestFetchNamesCacheHit(t *testing.T) {
	ctx := context.Background()
	memory := cache.NewMemory()

	// Unreachable database; a cache hit must short-circuit before any dial
	catalog := NewCatalog(ctx, Config{
		Host:         "127.0.0.1",
		Port:         1,
		User:         "nobody",
		Password:     "nothing",
		Name:         "missing",
		BrandTable:   "brands",
		ProductTable: "products",
	}, memory, time.Hour)
	defer catalog.Close()

	cached := []domain.NameRecord{{ID: "9", Name: "Modulo"}}
	require.NoError(t, memory.Set(ctx, cacheKey("brands", "mod"), cached, time.Hour))

	records, err := catalog.FetchBrandNames(ctx, "mod")
	require.NoError(t, err)
	assert.Equal(t, cached, records)
}
