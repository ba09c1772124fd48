package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishly/backend/config"
	"github.com/furnishly/backend/internal/domain"
	"github.com/furnishly/backend/internal/matching"
	"github.com/furnishly/backend/internal/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeCatalog avoids a live database in handler tests.
type fakeCatalog struct {
	products []domain.NameRecord
	brands   []domain.NameRecord
}

func (f *fakeCatalog) FetchProductNames(_ context.Context, _ string) ([]domain.NameRecord, error) {
	return f.products, nil
}

func (f *fakeCatalog) FetchBrandNames(_ context.Context, _ string) ([]domain.NameRecord, error) {
	return f.brands, nil
}

func testRouter(catalog domain.CatalogRepository) *gin.Engine {
	extractor := matching.NewFeatureExtractor(matching.NewLexicon(), matching.Config{})
	parser := usecase.NewParserService(
		usecase.NewProductTypeService(false),
		extractor,
		usecase.NewClassificationService(),
		usecase.NewPriceService(),
		false,
	)
	suggester := usecase.NewSuggestionService(catalog, false)
	handler := NewHandler(parser, suggester)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment:    "test",
			AllowedOrigins: []string{"*"},
		},
		RateLimit: config.RateLimitConfig{PerIP: 1000},
	}
	return SetupRouter(cfg, handler)
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(&fakeCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "query-parser-api", body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAnalyzeQuery(t *testing.T) {
	router := testRouter(&fakeCatalog{})

	t.Run("parses a rich query end to end", func(t *testing.T) {
		w := postJSON(router, "/query/analyze",
			`{"query": "modern l-shaped lether sofa with metal legs under 500"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success        bool                 `json:"success"`
			Result         *domain.ParserResult `json:"result"`
			ProcessingTime string               `json:"processing_time"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.ProcessingTime)

		require.NotNil(t, body.Result)
		assert.Equal(t, []string{"Sofa"}, body.Result.ProductType)
		assert.Contains(t, body.Result.Features, "metal legs")
		assert.Contains(t, body.Result.Features, "l shape")
		assert.Contains(t, body.Result.Features, "leather")
		assert.Equal(t, 1.0, body.Result.ConfidenceScore)

		require.NotNil(t, body.Result.PriceRange)
		require.NotNil(t, body.Result.PriceRange.Max)
		assert.Equal(t, 500.0, *body.Result.PriceRange.Max)
		assert.Equal(t, "EUR", body.Result.PriceRange.Currency)

		assert.Equal(t, "modern l-shaped lether sofa with metal legs under 500", body.Result.OriginalQuery)
	})

	t.Run("misspelled product type yields a suggested query", func(t *testing.T) {
		w := postJSON(router, "/query/analyze", `{"query": "green sofaa"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Result *domain.ParserResult `json:"result"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Result)
		require.NotNil(t, body.Result.SuggestedQuery)
		assert.Equal(t, "green sofa", *body.Result.SuggestedQuery)
		assert.Equal(t, []string{"Sofa"}, body.Result.ProductType)
		assert.InDelta(t, 0.8, body.Result.ConfidenceScore, 1e-9)
	})

	t.Run("unmatchable query degrades to empty fields", func(t *testing.T) {
		w := postJSON(router, "/query/analyze", `{"query": "xyzzy"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Result *domain.ParserResult `json:"result"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Result)
		assert.Empty(t, body.Result.ProductType)
		assert.Empty(t, body.Result.Features)
		assert.Nil(t, body.Result.PriceRange)
		assert.Zero(t, body.Result.ConfidenceScore)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		w := postJSON(router, "/query/analyze", `{"query": "   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "query is required"}`, w.Body.String())
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		w := postJSON(router, "/query/analyze", `{"query":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSuggestQuery(t *testing.T) {
	catalog := &fakeCatalog{
		products: []domain.NameRecord{{ID: "1", Name: "Modena Sofa"}},
		brands:   []domain.NameRecord{{ID: "7", Name: "Modulo"}},
	}
	router := testRouter(catalog)

	t.Run("returns products, brands and styles", func(t *testing.T) {
		w := postJSON(router, "/query/suggestion", `{"query": "mod"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.SuggestionResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, catalog.products, result.ProductName)
		assert.Equal(t, catalog.brands, result.BrandName)
		assert.Equal(t, []string{"Modern"}, result.Styles)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		w := postJSON(router, "/query/suggestion", `{"query": ""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2.50 ms", formatDuration(2500*time.Microsecond))
	assert.Equal(t, "1.50 sec", formatDuration(1500*time.Millisecond))
}
