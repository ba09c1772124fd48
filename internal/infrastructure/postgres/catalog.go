package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furnishly/backend/internal/domain"
)

// maxSuggestions caps every catalog lookup.
const maxSuggestions = 10

// Config holds connection settings for the catalog database.
type Config struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	BrandTable   string
	ProductTable string
	PoolMinConns int32
	PoolMaxConns int32
}

// Catalog serves brand and product name lookups from Postgres. Queries run
// on a bounded connection pool; when the pool cannot be created or fails, a
// direct unpooled connection is dialed per query. Results sit behind the
// injected TTL cache.
type Catalog struct {
	pool         *pgxpool.Pool
	connString   string
	cache        domain.CacheRepository
	cacheTTL     time.Duration
	brandTable   string
	productTable string
}

// NewCatalog connects the catalog repository. Pool initialization failure is
// not fatal: the repository falls back to direct connections and logs the
// degradation.
func NewCatalog(ctx context.Context, cfg Config, cache domain.CacheRepository, cacheTTL time.Duration) *Catalog {
	connString := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)

	c := &Catalog{
		connString:   connString,
		cache:        cache,
		cacheTTL:     cacheTTL,
		brandTable:   cfg.BrandTable,
		productTable: cfg.ProductTable,
	}

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		log.Printf("[CATALOG] invalid pool config, using direct connections: %v", err)
		return c
	}
	poolCfg.MinConns = cfg.PoolMinConns
	poolCfg.MaxConns = cfg.PoolMaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Printf("[CATALOG] pool init failed, using direct connections: %v", err)
		return c
	}

	c.pool = pool
	log.Printf("[CATALOG] connection pool ready (min=%d max=%d)", cfg.PoolMinConns, cfg.PoolMaxConns)
	return c
}

// Close releases the connection pool.
func (c *Catalog) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

// FetchBrandNames returns brands whose name starts with the prefix.
func (c *Catalog) FetchBrandNames(ctx context.Context, prefix string) ([]domain.NameRecord, error) {
	return c.fetchNames(ctx, c.brandTable, prefix, false)
}

// FetchProductNames returns published products whose name starts with the
// prefix.
func (c *Catalog) FetchProductNames(ctx context.Context, prefix string) ([]domain.NameRecord, error) {
	return c.fetchNames(ctx, c.productTable, prefix, true)
}

// fetchNames runs one prefix lookup: cache first, then the database.
func (c *Catalog) fetchNames(ctx context.Context, table, prefix string, publishedOnly bool) ([]domain.NameRecord, error) {
	key := cacheKey(table, prefix)
	if value, err := c.cache.Get(ctx, key); err == nil {
		if records, ok := value.([]domain.NameRecord); ok {
			return records, nil
		}
	}

	records, err := c.queryNames(ctx, table, prefix, publishedOnly)
	if err != nil {
		return nil, err
	}

	// Best effort; a failed cache write never fails the lookup
	if err := c.cache.Set(ctx, key, records, c.cacheTTL); err != nil {
		log.Printf("[CATALOG] cache write failed for %s: %v", key, err)
	}

	log.Printf("[CATALOG] fetched %d rows from %s for prefix %q", len(records), table, prefix)
	return records, nil
}

// queryNames executes the prefix query on the pool, falling back to a direct
// connection when the pool is absent or erroring.
func (c *Catalog) queryNames(ctx context.Context, table, prefix string, publishedOnly bool) ([]domain.NameRecord, error) {
	sql := buildNameQuery(table, publishedOnly)
	pattern := escapeLikePattern(prefix) + "%"

	if c.pool != nil {
		rows, err := c.pool.Query(ctx, sql, pattern)
		if err == nil {
			return collectNames(rows)
		}
		log.Printf("[CATALOG] pooled query failed, falling back to direct connection: %v", err)
	}

	conn, err := pgx.Connect(ctx, c.connString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseUnavailable, err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, sql, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogQueryFailed, err)
	}
	return collectNames(rows)
}

// collectNames scans result rows, dropping any with a null identifier.
func collectNames(rows pgx.Rows) ([]domain.NameRecord, error) {
	defer rows.Close()

	records := []domain.NameRecord{}
	for rows.Next() {
		var id interface{}
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogQueryFailed, err)
		}
		if id == nil {
			continue
		}
		records = append(records, domain.NameRecord{
			ID:   fmt.Sprint(id),
			Name: name,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogQueryFailed, err)
	}
	return records, nil
}

// buildNameQuery renders the prefix lookup for a table. The table name comes
// from configuration, never from user input, and is still quoted through
// pgx.Identifier.
func buildNameQuery(table string, publishedOnly bool) string {
	sql := fmt.Sprintf(`SELECT DISTINCT id, name FROM %s WHERE name ILIKE $1`, pgx.Identifier{table}.Sanitize())
	if publishedOnly {
		sql += ` AND "isPublished" = TRUE`
	}
	return fmt.Sprintf("%s LIMIT %d", sql, maxSuggestions)
}

// escapeLikePattern escapes LIKE metacharacters in the user prefix.
func escapeLikePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// cacheKey normalizes the prefix into a stable cache key.
func cacheKey(table, prefix string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(prefix)), " ")
	return fmt.Sprintf("catalog:%s:%s", table, normalized)
}
