// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"card_backend/internal/feature/catalog/domain/entity"
	"card_backend/internal/feature/catalog/usecase"
)

// CachingLookupRepository decorates a catalog CardRepository with Redis caching
// for the filter lookup lists (set names, rarities, supertypes). These lists
// change only when new cards are seeded, so they are the cheapest wins to cache.
// Card pages and details always go to the database.
type CachingLookupRepository struct {
	inner     usecase.CardRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingLookupRepositoryがCardRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CardRepository = (*CachingLookupRepository)(nil)

// NewCachingLookupRepository decorates a CardRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "catalog".
func NewCachingLookupRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CardRepository, namespace string) *CachingLookupRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "catalog"
	}
	return &CachingLookupRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListPage is a pass-through; paginated pages are too query-specific to cache well.
func (c *CachingLookupRepository) ListPage(ctx context.Context, filter usecase.CardFilter, limit, offset int) (entity.CardPage, error) {
	return c.inner.ListPage(ctx, filter, limit, offset)
}

// FindByID is a pass-through.
func (c *CachingLookupRepository) FindByID(ctx context.Context, id string) (*entity.CardDetail, error) {
	return c.inner.FindByID(ctx, id)
}

// ListSetNames returns the distinct set names, cached under <namespace>:sets.
func (c *CachingLookupRepository) ListSetNames(ctx context.Context) ([]string, error) {
	return c.cachedList(ctx, "sets", c.inner.ListSetNames)
}

// ListRarities returns the distinct rarities, cached under <namespace>:rarities.
func (c *CachingLookupRepository) ListRarities(ctx context.Context) ([]string, error) {
	return c.cachedList(ctx, "rarities", c.inner.ListRarities)
}

// ListSupertypes returns the distinct supertypes, cached under <namespace>:supertypes.
func (c *CachingLookupRepository) ListSupertypes(ctx context.Context) ([]string, error) {
	return c.cachedList(ctx, "supertypes", c.inner.ListSupertypes)
}

// cachedList retrieves one lookup list, checking cache first then falling back
// to the database.
func (c *CachingLookupRepository) cachedList(ctx context.Context, kind string, load func(ctx context.Context) ([]string, error)) ([]string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load(ctx)
	}

	key := c.cacheKey(kind)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []string
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for one lookup list.
func (c *CachingLookupRepository) cacheKey(kind string) string {
	return fmt.Sprintf("%s:%s", c.namespace, kind)
}
