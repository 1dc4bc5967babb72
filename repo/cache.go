package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/777sanket/LinkManager-Backend/model"
	"github.com/777sanket/LinkManager-Backend/shared"
)

const linkCacheTTL = 15 * time.Minute

func linkCacheKey(code string) string {
	return "link:" + code
}

// CachedLinkStore is a cache-aside layer over LinkRepo for the redirect hot
// path. Lookups go through redis; counter increments always hit postgres so
// the atomic increment stays authoritative. Cache failures degrade to the
// database silently.
type CachedLinkStore struct {
	repo  *LinkRepo
	cache *shared.CacheClient
}

func NewCachedLinkStore(repo *LinkRepo, cache *shared.CacheClient) *CachedLinkStore {
	return &CachedLinkStore{repo: repo, cache: cache}
}

func (s *CachedLinkStore) FindByShortCode(ctx context.Context, code string) (*model.Link, error) {
	if raw, err := s.cache.Get(ctx, linkCacheKey(code)); err == nil {
		var link model.Link
		if err := json.Unmarshal([]byte(raw), &link); err == nil {
			return &link, nil
		}
	}

	link, err := s.repo.FindByShortCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(link); err == nil {
		_ = s.cache.Set(ctx, linkCacheKey(code), raw, linkCacheTTL)
	}
	return link, nil
}

func (s *CachedLinkStore) IncrementClicks(ctx context.Context, linkID uint) (int64, error) {
	return s.repo.IncrementClicks(ctx, linkID)
}

// Invalidate drops the cached entry after an edit or delete.
func (s *CachedLinkStore) Invalidate(ctx context.Context, code string) {
	_ = s.cache.Del(ctx, linkCacheKey(code))
}
