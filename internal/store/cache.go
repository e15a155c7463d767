package store

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
)

const listCacheKey = "cases:list"

// CachedStore decorates a Store with an in-memory read cache. Cached
// entries hold marshaled JSON rather than live slices, so callers can
// mutate what they get back without poisoning later reads. Any append
// flushes the cache.
type CachedStore struct {
	inner Store
	cache *gocache.Cache
}

// NewCachedStore wraps inner with a read cache using the given TTL and
// cleanup interval.
func NewCachedStore(inner Store, ttl, cleanupInterval time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &CachedStore{
		inner: inner,
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// AppendCase writes through to the backend and invalidates the cache.
func (s *CachedStore) AppendCase(ctx context.Context, rec model.CaseRecord) error {
	if err := s.inner.AppendCase(ctx, rec); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

// ListCases serves the registry from cache when possible.
func (s *CachedStore) ListCases(ctx context.Context) ([]model.CaseRecord, error) {
	if val, found := s.cache.Get(listCacheKey); found {
		var cases []model.CaseRecord
		if err := json.Unmarshal(val.([]byte), &cases); err == nil {
			return cases, nil
		}
		s.cache.Delete(listCacheKey)
	}

	cases, err := s.inner.ListCases(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(cases); err == nil {
		s.cache.Set(listCacheKey, data, gocache.DefaultExpiration)
	}
	return cases, nil
}

// GetCase serves single records from cache when possible.
func (s *CachedStore) GetCase(ctx context.Context, id string) (model.CaseRecord, error) {
	key := "case:" + id
	if val, found := s.cache.Get(key); found {
		var rec model.CaseRecord
		if err := json.Unmarshal(val.([]byte), &rec); err == nil {
			return rec, nil
		}
		s.cache.Delete(key)
	}

	rec, err := s.inner.GetCase(ctx, id)
	if err != nil {
		return model.CaseRecord{}, err
	}
	if data, err := json.Marshal(rec); err == nil {
		s.cache.Set(key, data, gocache.DefaultExpiration)
	}
	return rec, nil
}

// StoreReport passes through; reports are write-only from the cache's
// point of view.
func (s *CachedStore) StoreReport(ctx context.Context, report model.PersonalizedReport) (string, error) {
	return s.inner.StoreReport(ctx, report)
}

// Close closes the backend.
func (s *CachedStore) Close() error {
	return s.inner.Close()
}

// Unwrap exposes the backend store, mainly for tests.
func (s *CachedStore) Unwrap() Store {
	return s.inner
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*CachedStore)(nil)
)
