package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"hotel_compare/internal/catalog"
	"hotel_compare/internal/domain"
	"hotel_compare/internal/pricing"
	"hotel_compare/internal/search"
)

type QueryService struct {
	cat      *catalog.Catalog
	engine   *search.Engine
	prices   *pricing.Synthesizer
	cache    domain.Cache
	cacheTTL time.Duration
	latency  time.Duration
}

// NewQueryService wires the read side. latency is an artificial delay applied
// before search and detail lookups; zero disables it.
func NewQueryService(cat *catalog.Catalog, eng *search.Engine, ps *pricing.Synthesizer, c domain.Cache, ttl, latency time.Duration) *QueryService {
	return &QueryService{cat: cat, engine: eng, prices: ps, cache: c, cacheTTL: ttl, latency: latency}
}

// ResultsKeyPrefix prefixes every cached search result.
const ResultsKeyPrefix = "results:"

type searchKey struct {
	Location string               `json:"l"`
	Filters  domain.SearchFilters `json:"f"`
	SortBy   domain.SortKey       `json:"s"`
}

func cacheKey(location string, f domain.SearchFilters, sortBy domain.SortKey) string {
	b, _ := json.Marshal(searchKey{Location: location, Filters: f, SortBy: domain.ParseSortKey(string(sortBy))})
	sum := sha1.Sum(b)
	return ResultsKeyPrefix + hex.EncodeToString(sum[:])
}

// Search runs the engine with cache-aside. The catalog never changes after
// startup, so cached entries only expire by TTL.
func (s *QueryService) Search(ctx context.Context, location string, f domain.SearchFilters, sortBy domain.SortKey) ([]domain.Hotel, error) {
	if !sleepCtx(ctx, s.latency) {
		return nil, ctx.Err()
	}

	key := cacheKey(location, f, sortBy)
	var out []domain.Hotel
	if s.cache != nil {
		if ok, err := s.cache.Get(ctx, key, &out); err == nil && ok {
			return out, nil
		}
	}

	// A failed read may leave out partly decoded.
	out = s.engine.Search(location, f, sortBy)
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// SearchParams is Search over a full params value.
func (s *QueryService) SearchParams(ctx context.Context, p domain.SearchParams) ([]domain.Hotel, error) {
	return s.Search(ctx, p.Location, p.Filters, p.SortBy)
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	if !sleepCtx(ctx, s.latency) {
		return domain.Hotel{}, ctx.Err()
	}
	h, ok := s.cat.ByID(id)
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

// PriceOptions is never cached: every call draws fresh offers.
func (s *QueryService) PriceOptions(ctx context.Context, id string) ([]domain.PriceOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.prices.Options(id), nil
}

func (s *QueryService) Suggest(query string) []domain.Location { return catalog.Suggest(query) }

func (s *QueryService) Destinations() []domain.Location { return catalog.Destinations() }

// sleepCtx waits for d or returns false early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
