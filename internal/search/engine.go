package search

import (
	"sort"
	"strings"

	"hotel_compare/internal/catalog"
	"hotel_compare/internal/domain"
)

// Engine filters and orders the catalog. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	cat *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine { return &Engine{cat: cat} }

// Score is the recommended ranking value. One rating point weighs as much as
// 1000 units of price.
func Score(h domain.Hotel) float64 {
	return h.Rating.Score*10 - float64(h.Price.Current)/100
}

type predicate func(domain.Hotel) bool

// Search returns the hotels matching every filter, ordered by sortBy. Nil
// bounds, empty sets and an empty location impose no constraint. The location
// is matched as given, so surrounding spaces are significant. Ties keep
// catalog order.
func (e *Engine) Search(location string, f domain.SearchFilters, sortBy domain.SortKey) []domain.Hotel {
	preds := predicates(location, f)
	out := []domain.Hotel{}
next:
	for _, h := range e.cat.All() {
		for _, p := range preds {
			if !p(h) {
				continue next
			}
		}
		out = append(out, h)
	}
	sort.SliceStable(out, less(out, sortBy))
	return out
}

func predicates(location string, f domain.SearchFilters) []predicate {
	var ps []predicate

	if location != "" {
		loc := strings.ToLower(location)
		ps = append(ps, func(h domain.Hotel) bool {
			return strings.Contains(strings.ToLower(h.Location.City), loc) ||
				strings.Contains(strings.ToLower(h.Location.Country), loc)
		})
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		lo, hi := f.MinPrice, f.MaxPrice
		ps = append(ps, func(h domain.Hotel) bool {
			p := h.Price.Current
			return (lo == nil || p >= *lo) && (hi == nil || p <= *hi)
		})
	}
	if len(f.Stars) > 0 {
		set := make(map[int]struct{}, len(f.Stars))
		for _, s := range f.Stars {
			set[s] = struct{}{}
		}
		ps = append(ps, func(h domain.Hotel) bool {
			_, ok := set[h.Stars]
			return ok
		})
	}
	if len(f.PropertyTypes) > 0 {
		set := make(map[string]struct{}, len(f.PropertyTypes))
		for _, t := range f.PropertyTypes {
			set[t] = struct{}{}
		}
		ps = append(ps, func(h domain.Hotel) bool {
			_, ok := set[h.PropertyType]
			return ok
		})
	}
	if len(f.Amenities) > 0 {
		want := f.Amenities
		ps = append(ps, func(h domain.Hotel) bool {
			for _, a := range want {
				if !h.HasAmenity(a) {
					return false
				}
			}
			return true
		})
	}
	if f.Distance != nil {
		limit := *f.Distance
		ps = append(ps, func(h domain.Hotel) bool { return h.DistanceFromCenter <= limit })
	}
	return ps
}

func less(hs []domain.Hotel, key domain.SortKey) func(i, j int) bool {
	switch key {
	case domain.SortPriceLow:
		return func(i, j int) bool { return hs[i].Price.Current < hs[j].Price.Current }
	case domain.SortPriceHigh:
		return func(i, j int) bool { return hs[i].Price.Current > hs[j].Price.Current }
	case domain.SortRating:
		return func(i, j int) bool { return hs[i].Rating.Score > hs[j].Rating.Score }
	case domain.SortDistance:
		return func(i, j int) bool { return hs[i].DistanceFromCenter < hs[j].DistanceFromCenter }
	default:
		return func(i, j int) bool { return Score(hs[i]) > Score(hs[j]) }
	}
}
