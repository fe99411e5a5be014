package domain

import (
	"strings"
	"time"
)

type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortRating      SortKey = "rating"
	SortDistance    SortKey = "distance"
)

// ParseSortKey maps a client value onto a known key. Unknown or empty values
// fall back to SortRecommended.
func ParseSortKey(s string) SortKey {
	switch strings.TrimSpace(s) {
	case "price-low", "priceLowToHigh":
		return SortPriceLow
	case "price-high", "priceHighToLow":
		return SortPriceHigh
	case "rating":
		return SortRating
	case "distance":
		return SortDistance
	default:
		return SortRecommended
	}
}

// SearchFilters is a conjunction of independent constraints. Nil bounds and
// empty sets impose no constraint.
type SearchFilters struct {
	MinPrice      *int     `json:"minPrice,omitempty"`
	MaxPrice      *int     `json:"maxPrice,omitempty"`
	Stars         []int    `json:"stars"`
	PropertyTypes []string `json:"propertyTypes"`
	Amenities     []string `json:"amenities"` // all must be present
	Distance      *float64 `json:"distance,omitempty"`
}

func DefaultFilters() SearchFilters {
	lo, hi := 0, 500
	return SearchFilters{
		MinPrice:      &lo,
		MaxPrice:      &hi,
		Stars:         []int{},
		PropertyTypes: []string{},
		Amenities:     []string{},
	}
}

type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Rooms    int `json:"rooms"`
}

// SearchParams is the full state of a search form. Dates and guests are
// carried for display; filtering only looks at Location, Filters and SortBy.
type SearchParams struct {
	Location string        `json:"location"`
	CheckIn  *time.Time    `json:"checkIn,omitempty"`
	CheckOut *time.Time    `json:"checkOut,omitempty"`
	Guests   *Guests       `json:"guests,omitempty"`
	Filters  SearchFilters `json:"filters"`
	SortBy   SortKey       `json:"sortBy"`
}

func DefaultParams() SearchParams {
	return SearchParams{
		Guests:  &Guests{Adults: 2, Children: 0, Rooms: 1},
		Filters: DefaultFilters(),
		SortBy:  SortRecommended,
	}
}

// FiltersPatch sets only the fields it carries. A nil slice keeps the current
// value, a non-nil (possibly empty) slice replaces it.
type FiltersPatch struct {
	MinPrice      *int     `json:"minPrice,omitempty"`
	MaxPrice      *int     `json:"maxPrice,omitempty"`
	ClearPrice    bool     `json:"clearPrice,omitempty"` // drop both bounds before applying Min/Max
	Stars         []int    `json:"stars,omitempty"`
	PropertyTypes []string `json:"propertyTypes,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Distance      *float64 `json:"distance,omitempty"`
	ClearDistance bool     `json:"clearDistance,omitempty"`
}

type ParamsPatch struct {
	Location *string       `json:"location,omitempty"`
	CheckIn  *time.Time    `json:"checkIn,omitempty"`
	CheckOut *time.Time    `json:"checkOut,omitempty"`
	Guests   *Guests       `json:"guests,omitempty"`
	Filters  *FiltersPatch `json:"filters,omitempty"`
	SortBy   *SortKey      `json:"sortBy,omitempty"`
}
