package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_compare/internal/catalog"
	"hotel_compare/internal/domain"
	"hotel_compare/internal/search"
)

func matcher() *search.AmenityMatcher {
	return search.NewAmenityMatcher(catalog.New(catalog.Seed()).Amenities())
}

func TestIntentPatch_PriceOperators(t *testing.T) {
	cases := []struct {
		op       domain.Operator
		min, max *int
	}{
		{domain.OpGreater, ip(200), nil},
		{domain.OpLower, nil, ip(200)},
		{domain.OpEqual, ip(200), ip(200)},
		{domain.OpNone, nil, ip(200)},
	}
	for _, c := range cases {
		t.Run(string(c.op), func(t *testing.T) {
			patch := search.IntentPatch(domain.Intent{Price: ip(200), PriceOperator: c.op}, nil)
			require.NotNil(t, patch.Filters)

			got := search.ApplyParams(domain.DefaultParams(), patch).Filters
			assert.Equal(t, c.min, got.MinPrice)
			assert.Equal(t, c.max, got.MaxPrice)
		})
	}
}

func TestIntentPatch_RatingToStars(t *testing.T) {
	cases := []struct {
		rating float64
		op     domain.Operator
		want   []int
	}{
		{4, domain.OpGreater, []int{4, 5}},
		{3.5, domain.OpGreater, []int{4, 5}},
		{3, domain.OpLower, []int{1, 2, 3}},
		{4, domain.OpEqual, []int{4}},
		{4.4, domain.OpNone, []int{4}},
		{9, domain.OpGreater, []int{5}},
		{0, domain.OpLower, []int{1}},
	}
	for _, c := range cases {
		patch := search.IntentPatch(domain.Intent{Rating: fp(c.rating), RatingOperator: c.op}, nil)
		require.NotNil(t, patch.Filters)
		assert.Equal(t, c.want, patch.Filters.Stars, "rating %v %s", c.rating, c.op)
	}
}

func TestIntentPatch_CityAlwaysReplaced(t *testing.T) {
	p := domain.DefaultParams()
	p.Location = "Paris"

	got := search.ApplyParams(p, search.IntentPatch(domain.Intent{}, nil))
	assert.Equal(t, "", got.Location)
	assert.Equal(t, p.Filters, got.Filters, "no filter fields in the intent")

	got = search.ApplyParams(p, search.IntentPatch(domain.Intent{City: "Tokyo"}, nil))
	assert.Equal(t, "Tokyo", got.Location)
}

func TestIntentPatch_AmenitiesNormalized(t *testing.T) {
	patch := search.IntentPatch(domain.Intent{Amenities: []string{"WiFi", "Spa", "Jacuzzi"}}, matcher())
	require.NotNil(t, patch.Filters)
	assert.Equal(t, []string{"Free WiFi", "Spa"}, patch.Filters.Amenities)
}

func TestIntentPatch_EndToEnd(t *testing.T) {
	cat := catalog.Build(catalog.DefaultGenerated, catalog.NewRand(4))
	e := search.NewEngine(cat)
	m := search.NewAmenityMatcher(cat.Amenities())

	in := domain.Intent{
		City:           "Miami",
		Price:          ip(400),
		PriceOperator:  domain.OpLower,
		Rating:         fp(4),
		RatingOperator: domain.OpGreater,
		Amenities:      []string{"spa"},
	}
	p := search.ApplyParams(domain.DefaultParams(), search.IntentPatch(in, m))
	got := e.Search(p.Location, p.Filters, p.SortBy)

	require.Len(t, got, 1)
	assert.Equal(t, "hotel-3", got[0].ID)
}
