package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_compare/internal/catalog"
)

func TestGenerate_Shape(t *testing.T) {
	seed := catalog.Seed()
	out := catalog.Generate(seed, 45, catalog.NewRand(7))
	require.Len(t, out, 45)

	cities := []string{"London", "Paris", "Tokyo", "Rome", "Barcelona", "Berlin", "Sydney", "Dubai", "India"}
	types := []string{"Hotel", "Resort", "Apartment", "Guesthouse", "Villa", "Inn", "Hostel"}

	for i, h := range out {
		base := seed[i%len(seed)]
		assert.Equal(t, fmt.Sprintf("hotel-%d", i+6), h.ID)
		assert.Equal(t, cities[i%len(cities)], h.Location.City)
		assert.Equal(t, base.Location.Country, h.Location.Country, "country kept from seed")
		assert.Equal(t, base.Location.Address, h.Location.Address)
		assert.Equal(t, types[i%len(types)], h.PropertyType)
		assert.Equal(t, fmt.Sprintf("%s %s %d", cities[i%len(cities)], types[i%len(types)], i+1), h.Name)
		assert.Equal(t, base.Amenities, h.Amenities)

		assert.GreaterOrEqual(t, h.Stars, 1)
		assert.LessOrEqual(t, h.Stars, 5)
		assert.GreaterOrEqual(t, h.Price.Base, 150)
		assert.Less(t, h.Price.Base, 500)
		assert.GreaterOrEqual(t, h.Price.Current, 150)
		assert.Less(t, h.Price.Current, 450)
		assert.GreaterOrEqual(t, h.Price.TaxesAndFees, 20)
		assert.Less(t, h.Price.TaxesAndFees, 70)
		if h.Price.Discount != nil {
			assert.GreaterOrEqual(t, *h.Price.Discount, 0)
			assert.Less(t, *h.Price.Discount, 30)
		}
		assert.GreaterOrEqual(t, h.DistanceFromCenter, 0.0)
		assert.Less(t, h.DistanceFromCenter, 5.0)
		assert.GreaterOrEqual(t, h.Rating.Score, 6.0)
		assert.Less(t, h.Rating.Score, 10.0)
		assert.Equal(t, "Good", h.Rating.Category)
	}
}

func TestGenerate_SameSeedSameCatalog(t *testing.T) {
	a := catalog.Generate(catalog.Seed(), 20, catalog.NewRand(42))
	b := catalog.Generate(catalog.Seed(), 20, catalog.NewRand(42))
	assert.Equal(t, a, b)

	c := catalog.Generate(catalog.Seed(), 20, catalog.NewRand(43))
	assert.NotEqual(t, a, c)
}

func TestGenerate_DoesNotTouchSeed(t *testing.T) {
	seed := catalog.Seed()
	out := catalog.Generate(seed, 10, catalog.NewRand(1))

	out[0].Amenities[0] = "mutated"
	out[0].Deals.SpecialOffer = "mutated"

	assert.Equal(t, catalog.Seed(), seed)
}

func TestGenerate_EmptyInputs(t *testing.T) {
	assert.Empty(t, catalog.Generate(nil, 5, catalog.NewRand(1)))
	assert.Empty(t, catalog.Generate(catalog.Seed(), 0, catalog.NewRand(1)))
}
