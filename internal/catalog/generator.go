package catalog

import (
	"fmt"
	"math/rand/v2"

	"hotel_compare/internal/domain"
)

// Rotations are cycled independently by generation index.
var (
	cityRotation = []string{"London", "Paris", "Tokyo", "Rome", "Barcelona", "Berlin", "Sydney", "Dubai", "India"}
	typeRotation = []string{"Hotel", "Resort", "Apartment", "Guesthouse", "Villa", "Inn", "Hostel"}
)

// PropertyTypes lists every property type the catalog can contain.
func PropertyTypes() []string {
	return append([]string(nil), typeRotation...)
}

// NewRand returns the random source used for catalog generation. Equal seeds
// give equal catalogs.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate produces count synthetic hotels cloned from seed[i%len(seed)].
// The seed slice and its nested slices are never modified.
//
// Current price is drawn independently of the base price, so a generated
// hotel can show a "discounted" price above its base.
func Generate(seed []domain.Hotel, count int, rng *rand.Rand) []domain.Hotel {
	if len(seed) == 0 || count <= 0 {
		return []domain.Hotel{}
	}
	out := make([]domain.Hotel, 0, count)
	for i := 0; i < count; i++ {
		h := clone(seed[i%len(seed)])
		city := cityRotation[i%len(cityRotation)]
		kind := typeRotation[i%len(typeRotation)]

		h.ID = fmt.Sprintf("hotel-%d", len(seed)+i+1)
		h.Name = fmt.Sprintf("%s %s %d", city, kind, i+1)
		h.Location.City = city
		h.Stars = 1 + rng.IntN(5)
		h.Price = domain.Price{
			Base:    150 + rng.IntN(350),
			Current: 150 + rng.IntN(300),
		}
		if rng.Float64() > 0.5 {
			d := rng.IntN(30)
			h.Price.Discount = &d
		}
		h.Price.TaxesAndFees = 20 + rng.IntN(50)
		h.Rating = domain.Rating{
			Score:    6 + rng.Float64()*4,
			Count:    500 + rng.IntN(3000),
			Category: "Good",
		}
		h.PropertyType = kind
		h.DistanceFromCenter = rng.Float64() * 5
		out = append(out, h)
	}
	return out
}

func clone(h domain.Hotel) domain.Hotel {
	h.Images = append([]string(nil), h.Images...)
	h.Amenities = append([]string(nil), h.Amenities...)
	if h.Deals != nil {
		d := *h.Deals
		h.Deals = &d
	}
	if h.Price.Discount != nil {
		d := *h.Price.Discount
		h.Price.Discount = &d
	}
	return h
}
