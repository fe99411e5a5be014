package catalog

import (
	"math/rand/v2"

	"hotel_compare/internal/domain"
)

// DefaultGenerated is how many synthetic hotels are added to the seed set.
const DefaultGenerated = 45

// Catalog is the read-only hotel set every search runs against. It is built
// once and safe for concurrent readers.
type Catalog struct {
	hotels []domain.Hotel
	byID   map[string]int
}

func New(hotels []domain.Hotel) *Catalog {
	c := &Catalog{
		hotels: make([]domain.Hotel, len(hotels)),
		byID:   make(map[string]int, len(hotels)),
	}
	for i, h := range hotels {
		c.hotels[i] = clone(h)
		c.byID[h.ID] = i
	}
	return c
}

// Build returns the seed hotels followed by count generated ones.
func Build(count int, rng *rand.Rand) *Catalog {
	seed := Seed()
	return New(append(seed, Generate(seed, count, rng)...))
}

func (c *Catalog) Len() int { return len(c.hotels) }

// All returns the hotels in catalog order. Callers get their own slice but
// share the nested slices, which must be treated as read-only.
func (c *Catalog) All() []domain.Hotel {
	return append([]domain.Hotel(nil), c.hotels...)
}

func (c *Catalog) ByID(id string) (domain.Hotel, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Hotel{}, false
	}
	return c.hotels[i], true
}

// Amenities lists every distinct amenity label in first-seen order.
func (c *Catalog) Amenities() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, h := range c.hotels {
		for _, a := range h.Amenities {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}
