package pricing

import (
	"math/rand/v2"
	"sort"
	"sync"

	"hotel_compare/internal/catalog"
	"hotel_compare/internal/domain"
)

const iconscout = "https://cdn.iconscout.com/icon/"

// provider describes one synthetic booking source. offset is added to the
// hotel's current price; flags left nil are drawn per call.
type provider struct {
	name          string
	logo          string
	url           string
	includesTaxes bool
	offset        func(r *rand.Rand) int
	freeCancel    func(r *rand.Rand) bool
	payAtStay     func(r *rand.Rand) bool
	originalPrice func(base int) *int
}

func fixed(b bool) func(*rand.Rand) bool { return func(*rand.Rand) bool { return b } }

func chance(p float64) func(*rand.Rand) bool {
	return func(r *rand.Rand) bool { return r.Float64() > p }
}

// spread returns an offset uniform in [lo, lo+n).
func spread(n, lo int) func(*rand.Rand) int {
	return func(r *rand.Rand) int { return r.IntN(n) + lo }
}

var providers = []provider{
	{
		name:          "Booking.com",
		logo:          iconscout + "free/png-256/free-booking-44-432202.png",
		url:           "#",
		includesTaxes: true,
		offset:        func(*rand.Rand) int { return 0 },
		freeCancel:    fixed(true),
		payAtStay:     fixed(false),
	},
	{
		name:          "Hotels.com",
		logo:          iconscout + "free/png-256/free-hotels-com-304062.png",
		url:           "#",
		includesTaxes: true,
		offset:        spread(20, -10),
		freeCancel:    fixed(true),
		payAtStay:     fixed(true),
	},
	{
		name:          "Expedia",
		logo:          iconscout + "free/png-256/free-expedia-282229.png",
		url:           "#",
		includesTaxes: false,
		offset:        spread(30, -15),
		freeCancel:    chance(0.5),
		payAtStay:     chance(0.5),
		originalPrice: func(base int) *int { p := base + 40; return &p },
	},
	{
		name:          "Agoda",
		logo:          iconscout + "free/png-256/free-agoda-226491.png",
		url:           "#",
		includesTaxes: true,
		offset:        spread(25, -20),
		freeCancel:    chance(0.3),
		payAtStay:     fixed(true),
	},
	{
		name:          "Direct",
		logo:          iconscout + "premium/png-256-thumb/hotel-logo-7-596284.png",
		url:           "#",
		includesTaxes: true,
		offset:        func(*rand.Rand) int { return -5 },
		freeCancel:    fixed(true),
		payAtStay:     fixed(false),
	},
}

// Providers lists the provider names in their fixed declaration order.
func Providers() []string {
	out := make([]string, len(providers))
	for i, p := range providers {
		out[i] = p.name
	}
	return out
}

// Synthesizer fabricates per-provider offers for catalog hotels. Offers are
// recomputed on every call. Safe for concurrent use.
type Synthesizer struct {
	cat *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSynthesizer(cat *catalog.Catalog, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{cat: cat, rng: rng}
}

// Options returns one offer per provider for the hotel, cheapest first.
// Unknown ids yield an empty slice.
func (s *Synthesizer) Options(id string) []domain.PriceOption {
	h, ok := s.cat.ByID(id)
	if !ok {
		return []domain.PriceOption{}
	}
	base := h.Price.Current

	s.mu.Lock()
	out := make([]domain.PriceOption, 0, len(providers))
	for _, p := range providers {
		o := domain.PriceOption{
			Provider:         p.name,
			Logo:             p.logo,
			Price:            base + p.offset(s.rng),
			IncludesTaxes:    p.includesTaxes,
			FreeCancellation: p.freeCancel(s.rng),
			PayAtStay:        p.payAtStay(s.rng),
			URL:              p.url,
		}
		if p.originalPrice != nil {
			o.OriginalPrice = p.originalPrice(base)
		}
		out = append(out, o)
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}
