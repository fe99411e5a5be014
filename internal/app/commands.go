package app

import (
	"context"
	"errors"
	"fmt"

	"hotel_compare/internal/catalog"
	"hotel_compare/internal/domain"
)

var ErrEmptyCatalog = errors.New("catalog snapshot is empty")

// SeedService writes catalog hotels into a snapshot store so several API
// instances serve the same generated data.
type SeedService struct {
	store domain.CatalogStore
}

func NewSeedService(s domain.CatalogStore) *SeedService {
	return &SeedService{store: s}
}

// SeedHotel upserts one hotel, replacing any earlier snapshot of the same id.
func (s *SeedService) SeedHotel(ctx context.Context, h domain.Hotel) error {
	if h.ID == "" {
		return fmt.Errorf("seed hotel: missing id")
	}
	if err := s.store.UpsertHotel(ctx, h); err != nil {
		return fmt.Errorf("seed hotel %s: %w", h.ID, err)
	}
	return nil
}

// LoadCatalog builds the in-memory catalog from the snapshot store.
func LoadCatalog(ctx context.Context, store domain.CatalogStore) (*catalog.Catalog, error) {
	hs, err := store.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(hs) == 0 {
		return nil, ErrEmptyCatalog
	}
	return catalog.New(hs), nil
}
