// Package service contains the business logic for the Itinero API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No storage details live here — services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"
	"sort"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// Destination list sort keys. An empty or unknown key means store order —
// the UI labels that "popularity", but no popularity signal exists; it is a
// documented passthrough of insertion order.
const (
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
)

// DestinationService implements read operations over the destination catalog.
type DestinationService struct {
	destinations repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the provided repo.
func NewDestinationService(destinations repo.DestinationRepo) *DestinationService {
	return &DestinationService{destinations: destinations}
}

// List returns the catalog, sorted only when an explicit sort key is given.
func (s *DestinationService) List(ctx context.Context, sortKey string) ([]domain.Destination, error) {
	out, err := s.destinations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}
	sortDestinations(out, sortKey)
	return out, nil
}

// GetByID returns a single destination.
func (s *DestinationService) GetByID(ctx context.Context, id int) (domain.Destination, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.GetByID: %w", err)
	}
	return d, nil
}

// Search returns destinations matching query case-insensitively against
// name, country, or any tag, in store order (never score-ranked).
// An empty query matches everything, mirroring the substring semantics.
func (s *DestinationService) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	out, err := s.destinations.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.Search: %w", err)
	}
	return out, nil
}

// sortDestinations applies the requested key in place. sort.SliceStable keeps
// store order among equals, so ties do not reshuffle between requests.
func sortDestinations(ds []domain.Destination, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(ds, func(i, j int) bool { return ds[i].PricePerPerson < ds[j].PricePerPerson })
	case SortPriceDesc:
		sort.SliceStable(ds, func(i, j int) bool { return ds[i].PricePerPerson > ds[j].PricePerPerson })
	case SortRatingDesc:
		sort.SliceStable(ds, func(i, j int) bool { return ds[i].Rating > ds[j].Rating })
	}
}
