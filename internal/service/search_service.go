package service

import (
	"context"
	"fmt"

	"ramen-review-api/internal/address"
	"ramen-review-api/internal/models"
)

// PlacesSearcher is the slice of the places API the search service needs.
type PlacesSearcher interface {
	SearchText(ctx context.Context, query string, location *models.LatLng, radius int) ([]models.Place, error)
	Details(ctx context.Context, placeID string) (*models.Place, error)
}

// SearchService finds restaurants via the places API and parses their
// addresses into the components the persistence layer stores.
type SearchService struct {
	places PlacesSearcher
}

// NewSearchService creates a new search service
func NewSearchService(places PlacesSearcher) *SearchService {
	return &SearchService{places: places}
}

// Search runs a text search and attaches a parsed address to every hit.
func (s *SearchService) Search(ctx context.Context, query string, location *models.LatLng, radius int) ([]models.RestaurantCandidate, error) {
	if query == "" {
		return nil, fmt.Errorf("service: query cannot be empty")
	}

	results, err := s.places.SearchText(ctx, query, location, radius)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search places: %w", err)
	}

	candidates := make([]models.RestaurantCandidate, 0, len(results))
	for _, place := range results {
		candidates = append(candidates, models.RestaurantCandidate{
			Place:   place,
			Address: address.Parse(place.FormattedAddress),
		})
	}
	return candidates, nil
}

// Details fetches one place and parses its address. Returns nil when the
// place does not exist.
func (s *SearchService) Details(ctx context.Context, placeID string) (*models.RestaurantCandidate, error) {
	if placeID == "" {
		return nil, fmt.Errorf("service: place id cannot be empty")
	}

	place, err := s.places.Details(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch place details: %w", err)
	}
	if place == nil {
		return nil, nil
	}

	return &models.RestaurantCandidate{
		Place:   *place,
		Address: address.Parse(place.FormattedAddress),
	}, nil
}
