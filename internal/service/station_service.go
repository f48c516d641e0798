package service

import (
	"context"
	"errors"
	"fmt"

	"ramen-review-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// StationResolver ranks nearby stations by walking time.
type StationResolver interface {
	Resolve(ctx context.Context, origin models.LatLng, searchRadiusMeters, walkingCeilingMinutes int) ([]models.StationCandidate, error)
}

// StationWriter persists the chosen station onto a review.
type StationWriter interface {
	SetNearestStation(ctx context.Context, reviewID, stationName string, walkingTimeMinutes int) error
}

// StationService finds walkable stations for a restaurant and records the
// one the user picks. Search radius and walking ceiling come from config and
// are fixed per service instance.
type StationService struct {
	resolver           StationResolver
	repo               StationWriter
	searchRadiusMeters int
	walkingCeilingMin  int
}

// NewStationService creates a new station service
func NewStationService(resolver StationResolver, repo StationWriter, searchRadiusMeters, walkingCeilingMinutes int) *StationService {
	return &StationService{
		resolver:           resolver,
		repo:               repo,
		searchRadiusMeters: searchRadiusMeters,
		walkingCeilingMin:  walkingCeilingMinutes,
	}
}

// Nearby returns the stations within the walking ceiling of the coordinates,
// closest first. An empty slice is a valid answer the caller must render.
func (s *StationService) Nearby(ctx context.Context, origin models.LatLng) ([]models.StationCandidate, error) {
	if origin.Lat < -90 || origin.Lat > 90 {
		return nil, fmt.Errorf("service: invalid latitude: %f", origin.Lat)
	}
	if origin.Lng < -180 || origin.Lng > 180 {
		return nil, fmt.Errorf("service: invalid longitude: %f", origin.Lng)
	}

	stations, err := s.resolver.Resolve(ctx, origin, s.searchRadiusMeters, s.walkingCeilingMin)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve stations: %w", err)
	}
	return stations, nil
}

// Attach records the chosen station and walking time on a review.
func (s *StationService) Attach(ctx context.Context, reviewID, stationName string, walkingTimeMinutes int) error {
	if reviewID == "" {
		return fmt.Errorf("service: review id cannot be empty")
	}
	if stationName == "" {
		return fmt.Errorf("service: station name cannot be empty")
	}
	if walkingTimeMinutes < 0 {
		return fmt.Errorf("service: invalid walking time: %d", walkingTimeMinutes)
	}

	if err := s.repo.SetNearestStation(ctx, reviewID, stationName, walkingTimeMinutes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("service: failed to attach station: %w", err)
	}
	return nil
}
