package service

import (
	"context"
	"fmt"

	"ramen-review-api/internal/address"
	"ramen-review-api/internal/models"
)

// RestaurantStore is the persistence surface the restaurant service needs.
type RestaurantStore interface {
	UpsertRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
}

// RestaurantInput is the raw create-restaurant request body, usually copied
// from a places search candidate.
type RestaurantInput struct {
	GoogleID  string  `json:"google_id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RestaurantService persists restaurants with their addresses parsed into
// prefecture, city, and postal code.
type RestaurantService struct {
	repo RestaurantStore
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(repo RestaurantStore) *RestaurantService {
	return &RestaurantService{repo: repo}
}

// Create parses the address and upserts the restaurant. A restaurant with
// the same Google place ID is refreshed instead of duplicated.
func (s *RestaurantService) Create(ctx context.Context, input RestaurantInput) (models.Restaurant, error) {
	verr := &ValidationError{}
	if input.Name == "" {
		verr.add("name", "店名不能為空")
	}
	if input.Address == "" {
		verr.add("address", "地址不能為空")
	}
	if v := verr.orNil(); v != nil {
		return models.Restaurant{}, v
	}

	parsed := address.Parse(input.Address)

	restaurant := models.Restaurant{
		GoogleID:   input.GoogleID,
		Name:       input.Name,
		Prefecture: parsed.Prefecture,
		City:       parsed.City,
		PostalCode: parsed.PostalCode,
		Address:    parsed.StandardizedAddress,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
	}

	stored, err := s.repo.UpsertRestaurant(ctx, restaurant)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("service: failed to save restaurant: %w", err)
	}
	return stored, nil
}
