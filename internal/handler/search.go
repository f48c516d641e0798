package handler

import (
	"context"
	"net/http"
	"strconv"

	"ramen-review-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles restaurant search requests
type SearchHandler struct {
	service SearchService
}

// Service interface for dependency injection
type SearchService interface {
	Search(ctx context.Context, query string, location *models.LatLng, radius int) ([]models.RestaurantCandidate, error)
	Details(ctx context.Context, placeID string) (*models.RestaurantCandidate, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /places/search requests
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'query'"})
		return
	}

	var location *models.LatLng
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
			return
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
			return
		}
		location = &models.LatLng{Lat: lat, Lng: lng}
	}

	radius := 0
	if radiusStr := c.Query("radius"); radiusStr != "" {
		parsed, err := strconv.Atoi(radiusStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius format"})
			return
		}
		radius = parsed
	}

	candidates, err := h.service.Search(c.Request.Context(), query, location, radius)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, candidates)
}

// Details handles GET /places/:placeId requests
func (h *SearchHandler) Details(c *gin.Context) {
	placeID := c.Param("placeId")

	candidate, err := h.service.Details(c.Request.Context(), placeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if candidate == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
		return
	}

	c.JSON(http.StatusOK, candidate)
}
