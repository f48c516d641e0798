package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"ramen-review-api/internal/models"
	"ramen-review-api/internal/service"

	"github.com/gin-gonic/gin"
)

// StationHandler handles station search and attach requests
type StationHandler struct {
	service StationService
}

// Service interface for dependency injection
type StationService interface {
	Nearby(ctx context.Context, origin models.LatLng) ([]models.StationCandidate, error)
	Attach(ctx context.Context, reviewID, stationName string, walkingTimeMinutes int) error
}

// NewStationHandler creates a new station handler
func NewStationHandler(svc StationService) *StationHandler {
	return &StationHandler{service: svc}
}

// Nearby handles GET /stations/search requests
func (h *StationHandler) Nearby(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lng'"})
		return
	}

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

	stations, err := h.service.Nearby(c.Request.Context(), models.LatLng{Lat: lat, Lng: lng})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// an empty list is a valid answer, never a 404
	c.JSON(http.StatusOK, gin.H{"stations": stations})
}

type attachStationRequest struct {
	StationName        string `json:"station_name"`
	WalkingTimeMinutes int    `json:"walking_time_minutes"`
}

// Attach handles PUT /reviews/:id/station requests
func (h *StationHandler) Attach(c *gin.Context) {
	reviewID := c.Param("id")

	var req attachStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.StationName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "station_name cannot be empty"})
		return
	}
	if req.WalkingTimeMinutes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "walking_time_minutes cannot be negative"})
		return
	}

	if err := h.service.Attach(c.Request.Context(), reviewID, req.StationName, req.WalkingTimeMinutes); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"review_id": reviewID, "station_name": req.StationName})
}
