package handler

import (
	"context"
	"errors"
	"net/http"

	"ramen-review-api/internal/models"
	"ramen-review-api/internal/service"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler handles restaurant create requests
type RestaurantHandler struct {
	service RestaurantService
}

// Service interface for dependency injection
type RestaurantService interface {
	Create(ctx context.Context, input service.RestaurantInput) (models.Restaurant, error)
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(svc RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: svc}
}

// Create handles POST /restaurants requests
func (h *RestaurantHandler) Create(c *gin.Context) {
	var input service.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	restaurant, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant", "fields": verr.Fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}
