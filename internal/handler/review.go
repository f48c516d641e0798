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

// ReviewHandler handles review create, list, and export requests
type ReviewHandler struct {
	reviews ReviewService
	exports ExportService
}

// Service interfaces for dependency injection
type ReviewService interface {
	Create(ctx context.Context, input service.ReviewInput) (models.Review, error)
	List(ctx context.Context, restaurantID string, page, limit int) ([]models.Review, int, error)
}

type ExportService interface {
	Export(ctx context.Context, reviewID string) (*models.ComposedPost, error)
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews ReviewService, exports ExportService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, exports: exports}
}

// Create handles POST /reviews requests
func (h *ReviewHandler) Create(c *gin.Context) {
	var input service.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review", "fields": verr.Fields})
			return
		}
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// List handles GET /reviews requests
func (h *ReviewHandler) List(c *gin.Context) {
	page, err := parsePositiveInt(c.Query("page"), 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page format"})
		return
	}
	limit, err := parsePositiveInt(c.Query("limit"), 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
		return
	}

	reviews, total, err := h.reviews.List(c.Request.Context(), c.Query("restaurant_id"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// Export handles GET /reviews/:id/instagram requests
func (h *ReviewHandler) Export(c *gin.Context) {
	reviewID := c.Param("id")

	post, err := h.exports.Export(c.Request.Context(), reviewID)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		var merr *service.MissingFieldsError
		if errors.As(err, &merr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "review is not ready for export", "missing_fields": merr.Fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func parsePositiveInt(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, errInvalidInt
	}
	return v, nil
}

var errInvalidInt = errors.New("handler: invalid integer")
