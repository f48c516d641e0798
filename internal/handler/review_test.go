package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ramen-review-api/internal/models"
	"ramen-review-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReviewService is a mock implementation of the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Create(ctx context.Context, input service.ReviewInput) (models.Review, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.Review), args.Error(1)
}

func (m *MockReviewService) List(ctx context.Context, restaurantID string, page, limit int) ([]models.Review, int, error) {
	args := m.Called(ctx, restaurantID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Int(1), args.Error(2)
}

// MockExportService is a mock implementation of the ExportService interface
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, reviewID string) (*models.ComposedPost, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ComposedPost), args.Error(1)
}

func validReviewInput() service.ReviewInput {
	return service.ReviewInput{
		RestaurantID:      "rest-1",
		VisitDate:         "2025-11-03",
		VisitTime:         "12:30",
		PartySize:         2,
		ReservationStatus: models.ReservationQueue,
		OrderMethod:       models.OrderTicketMachine,
		PaymentMethods:    []string{"現金"},
		RamenItems:        []models.RamenItem{{Name: "特製濃厚魚介つけ麺", Price: 1200}},
		TextReview:        "湯頭濃厚，麵條彈牙，非常值得排隊。",
	}
}

func TestReviewHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid request body", func(t *testing.T) {
		mockSvc := new(MockReviewService)
		handler := NewReviewHandler(mockSvc, new(MockExportService))

		req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})

	t.Run("validation error returns field list", func(t *testing.T) {
		mockSvc := new(MockReviewService)
		handler := NewReviewHandler(mockSvc, new(MockExportService))

		verr := &service.ValidationError{Fields: []service.FieldError{
			{Field: "ramen_items", Message: "必須至少有一個拉麵品項"},
			{Field: "text_review", Message: "評價內容至少需要10個字"},
		}}
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(models.Review{}, verr)

		body, _ := json.Marshal(validReviewInput())
		req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error  string               `json:"error"`
			Fields []service.FieldError `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid review", resp.Error)
		assert.Len(t, resp.Fields, 2)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		mockSvc := new(MockReviewService)
		handler := NewReviewHandler(mockSvc, new(MockExportService))

		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(models.Review{}, service.ErrRestaurantNotFound)

		body, _ := json.Marshal(validReviewInput())
		req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.Create(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("successful create", func(t *testing.T) {
		mockSvc := new(MockReviewService)
		handler := NewReviewHandler(mockSvc, new(MockExportService))

		input := validReviewInput()
		created := models.Review{
			ID:                "rev-1",
			RestaurantID:      input.RestaurantID,
			VisitDate:         time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
			VisitTime:         input.VisitTime,
			PartySize:         input.PartySize,
			ReservationStatus: input.ReservationStatus,
			OrderMethod:       input.OrderMethod,
			PaymentMethods:    input.PaymentMethods,
			RamenItems:        input.RamenItems,
			TextReview:        input.TextReview,
		}
		mockSvc.On("Create", mock.Anything, input).Return(created, nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got models.Review
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "rev-1", got.ID)
		mockSvc.AssertExpectations(t)
	})
}

func TestReviewHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default pagination", func(t *testing.T) {
		mockSvc := new(MockReviewService)
		handler := NewReviewHandler(mockSvc, new(MockExportService))

		mockSvc.On("List", mock.Anything, "", 1, 10).
			Return([]models.Review{{ID: "rev-1"}}, 1, nil)

		req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.List(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Reviews []models.Review `json:"reviews"`
			Total   int             `json:"total"`
			Page    int             `json:"page"`
			Limit   int             `json:"limit"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Reviews, 1)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 10, resp.Limit)
		mockSvc.AssertExpectations(t)
	})

	t.Run("restaurant filter and explicit pagination", func(t *testing.T) {
		mockSvc := new(MockReviewService)
		handler := NewReviewHandler(mockSvc, new(MockExportService))

		mockSvc.On("List", mock.Anything, "rest-1", 2, 5).
			Return([]models.Review{}, 12, nil)

		req := httptest.NewRequest(http.MethodGet, "/reviews?restaurant_id=rest-1&page=2&limit=5", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid page", func(t *testing.T) {
		mockSvc := new(MockReviewService)
		handler := NewReviewHandler(mockSvc, new(MockExportService))

		req := httptest.NewRequest(http.MethodGet, "/reviews?page=zero", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "List")
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(MockReviewService)
		handler := NewReviewHandler(mockSvc, new(MockExportService))

		mockSvc.On("List", mock.Anything, "", 1, 10).Return(nil, 0, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.List(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestReviewHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful export", func(t *testing.T) {
		mockExport := new(MockExportService)
		handler := NewReviewHandler(new(MockReviewService), mockExport)

		post := &models.ComposedPost{
			Content: "#麺屋一燈\n📍新小岩駅 徒歩8分",
			Stats:   models.PostStats{CharacterCount: 18, HashtagCount: 1, LineCount: 2},
		}
		mockExport.On("Export", mock.Anything, "rev-1").Return(post, nil)

		req := httptest.NewRequest(http.MethodGet, "/reviews/rev-1/instagram", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "rev-1"}}

		handler.Export(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.ComposedPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, post.Content, got.Content)
		mockExport.AssertExpectations(t)
	})

	t.Run("review not found", func(t *testing.T) {
		mockExport := new(MockExportService)
		handler := NewReviewHandler(new(MockReviewService), mockExport)

		mockExport.On("Export", mock.Anything, "missing").Return(nil, service.ErrReviewNotFound)

		req := httptest.NewRequest(http.MethodGet, "/reviews/missing/instagram", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		handler.Export(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing fields block export", func(t *testing.T) {
		mockExport := new(MockExportService)
		handler := NewReviewHandler(new(MockReviewService), mockExport)

		merr := &service.MissingFieldsError{Fields: []string{"缺少餐廳資訊", "缺少文字評價"}}
		mockExport.On("Export", mock.Anything, "rev-1").Return(nil, merr)

		req := httptest.NewRequest(http.MethodGet, "/reviews/rev-1/instagram", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "rev-1"}}

		handler.Export(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error         string   `json:"error"`
			MissingFields []string `json:"missing_fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"缺少餐廳資訊", "缺少文字評價"}, resp.MissingFields)
	})

	t.Run("service error", func(t *testing.T) {
		mockExport := new(MockExportService)
		handler := NewReviewHandler(new(MockReviewService), mockExport)

		mockExport.On("Export", mock.Anything, "rev-1").Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/reviews/rev-1/instagram", nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "rev-1"}}

		handler.Export(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
