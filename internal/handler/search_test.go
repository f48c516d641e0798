package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ramen-review-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSearchService is a mock implementation of the SearchService interface
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query string, location *models.LatLng, radius int) ([]models.RestaurantCandidate, error) {
	args := m.Called(ctx, query, location, radius)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RestaurantCandidate), args.Error(1)
}

func (m *MockSearchService) Details(ctx context.Context, placeID string) (*models.RestaurantCandidate, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RestaurantCandidate), args.Error(1)
}

func TestSearchHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	candidates := []models.RestaurantCandidate{
		{
			Place: models.Place{
				PlaceID:          "place-1",
				Name:             "麺屋一燈",
				FormattedAddress: "日本、〒124-0023 東京都葛飾区東新小岩1-4-17",
				Location:         models.LatLng{Lat: 35.7167, Lng: 139.8602},
			},
			Address: models.Address{
				Prefecture:          "東京都",
				City:                "葛飾区",
				PostalCode:          "1240023",
				StandardizedAddress: "東京都葛飾区東新小岩1-4-17",
				OriginalAddress:     "日本、〒124-0023 東京都葛飾区東新小岩1-4-17",
			},
		},
	}

	tests := []struct {
		name           string
		query          string
		params         map[string]string
		mockLocation   *models.LatLng
		mockRadius     int
		mockResult     []models.RestaurantCandidate
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "missing query parameter",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "successful search",
			query:          "麺屋一燈",
			mockResult:     candidates,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "search with location bias",
			query:          "ラーメン",
			params:         map[string]string{"lat": "35.6812", "lng": "139.7671", "radius": "1500"},
			mockLocation:   &models.LatLng{Lat: 35.6812, Lng: 139.7671},
			mockRadius:     1500,
			mockResult:     []models.RestaurantCandidate{},
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid latitude",
			query:          "ラーメン",
			params:         map[string]string{"lat": "abc", "lng": "139.7671"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid radius",
			query:          "ラーメン",
			params:         map[string]string{"radius": "-5"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			query:          "ラーメン",
			mockError:      assert.AnError,
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSearchService)
			handler := NewSearchHandler(mockSvc)

			if tt.expectService {
				mockSvc.On("Search", mock.Anything, tt.query, tt.mockLocation, tt.mockRadius).
					Return(tt.mockResult, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/places/search", nil)
			q := req.URL.Query()
			if tt.query != "" {
				q.Add("query", tt.query)
			}
			for k, v := range tt.params {
				q.Add(k, v)
			}
			req.URL.RawQuery = q.Encode()
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Search(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var got []models.RestaurantCandidate
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.mockResult, got)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestSearchHandler_Details(t *testing.T) {
	gin.SetMode(gin.TestMode)

	candidate := &models.RestaurantCandidate{
		Place:   models.Place{PlaceID: "place-1", Name: "麺屋一燈"},
		Address: models.Address{Prefecture: "東京都", City: "葛飾区"},
	}

	tests := []struct {
		name           string
		placeID        string
		mockResult     *models.RestaurantCandidate
		mockError      error
		expectedStatus int
	}{
		{
			name:           "found",
			placeID:        "place-1",
			mockResult:     candidate,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			placeID:        "missing",
			mockResult:     nil,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "service error",
			placeID:        "place-1",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSearchService)
			handler := NewSearchHandler(mockSvc)

			mockSvc.On("Details", mock.Anything, tt.placeID).Return(tt.mockResult, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/places/"+tt.placeID, nil)
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req
			c.Params = gin.Params{{Key: "placeId", Value: tt.placeID}}

			handler.Details(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var got models.RestaurantCandidate
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *tt.mockResult, got)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}
