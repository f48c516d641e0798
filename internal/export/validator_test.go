package export

import (
	"testing"
	"time"

	"ramen-review-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func exportableAggregate() models.ReviewExportAggregate {
	return models.ReviewExportAggregate{
		Restaurant: &models.RestaurantInfo{
			Name:       "麺屋一燈",
			Address:    "東京都葛飾区東新小岩1-4-17",
			Prefecture: "東京都",
		},
		RamenItems: []models.RamenItem{
			{Name: "濃厚魚介ラーメン", Price: 900},
		},
		TextReview:        "湯頭濃郁，麵條彈牙，值得再訪。",
		VisitDate:         time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		VisitTime:         "12:30",
		PartySize:         2,
		ReservationStatus: models.ReservationQueue,
		OrderMethod:       models.OrderTicketMachine,
		PaymentMethods:    []string{"現金"},
	}
}

func TestValidate_CompleteAggregate(t *testing.T) {
	assert.Empty(t, Validate(exportableAggregate()))
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.ReviewExportAggregate)
		expected string
	}{
		{
			name:     "missing restaurant",
			mutate:   func(a *models.ReviewExportAggregate) { a.Restaurant = nil },
			expected: MissingRestaurant,
		},
		{
			name:     "no ramen items",
			mutate:   func(a *models.ReviewExportAggregate) { a.RamenItems = nil },
			expected: MissingRamenItems,
		},
		{
			name:     "blank text review",
			mutate:   func(a *models.ReviewExportAggregate) { a.TextReview = "   " },
			expected: MissingTextReview,
		},
		{
			name:     "missing visit date",
			mutate:   func(a *models.ReviewExportAggregate) { a.VisitDate = time.Time{} },
			expected: MissingVisitDate,
		},
		{
			name:     "missing visit time",
			mutate:   func(a *models.ReviewExportAggregate) { a.VisitTime = "" },
			expected: MissingVisitTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := exportableAggregate()
			tt.mutate(&agg)

			missing := Validate(agg)
			assert.Equal(t, []string{tt.expected}, missing)
		})
	}
}

func TestValidate_AllFieldsMissing(t *testing.T) {
	missing := Validate(models.ReviewExportAggregate{})
	assert.Len(t, missing, 5)
}
