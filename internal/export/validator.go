package export

import (
	"strings"

	"ramen-review-api/internal/models"
)

// Missing-field descriptors returned by Validate.
const (
	MissingRestaurant = "缺少餐廳資訊"
	MissingRamenItems = "缺少拉麵品項資訊"
	MissingTextReview = "缺少文字評價"
	MissingVisitDate  = "缺少造訪日期"
	MissingVisitTime  = "缺少造訪時間"
)

// Validate reports every required field missing from the aggregate. An empty
// result means the review is exportable. The checks are independent; callers
// decide whether a non-empty result blocks the export.
func Validate(agg models.ReviewExportAggregate) []string {
	var missing []string

	if agg.Restaurant == nil {
		missing = append(missing, MissingRestaurant)
	}
	if len(agg.RamenItems) == 0 {
		missing = append(missing, MissingRamenItems)
	}
	if strings.TrimSpace(agg.TextReview) == "" {
		missing = append(missing, MissingTextReview)
	}
	if agg.VisitDate.IsZero() {
		missing = append(missing, MissingVisitDate)
	}
	if agg.VisitTime == "" {
		missing = append(missing, MissingVisitTime)
	}

	return missing
}
