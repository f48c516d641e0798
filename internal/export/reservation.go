// Package export turns a review aggregate into an Instagram-ready post:
// validation, template composition, hashtag selection, and length stats.
package export

import "ramen-review-api/internal/models"

// FormatReservationStatus maps a reservation status to its display phrase.
// When the visit involved queueing and a wait-time label is known, the label
// is appended. Unknown statuses pass through verbatim.
func FormatReservationStatus(status, waitTimeLabel string) string {
	switch status {
	case models.ReservationNoQueue:
		return "無需排隊"
	case models.ReservationQueue:
		if waitTimeLabel != "" {
			return "排隊" + waitTimeLabel
		}
		return "排隊等候"
	case models.ReservationReserved:
		return "事前預約"
	case models.ReservationNamedList:
		return "記名制"
	default:
		return status
	}
}

// WaitTimeLabel buckets a wait time in minutes into the label shown in posts.
// A nil or zero wait time yields an empty label.
func WaitTimeLabel(waitTime *int) string {
	if waitTime == nil || *waitTime == 0 {
		return ""
	}
	switch {
	case *waitTime <= 10:
		return "10分內"
	case *waitTime <= 30:
		return "30分內"
	case *waitTime <= 60:
		return "1小時內"
	case *waitTime <= 120:
		return "2小時內"
	default:
		return "2小時以上"
	}
}
