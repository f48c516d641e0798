package models

import "time"

// Reservation status values a review may carry. Stored verbatim; the export
// layer maps them to display phrases.
const (
	ReservationNoQueue   = "無需排隊"
	ReservationQueue     = "排隊等候"
	ReservationReserved  = "事前預約"
	ReservationNamedList = "記名制"
)

// Order method values.
const (
	OrderTicketMachine = "食券機"
	OrderAtTable       = "注文制"
	OrderOther         = "其他"
)

// Limits on review content, matching the forms that feed this API.
const (
	MinRamenItems     = 1
	MaxRamenItems     = 5
	MaxSideItems      = 10
	MinTextReviewLen  = 10
	MaxTextReviewLen  = 1000
	MinPartySize      = 1
	MaxPartySize      = 15
	MaxWaitTimeMinute = 480
)

// RamenItem is a single ordered bowl with its price in yen and any customization requested.
type RamenItem struct {
	Name          string `json:"name"`
	Price         int    `json:"price"`
	Customization string `json:"customization,omitempty"`
}

// SideItem is a side dish with its price in yen.
type SideItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Restaurant is a persisted restaurant record with its parsed address components.
type Restaurant struct {
	ID         string    `json:"id"`
	GoogleID   string    `json:"google_id,omitempty"`
	Name       string    `json:"name"`
	Prefecture string    `json:"prefecture"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Address    string    `json:"address"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
}

// Review is a persisted visit record.
type Review struct {
	ID                string      `json:"id"`
	RestaurantID      string      `json:"restaurant_id"`
	VisitDate         time.Time   `json:"visit_date"`
	VisitTime         string      `json:"visit_time"`
	PartySize         int         `json:"party_size"`
	ReservationStatus string      `json:"reservation_status"`
	WaitTime          *int        `json:"wait_time,omitempty"`
	OrderMethod       string      `json:"order_method"`
	PaymentMethods    []string    `json:"payment_methods"`
	RamenItems        []RamenItem `json:"ramen_items"`
	SideItems         []SideItem  `json:"side_items"`
	Tags              []string    `json:"tags"`
	TextReview        string      `json:"text_review"`
	NearestStation    string      `json:"nearest_station,omitempty"`
	WalkingTime       *int        `json:"walking_time,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}

// RestaurantInfo is the slice of restaurant data the export pipeline needs.
type RestaurantInfo struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Prefecture string `json:"prefecture"`
}

// ReviewExportAggregate is the read-only projection of a review assembled for
// a single export operation. It is built fresh per request and discarded once
// the post text is produced.
type ReviewExportAggregate struct {
	Restaurant        *RestaurantInfo `json:"restaurant"`
	RamenItems        []RamenItem     `json:"ramen_items"`
	SideItems         []SideItem      `json:"side_items"`
	Tags              []string        `json:"tags"`
	TextReview        string          `json:"text_review"`
	VisitDate         time.Time       `json:"visit_date"`
	VisitTime         string          `json:"visit_time"`
	PartySize         int             `json:"party_size"`
	ReservationStatus string          `json:"reservation_status"`
	WaitTime          *int            `json:"wait_time,omitempty"`
	OrderMethod       string          `json:"order_method"`
	PaymentMethods    []string        `json:"payment_methods"`
	NearestStation    string          `json:"nearest_station,omitempty"`
	WalkingTime       *int            `json:"walking_time,omitempty"`
}

// PostStats are the length metrics of a composed post, used for client-side warnings.
type PostStats struct {
	CharacterCount int `json:"character_count"`
	HashtagCount   int `json:"hashtag_count"`
	LineCount      int `json:"line_count"`
}

// ComposedPost is the final export artifact: the post text, its stats, and any budget warnings.
type ComposedPost struct {
	Content  string    `json:"content"`
	Stats    PostStats `json:"stats"`
	Warnings []string  `json:"warnings"`
}
