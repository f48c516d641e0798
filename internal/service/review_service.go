package service

import (
	"context"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"ramen-review-api/internal/models"
)

// ReviewRepository is the persistence surface the review service needs.
type ReviewRepository interface {
	GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error)
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	ListReviews(ctx context.Context, restaurantID string, page, limit int) ([]models.Review, int, error)
}

// ReviewInput is the raw create-review request body before validation.
type ReviewInput struct {
	RestaurantID      string             `json:"restaurant_id"`
	VisitDate         string             `json:"visit_date"`
	VisitTime         string             `json:"visit_time"`
	PartySize         int                `json:"party_size"`
	ReservationStatus string             `json:"reservation_status"`
	WaitTime          *int               `json:"wait_time,omitempty"`
	OrderMethod       string             `json:"order_method"`
	PaymentMethods    []string           `json:"payment_methods"`
	RamenItems        []models.RamenItem `json:"ramen_items"`
	SideItems         []models.SideItem  `json:"side_items"`
	Tags              []string           `json:"tags"`
	TextReview        string             `json:"text_review"`
}

var visitTimeRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

var reservationStatuses = map[string]bool{
	models.ReservationNoQueue:   true,
	models.ReservationQueue:     true,
	models.ReservationReserved:  true,
	models.ReservationNamedList: true,
}

var orderMethods = map[string]bool{
	models.OrderTicketMachine: true,
	models.OrderAtTable:       true,
	models.OrderOther:         true,
}

var paymentMethods = map[string]bool{
	"現金":    true,
	"QR決済":  true,
	"交通系IC": true,
	"信用卡":   true,
}

// ParseReviewInput validates the raw input and converts it into a Review.
// All field errors are collected in one pass rather than failing on the first.
func ParseReviewInput(input ReviewInput) (models.Review, *ValidationError) {
	verr := &ValidationError{}

	if input.RestaurantID == "" {
		verr.add("restaurant_id", "餐廳ID不能為空")
	}

	var visitDate time.Time
	if input.VisitDate == "" {
		verr.add("visit_date", "造訪日期不能為空")
	} else {
		parsed, err := time.Parse("2006-01-02", input.VisitDate)
		if err != nil {
			verr.add("visit_date", "造訪日期格式錯誤 (YYYY-MM-DD)")
		} else {
			visitDate = parsed
		}
	}

	if !visitTimeRegex.MatchString(input.VisitTime) {
		verr.add("visit_time", "造訪時間格式錯誤 (HH:MM)")
	}

	if input.PartySize < models.MinPartySize || input.PartySize > models.MaxPartySize {
		verr.add("party_size", fmt.Sprintf("用餐人數必須介於 %d 到 %d 之間", models.MinPartySize, models.MaxPartySize))
	}

	if !reservationStatuses[input.ReservationStatus] {
		verr.add("reservation_status", "預約狀態無效")
	}

	if input.WaitTime != nil && (*input.WaitTime < 0 || *input.WaitTime > models.MaxWaitTimeMinute) {
		verr.add("wait_time", "等待時間無效")
	}

	if !orderMethods[input.OrderMethod] {
		verr.add("order_method", "點餐方式無效")
	}

	if len(input.PaymentMethods) == 0 {
		verr.add("payment_methods", "必須選擇至少一種付款方式")
	}
	for _, m := range input.PaymentMethods {
		if !paymentMethods[m] {
			verr.add("payment_methods", "付款方式無效: "+m)
		}
	}

	if len(input.RamenItems) < models.MinRamenItems {
		verr.add("ramen_items", "必須至少有一個拉麵品項")
	}
	if len(input.RamenItems) > models.MaxRamenItems {
		verr.add("ramen_items", fmt.Sprintf("拉麵品項不能超過%d個", models.MaxRamenItems))
	}
	for i, item := range input.RamenItems {
		if item.Name == "" {
			verr.add(fmt.Sprintf("ramen_items[%d].name", i), "品項名稱不能為空")
		}
		if item.Price < 0 {
			verr.add(fmt.Sprintf("ramen_items[%d].price", i), "價格必須大於等於0")
		}
	}

	if len(input.SideItems) > models.MaxSideItems {
		verr.add("side_items", fmt.Sprintf("副餐品項不能超過%d個", models.MaxSideItems))
	}
	for i, item := range input.SideItems {
		if item.Name == "" {
			verr.add(fmt.Sprintf("side_items[%d].name", i), "品項名稱不能為空")
		}
		if item.Price < 0 {
			verr.add(fmt.Sprintf("side_items[%d].price", i), "價格必須大於等於0")
		}
	}

	textLen := utf8.RuneCountInString(input.TextReview)
	if textLen < models.MinTextReviewLen {
		verr.add("text_review", fmt.Sprintf("評價內容至少需要%d個字", models.MinTextReviewLen))
	}
	if textLen > models.MaxTextReviewLen {
		verr.add("text_review", fmt.Sprintf("評價內容不能超過%d字", models.MaxTextReviewLen))
	}

	if v := verr.orNil(); v != nil {
		return models.Review{}, v
	}

	return models.Review{
		RestaurantID:      input.RestaurantID,
		VisitDate:         visitDate,
		VisitTime:         input.VisitTime,
		PartySize:         input.PartySize,
		ReservationStatus: input.ReservationStatus,
		WaitTime:          input.WaitTime,
		OrderMethod:       input.OrderMethod,
		PaymentMethods:    input.PaymentMethods,
		RamenItems:        input.RamenItems,
		SideItems:         input.SideItems,
		Tags:              input.Tags,
		TextReview:        input.TextReview,
	}, nil
}

// ReviewService contains the business logic for creating and listing reviews.
type ReviewService struct {
	repo ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// ErrRestaurantNotFound is returned when a review references an unknown restaurant.
var ErrRestaurantNotFound = fmt.Errorf("service: restaurant not found")

// Create validates the input and persists a new review.
func (s *ReviewService) Create(ctx context.Context, input ReviewInput) (models.Review, error) {
	review, verr := ParseReviewInput(input)
	if verr != nil {
		return models.Review{}, verr
	}

	restaurant, err := s.repo.GetRestaurant(ctx, review.RestaurantID)
	if err != nil {
		return models.Review{}, fmt.Errorf("service: failed to check restaurant: %w", err)
	}
	if restaurant == nil {
		return models.Review{}, ErrRestaurantNotFound
	}

	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return models.Review{}, fmt.Errorf("service: failed to create review: %w", err)
	}

	return created, nil
}

// List returns one page of reviews and the total count.
func (s *ReviewService) List(ctx context.Context, restaurantID string, page, limit int) ([]models.Review, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	reviews, total, err := s.repo.ListReviews(ctx, restaurantID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("service: failed to list reviews: %w", err)
	}

	return reviews, total, nil
}
