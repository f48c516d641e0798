package repository

import (
	"context"
	"errors"
	"fmt"

	"ramen-review-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements restaurant and review persistence on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// UpsertRestaurant inserts a restaurant or, when a record with the same
// Google place ID already exists, refreshes it and returns the stored row.
func (r *Repository) UpsertRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	if restaurant.ID == "" {
		restaurant.ID = uuid.NewString()
	}

	// google_id is stored as NULL when absent so that restaurants entered by
	// hand never collide on the unique index.
	sql := `
		INSERT INTO restaurants (id, google_id, name, prefecture, city, postal_code, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (google_id) DO UPDATE SET
			name = EXCLUDED.name,
			prefecture = EXCLUDED.prefecture,
			city = EXCLUDED.city,
			postal_code = EXCLUDED.postal_code,
			address = EXCLUDED.address,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude
		RETURNING id, COALESCE(google_id, ''), name, prefecture, city, postal_code, address, latitude, longitude, created_at
	`

	var stored models.Restaurant
	err := r.db.QueryRow(ctx, sql,
		restaurant.ID,
		nullableString(restaurant.GoogleID),
		restaurant.Name,
		restaurant.Prefecture,
		restaurant.City,
		restaurant.PostalCode,
		restaurant.Address,
		restaurant.Latitude,
		restaurant.Longitude,
	).Scan(
		&stored.ID,
		&stored.GoogleID,
		&stored.Name,
		&stored.Prefecture,
		&stored.City,
		&stored.PostalCode,
		&stored.Address,
		&stored.Latitude,
		&stored.Longitude,
		&stored.CreatedAt,
	)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("repository: failed to upsert restaurant: %w", err)
	}

	return stored, nil
}

// GetRestaurant fetches a restaurant by ID, returning nil when absent.
func (r *Repository) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	sql := `
		SELECT id, COALESCE(google_id, ''), name, prefecture, city, postal_code, address, latitude, longitude, created_at
		FROM restaurants
		WHERE id = $1
	`

	var restaurant models.Restaurant
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&restaurant.ID,
		&restaurant.GoogleID,
		&restaurant.Name,
		&restaurant.Prefecture,
		&restaurant.City,
		&restaurant.PostalCode,
		&restaurant.Address,
		&restaurant.Latitude,
		&restaurant.Longitude,
		&restaurant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to get restaurant: %w", err)
	}

	return &restaurant, nil
}

// CreateReview inserts a review with its line items in one transaction.
func (r *Repository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Review{}, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql := `
		INSERT INTO reviews (id, restaurant_id, visit_date, visit_time, party_size, reservation_status,
			wait_time, order_method, payment_methods, tags, text_review, nearest_station, walking_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at
	`
	err = tx.QueryRow(ctx, sql,
		review.ID,
		review.RestaurantID,
		review.VisitDate,
		review.VisitTime,
		review.PartySize,
		review.ReservationStatus,
		review.WaitTime,
		review.OrderMethod,
		review.PaymentMethods,
		review.Tags,
		review.TextReview,
		nullableString(review.NearestStation),
		review.WalkingTime,
	).Scan(&review.CreatedAt)
	if err != nil {
		return models.Review{}, fmt.Errorf("repository: failed to insert review: %w", err)
	}

	for i, item := range review.RamenItems {
		_, err = tx.Exec(ctx,
			`INSERT INTO ramen_items (review_id, position, name, price, customization) VALUES ($1, $2, $3, $4, $5)`,
			review.ID, i, item.Name, item.Price, item.Customization,
		)
		if err != nil {
			return models.Review{}, fmt.Errorf("repository: failed to insert ramen item: %w", err)
		}
	}

	for i, item := range review.SideItems {
		_, err = tx.Exec(ctx,
			`INSERT INTO side_items (review_id, position, name, price) VALUES ($1, $2, $3, $4)`,
			review.ID, i, item.Name, item.Price,
		)
		if err != nil {
			return models.Review{}, fmt.Errorf("repository: failed to insert side item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Review{}, fmt.Errorf("repository: failed to commit review: %w", err)
	}

	return review, nil
}

// ListReviews returns one page of reviews, newest visit first, optionally
// filtered by restaurant, together with the total count for pagination.
func (r *Repository) ListReviews(ctx context.Context, restaurantID string, page, limit int) ([]models.Review, int, error) {
	offset := (page - 1) * limit

	sql := `
		SELECT id, restaurant_id, visit_date, visit_time, party_size, reservation_status,
			wait_time, order_method, payment_methods, tags, text_review,
			COALESCE(nearest_station, ''), walking_time, created_at
		FROM reviews
		WHERE ($1 = '' OR restaurant_id = $1)
		ORDER BY visit_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, sql, restaurantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID,
			&review.RestaurantID,
			&review.VisitDate,
			&review.VisitTime,
			&review.PartySize,
			&review.ReservationStatus,
			&review.WaitTime,
			&review.OrderMethod,
			&review.PaymentMethods,
			&review.Tags,
			&review.TextReview,
			&review.NearestStation,
			&review.WalkingTime,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("repository: failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository: error iterating reviews: %w", err)
	}
	rows.Close()

	for i := range reviews {
		if err := r.loadItems(ctx, &reviews[i]); err != nil {
			return nil, 0, err
		}
	}

	var total int
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE ($1 = '' OR restaurant_id = $1)`, restaurantID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count reviews: %w", err)
	}

	return reviews, total, nil
}

// GetReviewAggregate assembles the export projection for one review,
// returning nil when the review does not exist.
func (r *Repository) GetReviewAggregate(ctx context.Context, reviewID string) (*models.ReviewExportAggregate, error) {
	sql := `
		SELECT rv.visit_date, rv.visit_time, rv.party_size, rv.reservation_status,
			rv.wait_time, rv.order_method, rv.payment_methods, rv.tags, rv.text_review,
			COALESCE(rv.nearest_station, ''), rv.walking_time,
			rs.name, rs.address, rs.prefecture
		FROM reviews rv
		JOIN restaurants rs ON rs.id = rv.restaurant_id
		WHERE rv.id = $1
	`

	var agg models.ReviewExportAggregate
	var restaurant models.RestaurantInfo
	err := r.db.QueryRow(ctx, sql, reviewID).Scan(
		&agg.VisitDate,
		&agg.VisitTime,
		&agg.PartySize,
		&agg.ReservationStatus,
		&agg.WaitTime,
		&agg.OrderMethod,
		&agg.PaymentMethods,
		&agg.Tags,
		&agg.TextReview,
		&agg.NearestStation,
		&agg.WalkingTime,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.Prefecture,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to get review aggregate: %w", err)
	}
	agg.Restaurant = &restaurant

	review := models.Review{ID: reviewID}
	if err := r.loadItems(ctx, &review); err != nil {
		return nil, err
	}
	agg.RamenItems = review.RamenItems
	agg.SideItems = review.SideItems

	return &agg, nil
}

// SetNearestStation attaches the chosen station to a review.
func (r *Repository) SetNearestStation(ctx context.Context, reviewID, stationName string, walkingTimeMinutes int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reviews SET nearest_station = $2, walking_time = $3 WHERE id = $1`,
		reviewID, stationName, walkingTimeMinutes,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set nearest station: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: review not found: %s: %w", reviewID, pgx.ErrNoRows)
	}
	return nil
}

func (r *Repository) loadItems(ctx context.Context, review *models.Review) error {
	rows, err := r.db.Query(ctx,
		`SELECT name, price, customization FROM ramen_items WHERE review_id = $1 ORDER BY position`,
		review.ID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to load ramen items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.RamenItem
		if err := rows.Scan(&item.Name, &item.Price, &item.Customization); err != nil {
			return fmt.Errorf("repository: failed to scan ramen item: %w", err)
		}
		review.RamenItems = append(review.RamenItems, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating ramen items: %w", err)
	}
	rows.Close()

	sideRows, err := r.db.Query(ctx,
		`SELECT name, price FROM side_items WHERE review_id = $1 ORDER BY position`,
		review.ID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to load side items: %w", err)
	}
	defer sideRows.Close()

	for sideRows.Next() {
		var item models.SideItem
		if err := sideRows.Scan(&item.Name, &item.Price); err != nil {
			return fmt.Errorf("repository: failed to scan side item: %w", err)
		}
		review.SideItems = append(review.SideItems, item)
	}
	if err := sideRows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating side items: %w", err)
	}

	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
