package service

import (
	"context"
	"fmt"

	"ramen-review-api/internal/export"
	"ramen-review-api/internal/models"
)

// ExportReader supplies the review projection the export pipeline consumes.
type ExportReader interface {
	GetReviewAggregate(ctx context.Context, reviewID string) (*models.ReviewExportAggregate, error)
}

// ErrReviewNotFound is returned when the requested review does not exist.
var ErrReviewNotFound = fmt.Errorf("service: review not found")

// ExportService turns a persisted review into an Instagram post.
type ExportService struct {
	repo ExportReader
}

// NewExportService creates a new export service
func NewExportService(repo ExportReader) *ExportService {
	return &ExportService{repo: repo}
}

// Export loads the review aggregate, refuses to compose when required fields
// are missing, and otherwise returns the composed post with its stats and
// budget warnings.
func (s *ExportService) Export(ctx context.Context, reviewID string) (*models.ComposedPost, error) {
	agg, err := s.repo.GetReviewAggregate(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load review for export: %w", err)
	}
	if agg == nil {
		return nil, ErrReviewNotFound
	}

	if missing := export.Validate(*agg); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	post := export.ComposePost(*agg)
	return &post, nil
}
