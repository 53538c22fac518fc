package services

import (
	"context"
	"fmt"

	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/store"
)

// IReviewService defines the interface for review operations.
type IReviewService interface {
	AddReview(ctx context.Context, r models.Review) (*models.Review, error)
	ListReviewsByProperty(ctx context.Context, propertyID string) ([]models.Review, error)
	AverageRating(ctx context.Context, propertyID string) (float64, error)
}

// reviewService implements IReviewService over the CSV-backed store.
type reviewService struct {
	reviews *store.Store[models.Review]
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews *store.Store[models.Review]) IReviewService {
	return &reviewService{reviews: reviews}
}

// AddReview validates and persists a review. Reviews come from
// authenticated users (userId set by the handler from JWT claims) or
// from guests supplying a name and email. The property id is not
// checked against the properties store — reviews of delisted
// properties are kept.
func (s *reviewService) AddReview(ctx context.Context, r models.Review) (*models.Review, error) {
	if r.PropertyID == "" {
		return nil, fmt.Errorf("%w: propertyId is required", ErrValidation)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if r.UserName == "" && r.UserEmail == "" {
		return nil, fmt.Errorf("%w: a reviewer name or email is required", ErrValidation)
	}
	if r.UserName == "" {
		r.UserName = r.UserEmail
	}

	r.ID = ""
	created, err := s.reviews.Append(r)
	if err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return &created, nil
}

// ListReviewsByProperty returns the reviews for one property.
func (s *reviewService) ListReviewsByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	all, err := s.reviews.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	matched := make([]models.Review, 0)
	for _, r := range all {
		if r.PropertyID == propertyID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// AverageRating loads the current review set and computes the mean
// rating for one property. Loading first keeps the derived value from
// being computed over a stale or empty cache.
func (s *reviewService) AverageRating(ctx context.Context, propertyID string) (float64, error) {
	all, err := s.reviews.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load reviews: %w", err)
	}
	return store.AverageRating(all, propertyID), nil
}
