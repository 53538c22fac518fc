package store

import (
	"time"

	"github.com/niceliubing/real-estate/internal/models"
)

// NewReviewStore creates the reviews store. Reviews seed empty.
func NewReviewStore(path string) *Store[models.Review] {
	return New(path, Codec[models.Review]{
		Header:  models.ReviewHeader,
		ToRow:   models.ReviewToRow,
		FromRow: models.RowToReview,
		ID:      func(r models.Review) string { return r.ID },
		SetID:   func(r *models.Review, id string) { r.ID = id },
		Touch: func(r *models.Review, now time.Time, created bool) {
			if created {
				r.CreatedAt = now
			}
			r.UpdatedAt = now
		},
	}, nil)
}

// AverageRating computes the mean rating of the reviews for one
// property. It is a pure function over an already-loaded snapshot:
// callers must Load first or the result reflects whatever was last
// cached. Returns 0 when the property has no reviews.
func AverageRating(reviews []models.Review, propertyID string) float64 {
	sum, count := 0, 0
	for _, r := range reviews {
		if r.PropertyID == propertyID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
