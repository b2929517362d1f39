package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReviewStore defines persistence operations for reviews.
type ReviewStore interface {
	Create(ctx context.Context, review Review) (Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (Review, error)
	ListByBookKey(ctx context.Context, bookKey string) ([]Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AverageRatings(ctx context.Context, bookKeys []string) (map[string]RatingStats, error)
}

// ReviewArchive keeps snapshots of removed reviews.
type ReviewArchive interface {
	Archive(ctx context.Context, review Review) error
}

// Review represents a stored book review.
type Review struct {
	ID        uuid.UUID `json:"id"`
	BookKey   string    `json:"bookKey"`
	Username  string    `json:"username"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateReviewParams contains parameters to create a review.
type CreateReviewParams struct {
	BookKey  string
	Username string
	Rating   *float64
	Comment  string
}

// RatingStats is the raw aggregate of ratings for one book.
type RatingStats struct {
	Sum   float64
	Count int
}

// Average returns the mean rating rounded to two decimals, or nil when the
// book has no reviews.
func (s RatingStats) Average() *float64 {
	if s.Count == 0 {
		return nil
	}
	avg := RoundRating(s.Sum / float64(s.Count))
	return &avg
}
