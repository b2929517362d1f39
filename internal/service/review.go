package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/model"
)

type Review struct {
	store   model.ReviewStore
	archive model.ReviewArchive
	logger  *logger.Logger
	now     func() time.Time
}

// NewReview creates the review service. archive may be nil, in which case
// removed reviews are not kept anywhere.
func NewReview(store model.ReviewStore, archive model.ReviewArchive, logger *logger.Logger) *Review {
	return &Review{
		store:   store,
		archive: archive,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns the reviews of a book, newest first.
func (s *Review) List(ctx context.Context, bookKey string) ([]model.Review, error) {
	reviews, err := s.store.ListByBookKey(ctx, bookKey)
	if err != nil {
		s.logger.Error("Review service: failed to list reviews",
			"book_key", bookKey,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}

// Add stores a new review authored by params.Username.
func (s *Review) Add(ctx context.Context, params model.CreateReviewParams) (model.Review, error) {
	s.logger.Debug("Review service: adding review",
		"book_key", params.BookKey,
		"username", params.Username)

	switch {
	case strings.TrimSpace(params.BookKey) == "":
		return model.Review{}, apierror.NewErrMissingField("bookKey")
	case params.Rating == nil || *params.Rating == 0:
		return model.Review{}, apierror.NewErrMissingField("rating")
	case strings.TrimSpace(params.Comment) == "":
		return model.Review{}, apierror.NewErrMissingField("comment")
	}

	review, err := s.store.Create(ctx, model.Review{
		ID:        uuid.New(),
		BookKey:   params.BookKey,
		Username:  params.Username,
		Rating:    *params.Rating,
		Comment:   params.Comment,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		s.logger.Error("Review service: failed to create review",
			"book_key", params.BookKey,
			"username", params.Username,
			"error", err.Error())
		return model.Review{}, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.Info("Review service: review added",
		"review_id", review.ID,
		"book_key", review.BookKey,
		"username", review.Username)

	return review, nil
}

// Delete removes a review. The review must belong to bookKey and to username.
func (s *Review) Delete(ctx context.Context, bookKey, reviewID, username string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return apierror.NewErrReviewNotFound(reviewID)
	}

	review, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrReviewNotFound(reviewID)
	}
	if err != nil {
		s.logger.Error("Review service: failed to get review",
			"review_id", reviewID,
			"error", err.Error())
		return fmt.Errorf("failed to get review: %w", err)
	}

	if review.BookKey != bookKey {
		s.logger.Info("Review service: review belongs to another book",
			"review_id", reviewID,
			"book_key", bookKey)
		return apierror.NewErrReviewNotFound(reviewID)
	}
	if review.Username != username {
		s.logger.Info("Review service: delete by non-owner rejected",
			"review_id", reviewID,
			"username", username)
		return apierror.NewErrNotReviewOwner(reviewID)
	}

	err = s.store.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrReviewNotFound(reviewID)
	}
	if err != nil {
		s.logger.Error("Review service: failed to delete review",
			"review_id", reviewID,
			"error", err.Error())
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if s.archive != nil {
		if err := s.archive.Archive(ctx, review); err != nil {
			s.logger.Warn("Review service: failed to archive deleted review",
				"review_id", reviewID,
				"error", err.Error())
		}
	}

	s.logger.Info("Review service: review deleted",
		"review_id", reviewID,
		"username", username)

	return nil
}

// AverageRatings maps every distinct key to its rounded mean rating, nil for
// keys without reviews.
func (s *Review) AverageRatings(ctx context.Context, bookKeys []string) (map[string]*float64, error) {
	unique := dedupe(bookKeys)
	averages := make(map[string]*float64, len(unique))
	if len(unique) == 0 {
		return averages, nil
	}

	stats, err := s.store.AverageRatings(ctx, unique)
	if err != nil {
		s.logger.Error("Review service: failed to aggregate ratings",
			"keys", len(unique),
			"error", err.Error())
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	for _, key := range unique {
		averages[key] = stats[key].Average()
	}
	return averages, nil
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
