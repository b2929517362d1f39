package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Deba69/BookList/internal/model"
)

var _ model.ReviewStore = (*ReviewRepository)(nil)

const (
	createReviewQuery = `INSERT INTO reviews (id, book_key, username, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, book_key, username, rating, comment, created_at`

	getReviewByIDQuery = `SELECT id, book_key, username, rating, comment, created_at
		FROM reviews WHERE id = $1`

	listReviewsByBookKeyQuery = `SELECT id, book_key, username, rating, comment, created_at
		FROM reviews WHERE book_key = $1
		ORDER BY created_at DESC, id DESC`

	deleteReviewQuery = `DELETE FROM reviews WHERE id = $1`

	averageRatingsQueryPrefix = `SELECT book_key, SUM(rating), COUNT(*) FROM reviews WHERE book_key IN (`
	averageRatingsQuerySuffix = `) GROUP BY book_key`
)

type ReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review model.Review) (model.Review, error) {
	var saved model.Review
	err := r.db.QueryRowContext(ctx, createReviewQuery,
		review.ID, review.BookKey, review.Username, review.Rating, review.Comment, review.CreatedAt,
	).Scan(&saved.ID, &saved.BookKey, &saved.Username, &saved.Rating, &saved.Comment, &saved.CreatedAt)
	if err != nil {
		return model.Review{}, fmt.Errorf("failed to create review: %w", err)
	}

	return saved, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Review, error) {
	var review model.Review
	err := r.db.QueryRowContext(ctx, getReviewByIDQuery, id).Scan(
		&review.ID, &review.BookKey, &review.Username, &review.Rating, &review.Comment, &review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, model.ErrNotFound
		}
		return model.Review{}, fmt.Errorf("failed to get review by id: %w", err)
	}

	return review, nil
}

func (r *ReviewRepository) ListByBookKey(ctx context.Context, bookKey string) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsByBookKeyQuery, bookKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]model.Review, 0)
	for rows.Next() {
		var review model.Review
		if err := rows.Scan(
			&review.ID, &review.BookKey, &review.Username, &review.Rating, &review.Comment, &review.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, deleteReviewQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// AverageRatings aggregates ratings for bookKeys in a single query. Keys with
// no reviews are absent from the result.
func (r *ReviewRepository) AverageRatings(ctx context.Context, bookKeys []string) (map[string]model.RatingStats, error) {
	stats := make(map[string]model.RatingStats, len(bookKeys))
	if len(bookKeys) == 0 {
		return stats, nil
	}

	rows, err := r.db.QueryContext(ctx, averageRatingsQuery(len(bookKeys)), stringArgs(bookKeys)...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key string
			s   model.RatingStats
		)
		if err := rows.Scan(&key, &s.Sum, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan rating aggregate: %w", err)
		}
		stats[key] = s
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rating aggregates: %w", err)
	}

	return stats, nil
}

func averageRatingsQuery(n int) string {
	var b strings.Builder
	b.WriteString(averageRatingsQueryPrefix)
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteString(", ")
		}
		b.WriteString("$")
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteString(averageRatingsQuerySuffix)
	return b.String()
}

func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
