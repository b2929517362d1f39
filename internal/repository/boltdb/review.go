package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/google/uuid"

	"github.com/Deba69/BookList/internal/model"
)

var _ model.ReviewStore = (*ReviewRepository)(nil)

type reviewDoc struct {
	ID        uuid.UUID `json:"id"`
	BookKey   string    `json:"book_key"`
	Username  string    `json:"username"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type statsDoc struct {
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// ReviewRepository keeps each review under its id, an index per book ordered
// by creation time, and a running sum/count per book updated in the same
// transaction as the review itself.
type ReviewRepository struct {
	conn *Connection
}

func NewReviewRepository(conn *Connection) *ReviewRepository {
	return &ReviewRepository{conn: conn}
}

// indexKey sorts by creation time, then id for reviews created in the same
// nanosecond.
func indexKey(r reviewDoc) []byte {
	k := make([]byte, 8, 8+len(r.ID))
	binary.BigEndian.PutUint64(k, uint64(r.CreatedAt.UnixNano()))
	return append(k, r.ID[:]...)
}

func (r *ReviewRepository) Create(ctx context.Context, review model.Review) (model.Review, error) {
	if err := ctx.Err(); err != nil {
		return model.Review{}, err
	}

	doc := reviewDoc(review)
	data, err := json.Marshal(doc)
	if err != nil {
		return model.Review{}, fmt.Errorf("failed to encode review: %w", err)
	}

	err = r.conn.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(reviewsBucket).Put(doc.ID[:], data); err != nil {
			return err
		}
		idx, err := tx.Bucket(bookIndexBucket).CreateBucketIfNotExists([]byte(doc.BookKey))
		if err != nil {
			return err
		}
		if err := idx.Put(indexKey(doc), doc.ID[:]); err != nil {
			return err
		}
		return adjustStats(tx, doc.BookKey, doc.Rating, 1)
	})
	if err != nil {
		return model.Review{}, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Review, error) {
	if err := ctx.Err(); err != nil {
		return model.Review{}, err
	}

	var doc reviewDoc
	err := r.conn.db.View(func(tx *bolt.Tx) error {
		var err error
		doc, err = getReview(tx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Review{}, model.ErrNotFound
		}
		return model.Review{}, fmt.Errorf("failed to get review by id: %w", err)
	}

	return model.Review(doc), nil
}

func (r *ReviewRepository) ListByBookKey(ctx context.Context, bookKey string) ([]model.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0)
	err := r.conn.db.View(func(tx *bolt.Tx) error {
		idx := tx.Bucket(bookIndexBucket).Bucket([]byte(bookKey))
		if idx == nil {
			return nil
		}
		all := tx.Bucket(reviewsBucket)
		c := idx.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			raw := all.Get(v)
			if raw == nil {
				continue
			}
			var doc reviewDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				return err
			}
			reviews = append(reviews, model.Review(doc))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.conn.db.Update(func(tx *bolt.Tx) error {
		doc, err := getReview(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Bucket(reviewsBucket).Delete(id[:]); err != nil {
			return err
		}
		if idx := tx.Bucket(bookIndexBucket).Bucket([]byte(doc.BookKey)); idx != nil {
			if err := idx.Delete(indexKey(doc)); err != nil {
				return err
			}
		}
		return adjustStats(tx, doc.BookKey, -doc.Rating, -1)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) AverageRatings(ctx context.Context, bookKeys []string) (map[string]model.RatingStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := make(map[string]model.RatingStats, len(bookKeys))
	err := r.conn.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(ratingStatsBucket)
		for _, key := range bookKeys {
			raw := b.Get([]byte(key))
			if raw == nil {
				continue
			}
			var s statsDoc
			if err := json.Unmarshal(raw, &s); err != nil {
				return err
			}
			if s.Count > 0 {
				stats[key] = model.RatingStats{Sum: s.Sum, Count: s.Count}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	return stats, nil
}

func getReview(tx *bolt.Tx, id uuid.UUID) (reviewDoc, error) {
	raw := tx.Bucket(reviewsBucket).Get(id[:])
	if raw == nil {
		return reviewDoc{}, model.ErrNotFound
	}
	var doc reviewDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return reviewDoc{}, err
	}
	return doc, nil
}

func adjustStats(tx *bolt.Tx, bookKey string, ratingDelta float64, countDelta int) error {
	b := tx.Bucket(ratingStatsBucket)
	key := []byte(bookKey)

	var s statsDoc
	if raw := b.Get(key); raw != nil {
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
	}
	s.Sum += ratingDelta
	s.Count += countDelta

	if s.Count <= 0 {
		return b.Delete(key)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return b.Put(key, data)
}
