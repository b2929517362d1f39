// Package boltdb stores users, reviews and revoked credentials in a single
// embedded BoltDB file. Every mutation runs in one write transaction, and bolt
// serialises writers, so check-then-put sequences are atomic.
package boltdb

import (
	"context"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"
)

var (
	usersBucket       = []byte("users")
	reviewsBucket     = []byte("reviews")
	bookIndexBucket   = []byte("book_reviews")
	ratingStatsBucket = []byte("rating_stats")
	revokedBucket     = []byte("revoked_tokens")
)

// Connection wraps an open bolt database.
type Connection struct {
	db *bolt.DB
}

// Open opens (or creates) the database file at path and ensures all buckets
// exist.
func Open(path string) (*Connection, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{usersBucket, reviewsBucket, bookIndexBucket, ratingStatsBucket, revokedBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize bolt database: %w", err)
	}

	return &Connection{db: db}, nil
}

// Close releases the database file lock.
func (c *Connection) Close() error {
	return c.db.Close()
}

// Ping verifies the database can serve a read transaction.
func (c *Connection) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(usersBucket) == nil {
			return fmt.Errorf("bucket %s missing", usersBucket)
		}
		return nil
	})
}
