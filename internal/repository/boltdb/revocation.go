package boltdb

import (
	"context"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/Deba69/BookList/internal/model"
)

var _ model.RevocationStore = (*RevocationRepository)(nil)

type RevocationRepository struct {
	conn *Connection
}

func NewRevocationRepository(conn *Connection) *RevocationRepository {
	return &RevocationRepository{conn: conn}
}

func (r *RevocationRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.conn.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(revokedBucket).Put([]byte(jti), []byte(expiresAt.UTC().Format(time.RFC3339)))
	})
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *RevocationRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var revoked bool
	err := r.conn.db.View(func(tx *bolt.Tx) error {
		revoked = tx.Bucket(revokedBucket).Get([]byte(jti)) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}
