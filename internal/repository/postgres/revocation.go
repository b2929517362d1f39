package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Deba69/BookList/internal/model"
)

var _ model.RevocationStore = (*RevocationRepository)(nil)

const (
	revokeTokenQuery = `
        INSERT INTO revoked_tokens (jti, expires_at, revoked_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (jti) DO NOTHING
    `

	isTokenRevokedQuery = `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`
)

// TODO: purge revoked_tokens rows whose expires_at has passed; they can no
// longer match a credential that survives signature verification.
type RevocationRepository struct {
	db DBTX
}

func NewRevocationRepository(db DBTX) *RevocationRepository {
	return &RevocationRepository{db: db}
}

func (r *RevocationRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, revokeTokenQuery, jti, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *RevocationRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	if err := r.db.QueryRowContext(ctx, isTokenRevokedQuery, jti).Scan(&revoked); err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}
