package model

import (
	"context"
	"time"
)

// CredentialTTL is the default lifetime of an issued credential.
const CredentialTTL = 7 * 24 * time.Hour

// TokenManager signs and verifies bearer credentials.
type TokenManager interface {
	Generate(username, email string) (token string, claims Claims, err error)
	Parse(token string) (Claims, error)
}

// RevocationStore keeps identifiers of credentials invalidated before expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Claims are the identity facts embedded in a credential.
type Claims struct {
	Username  string
	Email     string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
