package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Deba69/BookList/internal/model"
)

// ErrInvalidToken is returned for any credential that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the JWT payload of a credential.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key and
// credential lifetime. A non-positive ttl selects model.CredentialTTL.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = model.CredentialTTL
	}
	return &JWT{secretKey: secretKey, ttl: ttl, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

// Generate signs a credential for the given identity.
func (j *JWT) Generate(username, email string) (string, model.Claims, error) {
	now := j.now().Truncate(time.Second)
	jti := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Username: username,
		Email:    email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", model.Claims{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, model.Claims{
		Username:  username,
		Email:     email,
		ID:        jti,
		IssuedAt:  now,
		ExpiresAt: now.Add(j.ttl),
	}, nil
}

// Parse validates signature, algorithm and expiry and returns the claims.
func (j *JWT) Parse(tokenString string) (model.Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return model.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Claims{}, ErrInvalidToken
	}
	if claims.Username == "" {
		return model.Claims{}, fmt.Errorf("%w: missing username", ErrInvalidToken)
	}

	out := model.Claims{
		Username: claims.Username,
		Email:    claims.Email,
		ID:       claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
