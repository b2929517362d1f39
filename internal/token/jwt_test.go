package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 0)

	tok, issued, err := j.Generate("alice", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	got, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, issued.ID, got.ID)
	assert.Equal(t, 7*24*time.Hour, got.ExpiresAt.Sub(got.IssuedAt))
}

func TestJWT_UniqueJTI(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	_, a, err := j.Generate("alice", "a@x.com")
	require.NoError(t, err)
	_, b, err := j.Generate("alice", "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)
	j.now = func() time.Time { return issuedAt }

	tok, _, err := j.Generate("alice", "a@x.com")
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_WrongSecret(t *testing.T) {
	tok, _, err := NewJWT("secret", time.Hour).Generate("alice", "a@x.com")
	require.NoError(t, err)

	_, err = NewJWT("other", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_RejectsNoneAlgorithm(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Username:         "mallory",
	})
	tok, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_RequiresUsernameAndExpiry(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = j.Parse(noUser)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Username: "alice"}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = j.Parse(noExp)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Malformed(t *testing.T) {
	_, err := NewJWT("secret", time.Hour).Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
