// Package password hashes user passwords with argon2id and verifies them in
// constant time. Hashes are stored in the PHC string format so parameters can
// change without invalidating existing users.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/Deba69/BookList/internal/model"
)

const (
	saltLen = 16
	keyLen  = 32
)

// ErrMalformedHash is returned when a stored hash cannot be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

// KDFParams holds argon2id cost parameters.
type KDFParams struct {
	Time   uint32
	MemKiB uint32
	Par    uint8
}

// NewKDFParams returns KDFParams, substituting sane values for zero inputs.
func NewKDFParams(time, memKiB uint32, par uint8) KDFParams {
	p := KDFParams{Time: time, MemKiB: memKiB, Par: par}
	if p.Time == 0 {
		p.Time = 1
	}
	if p.MemKiB == 0 {
		p.MemKiB = 64 * 1024
	}
	if p.Par == 0 {
		p.Par = 1
	}
	return p
}

var _ model.PasswordHasher = (*Argon2)(nil)

// Argon2 implements PasswordHasher.
type Argon2 struct {
	params KDFParams
}

func NewArgon2(params KDFParams) *Argon2 {
	return &Argon2{params: params}
}

// Hash derives a salted key and encodes it with its parameters.
func (a *Argon2) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.params.Time, a.params.MemKiB, a.params.Par, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.params.MemKiB, a.params.Time, a.params.Par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify re-derives the key with the stored salt and parameters.
func (a *Argon2) Verify(password, encoded string) (bool, error) {
	params, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.MemKiB, params.Par, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decode(encoded string) (KDFParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return KDFParams{}, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return KDFParams{}, nil, nil, ErrMalformedHash
	}

	var p KDFParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemKiB, &p.Time, &p.Par); err != nil {
		return KDFParams{}, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return KDFParams{}, nil, nil, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return KDFParams{}, nil, nil, ErrMalformedHash
	}

	return p, salt, key, nil
}
