package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/model"
)

// dummyPassword is hashed once and verified against when a login names an
// unknown user, so both paths pay for a key derivation.
const dummyPassword = "booklist-timing-equaliser"

type Auth struct {
	userStore   model.UserStore
	revocations model.RevocationStore
	hasher      model.PasswordHasher
	tokens      model.TokenManager
	logger      *logger.Logger
	now         func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewAuth(
	userStore model.UserStore,
	revocations model.RevocationStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:   userStore,
		revocations: revocations,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
		now:         time.Now,
	}
}

// Register creates a user and issues a credential for it. Uniqueness is left
// to the store, a duplicate username surfaces as a conflict.
func (a *Auth) Register(ctx context.Context, username, password, email string) (model.Session, error) {
	a.logger.Debug("Auth service: starting user registration",
		"username", username)

	switch {
	case strings.TrimSpace(username) == "":
		return model.Session{}, apierror.NewErrMissingField("username")
	case strings.TrimSpace(password) == "":
		return model.Session{}, apierror.NewErrMissingField("password")
	case strings.TrimSpace(email) == "":
		return model.Session{}, apierror.NewErrMissingField("email")
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC().Truncate(time.Microsecond),
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: username already taken",
			"username", username)
		return model.Session{}, apierror.NewErrUsernameTaken(username)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := a.issue(user)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: user registered",
		"username", username)

	return session, nil
}

// Authenticate verifies a username and password pair and issues a fresh
// credential.
func (a *Auth) Authenticate(ctx context.Context, username, password string) (model.Session, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.verifyDummy(password)
		a.logger.Info("Auth service: login for unknown user",
			"username", username)
		return model.Session{}, apierror.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"username", username,
			"error", err.Error())
		return model.Session{}, apierror.NewErrInvalidCredentials()
	}
	if !ok {
		a.logger.Info("Auth service: password mismatch",
			"username", username)
		return model.Session{}, apierror.NewErrInvalidCredentials()
	}

	session, err := a.issue(user)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"username", username)

	return session, nil
}

// Identify verifies a bearer credential and returns its claims. The user
// table is not consulted.
func (a *Auth) Identify(ctx context.Context, token string) (model.Claims, error) {
	if token == "" {
		return model.Claims{}, apierror.NewErrMissingAuthorizationToken()
	}

	claims, err := a.tokens.Parse(token)
	if err != nil {
		a.logger.Debug("Auth service: rejected credential",
			"error", err.Error())
		return model.Claims{}, apierror.NewErrInvalidAuthorizationToken()
	}

	revoked, err := a.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to check revocation",
			"username", claims.Username,
			"error", err.Error())
		return model.Claims{}, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		a.logger.Debug("Auth service: revoked credential presented",
			"username", claims.Username)
		return model.Claims{}, apierror.NewErrInvalidAuthorizationToken()
	}

	return claims, nil
}

// Revoke invalidates the credential the claims were read from until it would
// have expired anyway.
func (a *Auth) Revoke(ctx context.Context, claims model.Claims) error {
	if claims.ID == "" {
		return apierror.NewErrInvalidAuthorizationToken()
	}

	if err := a.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt); err != nil {
		a.logger.Error("Auth service: failed to revoke credential",
			"username", claims.Username,
			"error", err.Error())
		return fmt.Errorf("failed to revoke credential: %w", err)
	}

	a.logger.Info("Auth service: credential revoked",
		"username", claims.Username)

	return nil
}

func (a *Auth) issue(user model.User) (model.Session, error) {
	token, _, err := a.tokens.Generate(user.Username, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to generate credential",
			"username", user.Username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to generate credential: %w", err)
	}
	return model.Session{Token: token, User: user.Public()}, nil
}

func (a *Auth) verifyDummy(password string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Warn("Auth service: failed to prepare dummy hash",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash == "" {
		return
	}
	_, _ = a.hasher.Verify(password, a.dummyHash)
}
