package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
//
// Create must rely on the backing store's uniqueness guarantee for Username and
// return ErrAlreadyExists when it is violated.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

// User represents a stored user with authentication material.
type User struct {
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the user view returned to clients.
type PublicUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public strips authentication material from the user.
func (u User) Public() PublicUser {
	return PublicUser{Username: u.Username, Email: u.Email}
}

// Session is the result of a successful signup or login.
type Session struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// PasswordHasher derives and verifies stored password material.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}
