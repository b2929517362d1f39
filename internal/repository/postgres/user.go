package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Deba69/BookList/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const (
	createUserQuery = `INSERT INTO users (username, email, password_hash, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING username, email, password_hash, created_at`

	getUserByUsernameQuery = `SELECT username, email, password_hash, created_at
			  FROM users WHERE username = $1`
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	var saved model.User
	err := r.db.QueryRowContext(ctx, createUserQuery,
		user.Username, user.Email, user.PasswordHash, user.CreatedAt,
	).Scan(&saved.Username, &saved.Email, &saved.PasswordHash, &saved.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := r.db.QueryRowContext(ctx, getUserByUsernameQuery, username).Scan(
		&user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}
