package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/Deba69/BookList/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type userDoc struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRepository struct {
	conn *Connection
}

func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{conn: conn}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}

	data, err := json.Marshal(userDoc(user))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to encode user: %w", err)
	}

	err = r.conn.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(usersBucket)
		if b.Get([]byte(user.Username)) != nil {
			return model.ErrAlreadyExists
		}
		return b.Put([]byte(user.Username), data)
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}

	var doc userDoc
	err := r.conn.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(usersBucket).Get([]byte(username))
		if v == nil {
			return model.ErrNotFound
		}
		return json.Unmarshal(v, &doc)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return model.User(doc), nil
}
