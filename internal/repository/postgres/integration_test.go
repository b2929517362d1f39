//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Deba69/BookList/internal/model"
	repo "github.com/Deba69/BookList/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "booklist_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/booklist_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		u := model.User{
			Username:     "alice",
			Email:        "a@x.com",
			PasswordHash: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
			CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		}
		saved, err := ur.Create(ctx, u)
		require.NoError(t, err)
		require.Equal(t, u.Username, saved.Username)

		_, err = ur.Create(ctx, model.User{Username: "alice", Email: "other@x.com", PasswordHash: "h", CreatedAt: time.Now()})
		require.ErrorIs(t, err, model.ErrAlreadyExists)

		_, err = ur.Create(ctx, model.User{Username: "Alice", Email: "A@x.com", PasswordHash: "h", CreatedAt: time.Now()})
		require.NoError(t, err, "usernames are case-sensitive")

		got, err := ur.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, "a@x.com", got.Email)

		_, err = ur.GetByUsername(ctx, "ghost")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("review_repository", func(t *testing.T) {
		rr := repo.NewReviewRepository(conn)
		base := time.Now().UTC().Truncate(time.Microsecond)

		var ids []uuid.UUID
		for i, rating := range []float64{5, 3, 4.5} {
			r := model.Review{
				ID:        uuid.New(),
				BookKey:   "OL1W",
				Username:  "alice",
				Rating:    rating,
				Comment:   "x",
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			}
			saved, err := rr.Create(ctx, r)
			require.NoError(t, err)
			require.Equal(t, r, saved)
			ids = append(ids, r.ID)
		}

		list, err := rr.ListByBookKey(ctx, "OL1W")
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, ids[2], list[0].ID)
		assert.Equal(t, 4.5, list[0].Rating)

		stats, err := rr.AverageRatings(ctx, []string{"OL1W", "OL404W"})
		require.NoError(t, err)
		assert.Equal(t, model.RatingStats{Sum: 12.5, Count: 3}, stats["OL1W"])
		_, ok := stats["OL404W"]
		assert.False(t, ok)

		require.NoError(t, rr.Delete(ctx, ids[0]))
		require.ErrorIs(t, rr.Delete(ctx, ids[0]), model.ErrNotFound)
		_, err = rr.GetByID(ctx, ids[0])
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("revocation_repository", func(t *testing.T) {
		rv := repo.NewRevocationRepository(conn)
		jti := uuid.NewString()

		revoked, err := rv.IsRevoked(ctx, jti)
		require.NoError(t, err)
		require.False(t, revoked)

		require.NoError(t, rv.Revoke(ctx, jti, time.Now().Add(time.Hour)))
		require.NoError(t, rv.Revoke(ctx, jti, time.Now().Add(time.Hour)))

		revoked, err = rv.IsRevoked(ctx, jti)
		require.NoError(t, err)
		require.True(t, revoked)
	})
}

func TestUserRepository_ConcurrentSignupRace(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	const attempts = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := ur.Create(ctx, model.User{
				Username:     "racer",
				Email:        fmt.Sprintf("r%d@x.com", i),
				PasswordHash: "h",
				CreatedAt:    time.Now(),
			})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, model.ErrAlreadyExists)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}
