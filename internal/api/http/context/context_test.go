package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Deba69/BookList/internal/model"
)

func TestManager_SetAndGetClaims(t *testing.T) {
	m := NewManager()
	claims := model.Claims{Username: "alice", Email: "a@x.com", ID: "jti"}
	ctx := m.SetClaimsToContext(stdctx.Background(), claims)

	got, ok := m.GetClaimsFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, claims, got)
}

func TestManager_GetClaims_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetClaimsFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetClaims_EmptyUsername(t *testing.T) {
	m := NewManager()
	ctx := m.SetClaimsToContext(stdctx.Background(), model.Claims{Email: "a@x.com"})
	_, ok := m.GetClaimsFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_Overwrite(t *testing.T) {
	m := NewManager()
	ctx := m.SetClaimsToContext(stdctx.Background(), model.Claims{Username: "alice"})
	ctx = m.SetClaimsToContext(ctx, model.Claims{Username: "bob"})

	got, ok := m.GetClaimsFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "bob", got.Username)
}
