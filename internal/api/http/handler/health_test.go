package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Deba69/BookList/internal/mocks"
	"github.com/Deba69/BookList/internal/testutil"
)

func TestHealth_Check(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		store := mocks.NewPinger(t)
		store.On("Ping", mock.Anything).Return(nil)

		rec := serve(t, http.MethodGet, "/healthz", "/healthz", "", NewHealth(store, testutil.MakeNoopLogger()).Check)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("store down", func(t *testing.T) {
		store := mocks.NewPinger(t)
		store.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		rec := serve(t, http.MethodGet, "/healthz", "/healthz", "", NewHealth(store, testutil.MakeNoopLogger()).Check)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
