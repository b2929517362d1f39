package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// serve runs a single request against an engine with only the given route.
func serve(t *testing.T, method, route, target string, body string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	engine := gin.New()
	engine.UseRawPath = true
	engine.Handle(method, route, h)

	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[ErrorResponse](t, rec).Error
}
