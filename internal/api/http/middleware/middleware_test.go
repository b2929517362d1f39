package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/mocks"
	"github.com/Deba69/BookList/internal/model"
	"github.com/Deba69/BookList/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	claims := model.Claims{Username: "alice", ID: "jti"}

	tests := []struct {
		name        string
		header      string
		identifyErr error
		wantStatus  int
		wantCalled  bool
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", identifyErr: apierror.NewErrInvalidAuthorizationToken(), wantStatus: http.StatusUnauthorized, wantCalled: true},
		{name: "valid token", header: "Bearer tok", wantStatus: http.StatusOK, wantCalled: true},
		{name: "lowercase scheme", header: "bearer tok", wantStatus: http.StatusOK, wantCalled: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			identifier := mocks.NewIdentifier(t)
			cm := mocks.NewContextManager(t)
			if tt.wantCalled {
				token := tt.header[len("Bearer "):]
				if tt.identifyErr != nil {
					identifier.On("Identify", mock.Anything, token).Return(model.Claims{}, tt.identifyErr)
				} else {
					identifier.On("Identify", mock.Anything, token).Return(claims, nil)
					cm.On("SetClaimsToContext", mock.Anything, claims).
						Return(func(ctx context.Context, c model.Claims) context.Context { return ctx })
				}
			}

			reached := false
			engine := gin.New()
			engine.GET("/p", NewAuthenticate(identifier, cm, testutil.MakeNoopLogger()).Handle(), func(c *gin.Context) {
				reached = true
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
		})
	}
}

func TestLogging_Handle(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithFormat(&buf, 0, "json")

	engine := gin.New()
	engine.Use(NewLogging(lg).Handle())
	engine.GET("/books/:bookKey/reviews", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/OL1W/reviews", nil))

	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP request rejected"`)
	assert.Contains(t, out, `"path":"/books/:bookKey/reviews"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"method":"GET"`)
}

func TestCORS(t *testing.T) {
	newEngine := func(origins ...string) *gin.Engine {
		engine := gin.New()
		engine.Use(CORS(origins))
		engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		return engine
	}

	t.Run("wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		newEngine("*").ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://books.example")
		rec := httptest.NewRecorder()
		newEngine("https://books.example").ServeHTTP(rec, req)

		assert.Equal(t, "https://books.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("unlisted origin gets no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		newEngine("https://books.example").ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		newEngine("*").ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})
}

func TestTimeout(t *testing.T) {
	t.Run("sets deadline", func(t *testing.T) {
		var deadline time.Time
		var ok bool

		engine := gin.New()
		engine.Use(Timeout(time.Second))
		engine.GET("/x", func(c *gin.Context) {
			deadline, ok = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
	})

	t.Run("disabled", func(t *testing.T) {
		var ok bool

		engine := gin.New()
		engine.Use(Timeout(0))
		engine.GET("/x", func(c *gin.Context) {
			_, ok = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.False(t, ok)
	})
}
