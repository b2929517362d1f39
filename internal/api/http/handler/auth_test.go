package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/mocks"
	"github.com/Deba69/BookList/internal/model"
	"github.com/Deba69/BookList/internal/testutil"
)

func TestAuth_Signup(t *testing.T) {
	session := model.Session{Token: "tok", User: model.PublicUser{Username: "alice", Email: "a@x.com"}}

	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.AuthService)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"pw","email":"a@x.com"}`,
			setup: func(s *mocks.AuthService) {
				s.On("Register", mock.Anything, "alice", "pw", "a@x.com").Return(session, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "duplicate",
			body: `{"username":"alice","password":"pw2","email":"b@x.com"}`,
			setup: func(s *mocks.AuthService) {
				s.On("Register", mock.Anything, "alice", "pw2", "b@x.com").Return(model.Session{}, apierror.NewErrUsernameTaken("alice"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "missing field",
			body: `{"username":"alice"}`,
			setup: func(s *mocks.AuthService) {
				s.On("Register", mock.Anything, "alice", "", "").Return(model.Session{}, apierror.NewErrMissingField("password"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewAuthService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewAuth(svc, mocks.NewContextManager(t), testutil.MakeNoopLogger())

			rec := serve(t, http.MethodPost, "/signup", "/signup", tt.body, h.Signup)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, session, decode[model.Session](t, rec))
			}
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("Authenticate", mock.Anything, "alice", "pw").
			Return(model.Session{Token: "tok", User: model.PublicUser{Username: "alice", Email: "a@x.com"}}, nil)

		h := NewAuth(svc, mocks.NewContextManager(t), testutil.MakeNoopLogger())
		rec := serve(t, http.MethodPost, "/login", "/login", `{"username":"alice","password":"pw"}`, h.Login)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tok", decode[model.Session](t, rec).Token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("Authenticate", mock.Anything, "alice", "bad").Return(model.Session{}, apierror.NewErrInvalidCredentials())

		h := NewAuth(svc, mocks.NewContextManager(t), testutil.MakeNoopLogger())
		rec := serve(t, http.MethodPost, "/login", "/login", `{"username":"alice","password":"bad"}`, h.Login)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid credentials", errorBody(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewAuth(mocks.NewAuthService(t), mocks.NewContextManager(t), testutil.MakeNoopLogger())
		rec := serve(t, http.MethodPost, "/login", "/login", `not json`, h.Login)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuth_Me(t *testing.T) {
	iat := time.Unix(1_770_000_000, 0)
	claims := model.Claims{Username: "alice", Email: "a@x.com", ID: "jti", IssuedAt: iat, ExpiresAt: iat.Add(model.CredentialTTL)}

	cm := mocks.NewContextManager(t)
	cm.On("GetClaimsFromContext", mock.Anything).Return(claims, true)

	h := NewAuth(mocks.NewAuthService(t), cm, testutil.MakeNoopLogger())
	rec := serve(t, http.MethodGet, "/me", "/me", "", h.Me)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]ClaimsView](t, rec)
	assert.Equal(t, ClaimsView{
		Username:  "alice",
		Email:     "a@x.com",
		IssuedAt:  iat.Unix(),
		ExpiresAt: iat.Add(model.CredentialTTL).Unix(),
	}, got["user"])
}

func TestAuth_Logout(t *testing.T) {
	claims := model.Claims{Username: "alice", ID: "jti"}

	t.Run("success", func(t *testing.T) {
		cm := mocks.NewContextManager(t)
		cm.On("GetClaimsFromContext", mock.Anything).Return(claims, true)
		svc := mocks.NewAuthService(t)
		svc.On("Revoke", mock.Anything, claims).Return(nil)

		h := NewAuth(svc, cm, testutil.MakeNoopLogger())
		rec := serve(t, http.MethodPost, "/logout", "/logout", "", h.Logout)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("no claims", func(t *testing.T) {
		cm := mocks.NewContextManager(t)
		cm.On("GetClaimsFromContext", mock.Anything).Return(model.Claims{}, false)

		h := NewAuth(mocks.NewAuthService(t), cm, testutil.MakeNoopLogger())
		rec := serve(t, http.MethodPost, "/logout", "/logout", "", h.Logout)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
