package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/model"
)

// AuthService defines signup, login and logout operations.
type AuthService interface {
	Register(ctx context.Context, username, password, email string) (model.Session, error)
	Authenticate(ctx context.Context, username, password string) (model.Session, error)
	Revoke(ctx context.Context, claims model.Claims) error
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ClaimsView is the JSON form of the claims of the calling credential.
type ClaimsView struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Auth handles the identity endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Signup registers a user and returns a credential for it.
func (h *Auth) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, h.logger, apierror.NewErrInvalidRequest("malformed JSON body"))
		return
	}

	session, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Login exchanges a username and password for a credential.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, h.logger, apierror.NewErrInvalidRequest("malformed JSON body"))
		return
	}

	session, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Me echoes the claims of the calling credential.
func (h *Auth) Me(c *gin.Context) {
	claims, ok := h.contextManager.GetClaimsFromContext(c.Request.Context())
	if !ok {
		WriteError(c, h.logger, apierror.NewErrMissingAuthorizationToken())
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": ClaimsView{
		Username:  claims.Username,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Unix(),
		ExpiresAt: claims.ExpiresAt.Unix(),
	}})
}

// Logout revokes the calling credential.
func (h *Auth) Logout(c *gin.Context) {
	claims, ok := h.contextManager.GetClaimsFromContext(c.Request.Context())
	if !ok {
		WriteError(c, h.logger, apierror.NewErrMissingAuthorizationToken())
		return
	}

	if err := h.authService.Revoke(c.Request.Context(), claims); err != nil {
		WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
