package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Deba69/BookList/internal/api/http/handler"
	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/model"
)

// Identifier resolves the claims of a bearer credential.
type Identifier interface {
	Identify(ctx context.Context, token string) (model.Claims, error)
}

// Authenticate validates bearer tokens and injects claims into the request context.
type Authenticate struct {
	identifier     Identifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(identifier Identifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{identifier: identifier, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid "Authorization: Bearer <token>"
// header.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			handler.WriteError(c, m.logger, apierror.NewErrMissingAuthorizationToken())
			return
		}

		claims, err := m.identifier.Identify(c.Request.Context(), tokenString)
		if err != nil {
			handler.WriteError(c, m.logger, err)
			return
		}

		ctx := m.contextManager.SetClaimsToContext(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
