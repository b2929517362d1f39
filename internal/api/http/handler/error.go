package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError renders err with the status of its kind. Errors outside the
// apierror taxonomy are logged and reported as a generic 500.
func WriteError(c *gin.Context, logger *logger.Logger, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), ErrorResponse{Error: apiErr.Message})
		return
	}

	logger.Error("HTTP handler: internal error",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err.Error())
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
