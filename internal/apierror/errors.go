// Package apierror defines the client-facing error taxonomy of the server.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindConflict
	KindNotFound
	KindUpstream
)

var kindStatus = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindConflict:     http.StatusConflict,
	KindNotFound:     http.StatusNotFound,
	KindUpstream:     http.StatusBadGateway,
}

// APIError is a request-scoped failure safe to show to the client.
type APIError struct {
	Kind    Kind
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the status code the error is reported with.
func (e *APIError) HTTPStatus() int {
	if code, ok := kindStatus[e.Kind]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Is reports whether any error in err's chain is an APIError of the given kind.
func Is(err error, kind Kind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

func NewErrMissingField(field string) *APIError {
	return &APIError{Kind: KindInvalidInput, Message: fmt.Sprintf("%s is required", field)}
}

func NewErrInvalidRequest(reason string) *APIError {
	return &APIError{Kind: KindInvalidInput, Message: fmt.Sprintf("invalid request: %s", reason)}
}

func NewErrUsernameTaken(username string) *APIError {
	return &APIError{Kind: KindConflict, Message: fmt.Sprintf("username %q is already taken", username)}
}

func NewErrInvalidCredentials() *APIError {
	return &APIError{Kind: KindUnauthorized, Message: "invalid credentials"}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Kind: KindUnauthorized, Message: "missing authorization token"}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Kind: KindUnauthorized, Message: "invalid authorization token"}
}

func NewErrReviewNotFound(id string) *APIError {
	return &APIError{Kind: KindNotFound, Message: fmt.Sprintf("review %s not found", id)}
}

func NewErrNotReviewOwner(id string) *APIError {
	return &APIError{Kind: KindForbidden, Message: fmt.Sprintf("review %s belongs to another user", id)}
}

func NewErrBookNotFound(key string) *APIError {
	return &APIError{Kind: KindNotFound, Message: fmt.Sprintf("book %s not found", key)}
}

func NewErrCatalogUnavailable() *APIError {
	return &APIError{Kind: KindUpstream, Message: "failed to load catalog data"}
}
