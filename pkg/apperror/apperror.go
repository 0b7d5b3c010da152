package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrMisconfigured = errors.New("server misconfigured")
	ErrInternal      = errors.New("internal server error")
)

// AppError carries a base sentinel for status mapping, a client-safe Message,
// and internal Details/Err that stay in the logs.
type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (details: %s, cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func New(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

// NewNotFound uses the fixed client message the admin UI matches on.
func NewNotFound(resource, identifier string) *AppError {
	details := fmt.Sprintf("%s with id '%s' was not found", resource, identifier)
	return New(ErrNotFound, "Item not found", details, nil)
}

func NewInvalidInput(msg string, err error) *AppError {
	return New(ErrInvalidInput, msg, "validation failed", err)
}

func NewUnauthorized(details string) *AppError {
	return New(ErrUnauthorized, "Invalid password", details, nil)
}

func NewMisconfigured(details string) *AppError {
	return New(ErrMisconfigured, "Server misconfigured", details, nil)
}

func NewInternal(details string, err error) *AppError {
	return New(ErrInternal, "Internal server error", details, err)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ToJSON renders the uniform failure envelope.
func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"success": false,
		"error":   e.Message,
	}
}
