package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login failure. The message is
	// deliberately identical for unknown email, wrong password and
	// inactive account so callers cannot probe which one it was.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInvalidToken is returned for any authentication failure on a
	// bearer token: bad signature, malformed, expired, missing roles or
	// unknown subject. One error for all causes.
	ErrInvalidToken = errors.New("could not validate credentials")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrClassNotFound is returned when a referenced class does not exist.
	ErrClassNotFound = errors.New("class not found")
	// ErrClassFull is returned when a class has no remaining seats.
	ErrClassFull = errors.New("class is fully booked")
)

// ForbiddenError is returned when a caller's role is not in the
// allow-list for an operation. Unlike authentication failures, the
// required roles are safe to disclose.
type ForbiddenError struct {
	Required string
}

func (e *ForbiddenError) Error() string {
	return "not enough permissions, required roles: " + e.Required
}

// NewForbiddenError creates a ForbiddenError naming the allowed roles.
func NewForbiddenError(required string) *ForbiddenError {
	return &ForbiddenError{Required: required}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var forbidden *ForbiddenError
	if errors.As(err, &forbidden) {
		return NewHTTPError(http.StatusForbidden, forbidden.Error(), "FORBIDDEN")
	}
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrClassNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLASS_NOT_FOUND")
	case errors.Is(err, ErrClassFull):
		return NewHTTPError(http.StatusConflict, err.Error(), "CLASS_FULL")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
