package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The same error covers unknown email and wrong password so callers cannot
	// tell which one failed.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrUnauthenticated is returned for bad, expired, revoked, or consumed tokens.
	ErrUnauthenticated = errors.New("please authenticate")
	// ErrForbidden is returned when the caller's role lacks the required permission.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound is returned when a user lookup by id misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrTokenNotFound is returned when a stored token is absent (already
	// consumed or revoked).
	ErrTokenNotFound = errors.New("token not found")
	// ErrApplicationNotFound is returned when an application lookup by id misses.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrApplicationDecided is returned when changing the status of an
	// application that has already been approved or rejected.
	ErrApplicationDecided = errors.New("application already decided")
	// ErrConditionNotFound is returned when a referenced medical condition does
	// not exist in the catalog.
	ErrConditionNotFound = errors.New("medical condition not found")
)

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
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTokenNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TOKEN_NOT_FOUND")
	case errors.Is(err, ErrApplicationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "APPLICATION_NOT_FOUND")
	case errors.Is(err, ErrApplicationDecided):
		return NewHTTPError(http.StatusConflict, err.Error(), "APPLICATION_DECIDED")
	case errors.Is(err, ErrConditionNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONDITION_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
