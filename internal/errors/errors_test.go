package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"email taken", ErrEmailTaken, http.StatusBadRequest, "EMAIL_TAKEN"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"token not found", ErrTokenNotFound, http.StatusNotFound, "TOKEN_NOT_FOUND"},
		{"application not found", ErrApplicationNotFound, http.StatusNotFound, "APPLICATION_NOT_FOUND"},
		{"application decided", ErrApplicationDecided, http.StatusConflict, "APPLICATION_DECIDED"},
		{"condition not found", ErrConditionNotFound, http.StatusBadRequest, "CONDITION_NOT_FOUND"},
		{"wrapped errors unwrap", fmt.Errorf("outer: %w", ErrUserNotFound), http.StatusNotFound, "USER_NOT_FOUND"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_UnknownErrorHidesDetails(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dsn user:pass@tcp(db)/x"))
	assert.Equal(t, "internal server error", httpErr.Message)
}
