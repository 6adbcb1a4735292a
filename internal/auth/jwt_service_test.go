package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitstack/internal/model"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, expiresAt, err := svc.Issue(42, model.RoleAdmin, model.TokenTypeAccess, 15*time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 2*time.Second)

	claims, err := svc.Verify(token, model.TokenTypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, model.TokenTypeAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_Verify_WrongType(t *testing.T) {
	svc := NewJWTService("test-secret")

	tests := []struct {
		name         string
		issueType    model.TokenType
		expectedType model.TokenType
	}{
		{
			name:         "refresh token presented as access token",
			issueType:    model.TokenTypeRefresh,
			expectedType: model.TokenTypeAccess,
		},
		{
			name:         "access token presented as refresh token",
			issueType:    model.TokenTypeAccess,
			expectedType: model.TokenTypeRefresh,
		},
		{
			name:         "reset token presented as access token",
			issueType:    model.TokenTypeResetPassword,
			expectedType: model.TokenTypeAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := svc.Issue(1, "", tt.issueType, time.Minute)
			assert.NoError(t, err)

			claims, err := svc.Verify(token, tt.expectedType)
			assert.ErrorIs(t, err, ErrWrongTokenType)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, _, err := svc.Issue(1, model.RoleUser, model.TokenTypeAccess, -time.Minute)
	assert.NoError(t, err)

	claims, err := svc.Verify(token, model.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a")
	verifier := NewJWTService("secret-b")

	token, _, err := issuer.Issue(1, model.RoleUser, model.TokenTypeAccess, time.Minute)
	assert.NoError(t, err)

	claims, err := verifier.Verify(token, model.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret")

	claims, err := svc.Verify("not-a-jwt", model.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Issue_UniqueIDs(t *testing.T) {
	svc := NewJWTService("test-secret")

	first, _, err := svc.Issue(1, model.RoleUser, model.TokenTypeRefresh, time.Hour)
	assert.NoError(t, err)
	second, _, err := svc.Issue(1, model.RoleUser, model.TokenTypeRefresh, time.Hour)
	assert.NoError(t, err)

	// Same user, same type, same ttl must still produce distinct tokens.
	assert.NotEqual(t, first, second)
}
