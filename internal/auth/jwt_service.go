package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"fitstack/internal/model"
)

var (
	// ErrInvalidToken is returned when a token fails signature or structural checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrWrongTokenType is returned when a token's type claim does not match the
	// expected one, e.g. an access token presented where a refresh token is required.
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims represents JWT claims. Type distinguishes access, refresh, and reset
// tokens signed with the same secret. Role is only set on access tokens.
type Claims struct {
	UserID uint            `json:"user_id"`
	Role   model.Role      `json:"role,omitempty"`
	Type   model.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// Issue generates a signed token of the given type for the user, valid for ttl.
// The expiry is returned so callers can surface it to clients and persist it
// alongside refresh and reset tokens.
func (s *JWTService) Issue(userID uint, role model.Role, tokenType model.TokenType, ttl time.Duration) (token string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(ttl)
	claims := &Claims{
		UserID: userID,
		Role:   role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(s.secret)
	return token, expiresAt, err
}

// Verify checks signature, expiry, and type of a token and returns its claims.
// It performs no store lookup; callers that need revocation semantics must
// additionally check the token table for REFRESH and RESET_PASSWORD tokens.
func (s *JWTService) Verify(tokenString string, expectedType model.TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != expectedType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
