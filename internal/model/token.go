package model

import "time"

// TokenType distinguishes access, refresh, and password-reset tokens.
type TokenType string

const (
	TokenTypeAccess        TokenType = "ACCESS"
	TokenTypeRefresh       TokenType = "REFRESH"
	TokenTypeResetPassword TokenType = "RESET_PASSWORD"
)

// Token is a persisted refresh or reset token. Access tokens are never stored;
// a REFRESH or RESET_PASSWORD token is only honored while its row exists, which
// is what makes logout, rotation, and single-use reset possible.
type Token struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"uniqueIndex;size:512;not null"`
	Type      TokenType `json:"type" gorm:"size:32;not null;index"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
