package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
)

// TokenRepository persists refresh and reset tokens. The stored row is the
// revocation ledger: a token is only honored while its row exists.
type TokenRepository interface {
	Create(ctx context.Context, token *model.Token) error
	// DeleteByValue consumes a token in a single conditional delete. Zero rows
	// affected means it was already consumed or never stored; two concurrent
	// consumers can never both succeed.
	DeleteByValue(ctx context.Context, value string, tokenType model.TokenType) error
	DeleteByUserAndType(ctx context.Context, userID uint, tokenType model.TokenType) error
	DeleteExpired(ctx context.Context) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *model.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) DeleteByValue(ctx context.Context, value string, tokenType model.TokenType) error {
	result := r.db.WithContext(ctx).
		Where("value = ? AND type = ?", value, tokenType).
		Delete(&model.Token{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTokenNotFound
	}
	return nil
}

func (r *tokenRepository) DeleteByUserAndType(ctx context.Context, userID uint, tokenType model.TokenType) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, tokenType).
		Delete(&model.Token{}).Error
}

func (r *tokenRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.Token{}).Error
}
