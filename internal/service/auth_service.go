package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitstack/internal/auth"
	"fitstack/internal/cache"
	"fitstack/internal/config"
	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
	"fitstack/internal/repository"
)

const bcryptCost = 10

// TokenDetail is one issued token with its expiry.
type TokenDetail struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// TokenPair is the access/refresh pair returned by register, login, and refresh.
type TokenPair struct {
	Access  TokenDetail `json:"access"`
	Refresh TokenDetail `json:"refresh"`
}

// RegisterUserInput carries the profile fields collected at registration.
type RegisterUserInput struct {
	Email       string
	Password    string
	Name        string
	Avatar      string
	DOB         time.Time
	Gender      model.Gender
	AccountType model.AccountType
}

// BMIRecordInput is the initial measurement created with a new user.
type BMIRecordInput struct {
	Height float64
	Weight float64
}

// ExpertApplicationInput is the evidence submitted with an expert registration.
type ExpertApplicationInput struct {
	Image       string
	Description string
}

// AuthService composes credential, token, and user persistence into the
// register/login/logout/refresh/reset flows.
type AuthService interface {
	Register(ctx context.Context, input RegisterUserInput, bmi BMIRecordInput, conditionIDs []uint) (*model.User, *TokenPair, error)
	RegisterExpert(ctx context.Context, input RegisterUserInput, application ExpertApplicationInput) (*model.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type authService struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	jwtService *auth.JWTService
	cache      *cache.Client

	accessTTL  time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	jwtService *auth.JWTService,
	cacheClient *cache.Client,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		cache:      cacheClient,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		resetTTL:   cfg.ResetTokenTTL,
	}
}

// Register creates a user with its nested BMI record and medical-condition
// links in one transaction, then issues an access/refresh pair.
func (s *authService) Register(ctx context.Context, input RegisterUserInput, bmi BMIRecordInput, conditionIDs []uint) (*model.User, *TokenPair, error) {
	if err := s.checkEmailFree(ctx, input.Email); err != nil {
		return nil, nil, err
	}

	user, err := s.buildUser(input)
	if err != nil {
		return nil, nil, err
	}
	user.BMIRecords = []model.BMIRecord{{
		Height: bmi.Height,
		Weight: bmi.Weight,
	}}

	if err := s.userRepo.CreateWithRelations(ctx, user, conditionIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent registration for the same email.
			return nil, nil, apperrors.ErrEmailTaken
		}
		if errors.Is(err, apperrors.ErrConditionNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	tokens, err := s.issueAuthTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// RegisterExpert creates a user with one nested expert application. Status and
// type are server-assigned; whatever the caller sent is ignored.
func (s *authService) RegisterExpert(ctx context.Context, input RegisterUserInput, application ExpertApplicationInput) (*model.User, *TokenPair, error) {
	if err := s.checkEmailFree(ctx, input.Email); err != nil {
		return nil, nil, err
	}

	user, err := s.buildUser(input)
	if err != nil {
		return nil, nil, err
	}
	user.Applications = []model.Application{{
		Type:        model.ApplicationTypeExpert,
		Status:      model.ApplicationStatusPending,
		Image:       application.Image,
		Description: application.Description,
	}}

	if err := s.userRepo.CreateWithRelations(ctx, user, nil); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperrors.ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("create expert user: %w", err)
	}

	tokens, err := s.issueAuthTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login authenticates a user and returns a fresh token pair. Unknown email and
// wrong password produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueAuthTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Logout consumes the stored refresh token. A second logout with the same
// token fails with not-found rather than silently succeeding.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokenRepo.DeleteByValue(ctx, refreshToken, model.TokenTypeRefresh); err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return err
		}
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

// Refresh rotates a refresh token: the presented token is consumed atomically
// and a brand-new pair is issued. Every failure collapses to a single
// unauthenticated error so callers learn nothing about the cause.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtService.Verify(refreshToken, model.TokenTypeRefresh)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	// Single conditional delete keyed by the exact stored value; two concurrent
	// refreshes with the same token cannot both pass this point.
	if err := s.tokenRepo.DeleteByValue(ctx, refreshToken, model.TokenTypeRefresh); err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	tokens, err := s.issueAuthTokens(ctx, user)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return tokens, nil
}

// ForgotPassword issues and persists a reset token when the email is known.
// It succeeds either way; callers never learn whether the email is registered.
// Delivery of the reset link is outside this service.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	resetToken, expiresAt, err := s.jwtService.Issue(user.ID, "", model.TokenTypeResetPassword, s.resetTTL)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	if err := s.tokenRepo.Create(ctx, &model.Token{
		Value:     resetToken,
		Type:      model.TokenTypeResetPassword,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	return nil
}

// ResetPassword consumes a reset token and stores the new password. All
// outstanding reset tokens for the user are invalidated, not just the one
// used, closing reuse windows from concurrently issued reset links.
func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.jwtService.Verify(resetToken, model.TokenTypeResetPassword)
	if err != nil {
		return apperrors.ErrUnauthenticated
	}

	// Signature validity alone is not enough: the stored row must still exist,
	// and consuming it must be the same conditional delete used for refresh
	// rotation so two concurrent resets cannot both spend one token.
	if err := s.tokenRepo.DeleteByValue(ctx, resetToken, model.TokenTypeResetPassword); err != nil {
		return apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return apperrors.ErrUnauthenticated
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.tokenRepo.DeleteByUserAndType(ctx, user.ID, model.TokenTypeResetPassword); err != nil {
		return fmt.Errorf("delete reset tokens: %w", err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(user.ID))
	return nil
}

// --- Helpers ---

func (s *authService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return apperrors.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}

func (s *authService) buildUser(input RegisterUserInput) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &model.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		Avatar:       input.Avatar,
		DOB:          input.DOB,
		Gender:       input.Gender,
		AccountType:  input.AccountType,
		Role:         model.RoleUser,
	}, nil
}

// issueAuthTokens mints an access/refresh pair. Only the refresh token is
// persisted; access tokens live on signature and expiry alone.
func (s *authService) issueAuthTokens(ctx context.Context, user *model.User) (*TokenPair, error) {
	accessToken, accessExpires, err := s.jwtService.Issue(user.ID, user.Role, model.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, refreshExpires, err := s.jwtService.Issue(user.ID, "", model.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	if err := s.tokenRepo.Create(ctx, &model.Token{
		Value:     refreshToken,
		Type:      model.TokenTypeRefresh,
		UserID:    user.ID,
		ExpiresAt: refreshExpires,
	}); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		Access:  TokenDetail{Token: accessToken, Expires: accessExpires},
		Refresh: TokenDetail{Token: refreshToken, Expires: refreshExpires},
	}, nil
}
