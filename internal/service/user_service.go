package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitstack/internal/cache"
	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
	"fitstack/internal/repository"
)

const userCacheTTL = 5 * time.Minute

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// UpdateUserInput carries the optional fields of a user update.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Name     *string
}

// UserService handles user CRUD.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, page, limit int, sortBy, sortType string) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, update UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, cacheClient *cache.Client) UserService {
	return &userService{
		repo:  repo,
		cache: cacheClient,
	}
}

// GetUser retrieves a user by ID with caching.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(id), payload, userCacheTTL)
	}

	return user, nil
}

// ListUsers returns a page of users.
func (s *userService) ListUsers(ctx context.Context, page, limit int, sortBy, sortType string) ([]model.User, error) {
	users, err := s.repo.List(ctx, page, limit, sortBy, sortType)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies the provided fields. Changing the email re-checks
// uniqueness; changing the password re-hashes it.
func (s *userService) UpdateUser(ctx context.Context, id uint, update UpdateUserInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if update.Email != nil && *update.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *update.Email); err == nil {
			return nil, apperrors.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		user.Email = *update.Email
	}
	if update.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}
	if update.Name != nil {
		user.Name = *update.Name
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(id))
	return user, nil
}

// DeleteUser removes a user.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(id))
	return nil
}
