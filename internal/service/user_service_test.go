package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
)

func strPtr(s string) *string { return &s }

func TestUserService_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "test@example.com"}, nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.GetUser(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.GetUser(context.Background(), 404)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("updates name and rehashes password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
			ID:           7,
			Email:        "test@example.com",
			Name:         "Old Name",
			PasswordHash: "old-hash",
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
			return user.Name == "New Name" &&
				bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-password-123")) == nil
		})).Return(nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.UpdateUser(context.Background(), 7, UpdateUserInput{
			Name:     strPtr("New Name"),
			Password: strPtr("new-password-123"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("new email must be free", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "old@example.com"}, nil)
		mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{ID: 8, Email: "taken@example.com"}, nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.UpdateUser(context.Background(), 7, UpdateUserInput{Email: strPtr("taken@example.com")})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("keeping the same email skips the uniqueness check", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "same@example.com"}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, nil)
		_, err := svc.UpdateUser(context.Background(), 7, UpdateUserInput{Email: strPtr("same@example.com")})

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.UpdateUser(context.Background(), 404, UpdateUserInput{Name: strPtr("x")})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

		svc := NewUserService(mockRepo, nil)
		assert.NoError(t, svc.DeleteUser(context.Background(), 7))
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(404)).Return(apperrors.ErrUserNotFound)

		svc := NewUserService(mockRepo, nil)
		assert.ErrorIs(t, svc.DeleteUser(context.Background(), 404), apperrors.ErrUserNotFound)
	})
}
