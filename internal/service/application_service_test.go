package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
)

// MockApplicationRepository is a mock implementation of ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id uint) (*model.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateDecision(ctx context.Context, id uint, status model.ApplicationStatus, approverID uint, profile *model.ExpertProfile) error {
	args := m.Called(ctx, id, status, approverID, profile)
	return args.Error(0)
}

func pendingExpertApplication() *model.Application {
	return &model.Application{
		ID:          1,
		Type:        model.ApplicationTypeExpert,
		Status:      model.ApplicationStatusPending,
		UserID:      7,
		Image:       "https://example.com/cert.png",
		Description: "Certified trainer",
	}
}

func TestApplicationService_ChangeApplicationStatus(t *testing.T) {
	const approverID = uint(99)

	t.Run("approving writes the decision and the expert profile together", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepository)

		mockAppRepo.On("FindByID", mock.Anything, uint(1)).Return(pendingExpertApplication(), nil)
		mockAppRepo.On("UpdateDecision", mock.Anything, uint(1), model.ApplicationStatusApproved, approverID,
			mock.MatchedBy(func(profile *model.ExpertProfile) bool {
				return profile != nil &&
					profile.UserID == 7 &&
					profile.CertImage == "https://example.com/cert.png" &&
					profile.Description == "Certified trainer"
			})).Return(nil)

		svc := NewApplicationService(mockAppRepo, nil)
		application, err := svc.ChangeApplicationStatus(context.Background(), 1, model.ApplicationStatusApproved, approverID)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusApproved, application.Status)
		assert.NotNil(t, application.ApprovedByID)
		assert.Equal(t, approverID, *application.ApprovedByID)

		mockAppRepo.AssertExpectations(t)
	})

	t.Run("rejecting passes no profile", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepository)

		mockAppRepo.On("FindByID", mock.Anything, uint(1)).Return(pendingExpertApplication(), nil)
		mockAppRepo.On("UpdateDecision", mock.Anything, uint(1), model.ApplicationStatusRejected, approverID, (*model.ExpertProfile)(nil)).Return(nil)

		svc := NewApplicationService(mockAppRepo, nil)
		application, err := svc.ChangeApplicationStatus(context.Background(), 1, model.ApplicationStatusRejected, approverID)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusRejected, application.Status)
		mockAppRepo.AssertExpectations(t)
	})

	t.Run("already decided application conflicts", func(t *testing.T) {
		decided := pendingExpertApplication()
		decided.Status = model.ApplicationStatusApproved

		mockAppRepo := new(MockApplicationRepository)
		mockAppRepo.On("FindByID", mock.Anything, uint(1)).Return(decided, nil)

		svc := NewApplicationService(mockAppRepo, nil)
		application, err := svc.ChangeApplicationStatus(context.Background(), 1, model.ApplicationStatusRejected, approverID)

		assert.ErrorIs(t, err, apperrors.ErrApplicationDecided)
		assert.Nil(t, application)
		mockAppRepo.AssertNotCalled(t, "UpdateDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent decision loses the conditional update", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepository)

		// The row read PENDING but another admin decided it in between.
		mockAppRepo.On("FindByID", mock.Anything, uint(1)).Return(pendingExpertApplication(), nil)
		mockAppRepo.On("UpdateDecision", mock.Anything, uint(1), model.ApplicationStatusApproved, approverID, mock.Anything).Return(apperrors.ErrApplicationDecided)

		svc := NewApplicationService(mockAppRepo, nil)
		application, err := svc.ChangeApplicationStatus(context.Background(), 1, model.ApplicationStatusApproved, approverID)

		assert.ErrorIs(t, err, apperrors.ErrApplicationDecided)
		assert.Nil(t, application)
	})

	t.Run("unknown application", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepository)
		mockAppRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, apperrors.ErrApplicationNotFound)

		svc := NewApplicationService(mockAppRepo, nil)
		application, err := svc.ChangeApplicationStatus(context.Background(), 42, model.ApplicationStatusApproved, approverID)

		assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
		assert.Nil(t, application)
	})
}
