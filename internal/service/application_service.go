package service

import (
	"context"
	"errors"
	"fmt"

	"fitstack/internal/cache"
	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
	"fitstack/internal/repository"
)

// ApplicationService handles admin decisions on expert applications.
type ApplicationService interface {
	ChangeApplicationStatus(ctx context.Context, id uint, status model.ApplicationStatus, approverID uint) (*model.Application, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	cache           *cache.Client
}

// NewApplicationService creates a new application service.
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	cacheClient *cache.Client,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		cache:           cacheClient,
	}
}

// ChangeApplicationStatus records a terminal PENDING -> APPROVED|REJECTED
// decision. Approving an EXPERT application creates the submitter's expert
// profile from the application's evidence, exactly once: the status transition
// and the profile row are written in one transaction, conditional on the row
// still being PENDING, so a second decision (or a concurrent one) fails with a
// conflict and never half-applies.
func (s *applicationService) ChangeApplicationStatus(ctx context.Context, id uint, status model.ApplicationStatus, approverID uint) (*model.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	if application.Status != model.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationDecided
	}

	var profile *model.ExpertProfile
	if application.Type == model.ApplicationTypeExpert && status == model.ApplicationStatusApproved {
		profile = &model.ExpertProfile{
			UserID:      application.UserID,
			CertImage:   application.Image,
			Description: application.Description,
		}
	}

	if err := s.applicationRepo.UpdateDecision(ctx, id, status, approverID, profile); err != nil {
		if errors.Is(err, apperrors.ErrApplicationDecided) {
			return nil, err
		}
		return nil, fmt.Errorf("update application: %w", err)
	}
	application.Status = status
	application.ApprovedByID = &approverID

	if profile != nil {
		_ = s.cache.Delete(ctx, userCacheKey(application.UserID))
	}

	return application, nil
}
