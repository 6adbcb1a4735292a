package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
)

// ApplicationRepository defines persistence operations for expert applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id uint) (*model.Application, error)
	// UpdateDecision records the terminal status transition and, when profile is
	// non-nil, creates the expert profile in the same transaction. The update is
	// conditional on the row still being PENDING; zero rows affected means a
	// concurrent decision won and nothing is written.
	UpdateDecision(ctx context.Context, id uint, status model.ApplicationStatus, approverID uint, profile *model.ExpertProfile) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository builds a GORM-backed repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uint) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).First(&application, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) UpdateDecision(ctx context.Context, id uint, status model.ApplicationStatus, approverID uint, profile *model.ExpertProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&model.Application{}).
			Where("id = ? AND status = ?", id, model.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":         status,
				"approved_by_id": approverID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrApplicationDecided
		}
		if profile == nil {
			return nil
		}
		return tx.Create(profile).Error
	})
}
