package repository

import (
	"context"

	"gorm.io/gorm"

	"fitstack/internal/model"
)

// MedicalConditionRepository defines persistence operations for the condition catalog.
type MedicalConditionRepository interface {
	Create(ctx context.Context, condition *model.MedicalCondition) error
	FindByName(ctx context.Context, name string) (*model.MedicalCondition, error)
	List(ctx context.Context) ([]model.MedicalCondition, error)
}

type medicalConditionRepository struct {
	db *gorm.DB
}

// NewMedicalConditionRepository builds a GORM-backed repository.
func NewMedicalConditionRepository(db *gorm.DB) MedicalConditionRepository {
	return &medicalConditionRepository{db: db}
}

func (r *medicalConditionRepository) Create(ctx context.Context, condition *model.MedicalCondition) error {
	return r.db.WithContext(ctx).Create(condition).Error
}

func (r *medicalConditionRepository) FindByName(ctx context.Context, name string) (*model.MedicalCondition, error) {
	var condition model.MedicalCondition
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&condition).Error; err != nil {
		return nil, err
	}
	return &condition, nil
}

func (r *medicalConditionRepository) List(ctx context.Context) ([]model.MedicalCondition, error) {
	var conditions []model.MedicalCondition
	if err := r.db.WithContext(ctx).Order("name").Find(&conditions).Error; err != nil {
		return nil, err
	}
	return conditions, nil
}
