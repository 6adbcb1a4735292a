package repository

import (
	"context"

	"gorm.io/gorm"

	"fitstack/internal/model"
)

// BMIRepository defines persistence operations for BMI records.
type BMIRepository interface {
	Create(ctx context.Context, record *model.BMIRecord) error
	ListByUser(ctx context.Context, userID uint) ([]model.BMIRecord, error)
}

type bmiRepository struct {
	db *gorm.DB
}

// NewBMIRepository builds a GORM-backed repository.
func NewBMIRepository(db *gorm.DB) BMIRepository {
	return &bmiRepository{db: db}
}

func (r *bmiRepository) Create(ctx context.Context, record *model.BMIRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *bmiRepository) ListByUser(ctx context.Context, userID uint) ([]model.BMIRecord, error) {
	var records []model.BMIRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
