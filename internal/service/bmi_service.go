package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
	"fitstack/internal/repository"
)

// BMIService handles BMI record operations.
type BMIService interface {
	CreateRecord(ctx context.Context, userID uint, height, weight float64) (*model.BMIRecord, error)
	ListRecords(ctx context.Context, userID uint) ([]model.BMIRecord, error)
}

type bmiService struct {
	bmiRepo  repository.BMIRepository
	userRepo repository.UserRepository
}

// NewBMIService creates a new BMI service.
func NewBMIService(bmiRepo repository.BMIRepository, userRepo repository.UserRepository) BMIService {
	return &bmiService{
		bmiRepo:  bmiRepo,
		userRepo: userRepo,
	}
}

// CreateRecord stores a measurement for an existing user.
func (s *bmiService) CreateRecord(ctx context.Context, userID uint, height, weight float64) (*model.BMIRecord, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	record := &model.BMIRecord{
		UserID: userID,
		Height: height,
		Weight: weight,
	}
	if err := s.bmiRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create bmi record: %w", err)
	}
	return record, nil
}

// ListRecords returns the user's measurements, newest first.
func (s *bmiService) ListRecords(ctx context.Context, userID uint) ([]model.BMIRecord, error) {
	records, err := s.bmiRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bmi records: %w", err)
	}
	return records, nil
}
