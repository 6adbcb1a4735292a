package service

import (
	"context"
	"fmt"

	"fitstack/internal/model"
	"fitstack/internal/repository"
)

// ConditionService exposes the medical-condition catalog.
type ConditionService interface {
	ListConditions(ctx context.Context) ([]model.MedicalCondition, error)
}

type conditionService struct {
	repo repository.MedicalConditionRepository
}

// NewConditionService creates a new condition service.
func NewConditionService(repo repository.MedicalConditionRepository) ConditionService {
	return &conditionService{repo: repo}
}

func (s *conditionService) ListConditions(ctx context.Context) ([]model.MedicalCondition, error) {
	conditions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conditions: %w", err)
	}
	return conditions, nil
}
