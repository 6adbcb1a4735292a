package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// CreateWithRelations creates a user together with its nested BMI records,
	// applications, and medical-condition links in one transaction. A user must
	// never exist without its nested rows.
	CreateWithRelations(ctx context.Context, user *model.User, conditionIDs []uint) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, page, limit int, sortBy, sortType string) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) CreateWithRelations(ctx context.Context, user *model.User, conditionIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Nested BMIRecords and Applications on the struct are created with the user.
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if len(conditionIDs) == 0 {
			return nil
		}
		var conditions []model.MedicalCondition
		if err := tx.Find(&conditions, conditionIDs).Error; err != nil {
			return err
		}
		if len(conditions) != len(conditionIDs) {
			return apperrors.ErrConditionNotFound
		}
		return tx.Model(user).Association("MedicalConditions").Append(&conditions)
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("ExpertProfile").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// userSortColumns is the set of columns List accepts for ordering. sortBy is
// caller input and must never reach the ORDER BY clause unchecked.
var userSortColumns = map[string]bool{
	"id":         true,
	"email":      true,
	"name":       true,
	"role":       true,
	"created_at": true,
	"updated_at": true,
}

// userOrderClause returns the ORDER BY expression for a sort request, or the
// empty string when the column is not sortable.
func userOrderClause(sortBy, sortType string) string {
	if !userSortColumns[sortBy] {
		return ""
	}
	if sortType != "asc" {
		sortType = "desc"
	}
	return sortBy + " " + sortType
}

func (r *userRepository) List(ctx context.Context, page, limit int, sortBy, sortType string) ([]model.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := r.db.WithContext(ctx).Offset((page - 1) * limit).Limit(limit)
	if clause := userOrderClause(sortBy, sortType); clause != "" {
		query = query.Order(clause)
	}

	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
