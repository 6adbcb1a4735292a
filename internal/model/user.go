package model

import "time"

// Role determines which actions a user may perform.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Gender of a user profile.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// AccountType is the membership tier of a user.
type AccountType string

const (
	AccountTypeBasic   AccountType = "BASIC"
	AccountTypeSilver  AccountType = "SILVER"
	AccountTypeGold    AccountType = "GOLD"
	AccountTypeVIP     AccountType = "VIP"
	AccountTypeDiamond AccountType = "DIAMOND"
)

// User represents a registered member of the platform.
type User struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Email        string      `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string      `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         string      `json:"name" gorm:"size:255;not null"`
	Avatar       string      `json:"avatar" gorm:"size:512"`
	DOB          time.Time   `json:"dob"`
	Gender       Gender      `json:"gender,omitempty" gorm:"size:16"`
	AccountType  AccountType `json:"accountType,omitempty" gorm:"size:16;default:'BASIC'"`
	Role         Role        `json:"role" gorm:"size:16;default:'USER';index"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`

	// Relations
	BMIRecords        []BMIRecord        `json:"bmiRecords,omitempty" gorm:"foreignKey:UserID"`
	MedicalConditions []MedicalCondition `json:"medicalConditions,omitempty" gorm:"many2many:user_medical_conditions"`
	Applications      []Application      `json:"applications,omitempty" gorm:"foreignKey:UserID"`
	ExpertProfile     *ExpertProfile     `json:"expertProfile,omitempty" gorm:"foreignKey:UserID"`
}
