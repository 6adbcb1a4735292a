package model

import "time"

// ApplicationStatus is the review state of an application. The transition
// PENDING -> APPROVED|REJECTED is terminal.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// ApplicationType is the kind of elevated status requested.
type ApplicationType string

const (
	ApplicationTypeExpert ApplicationType = "EXPERT"
)

// Application is a user's request for expert status, reviewed by an admin.
type Application struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	Type         ApplicationType   `json:"type" gorm:"size:32;not null"`
	Status       ApplicationStatus `json:"status" gorm:"size:32;not null;default:'PENDING';index"`
	UserID       uint              `json:"userId" gorm:"not null;index"`
	ApprovedByID *uint             `json:"approvedById"`
	Image        string            `json:"image" gorm:"size:512"`
	Description  string            `json:"description" gorm:"size:2048"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
