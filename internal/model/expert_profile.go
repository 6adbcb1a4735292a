package model

import "time"

// ExpertProfile is created when an expert application is approved. It is
// derived from the application's evidence fields exactly once.
type ExpertProfile struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"uniqueIndex;not null"`
	CertImage   string    `json:"certImage" gorm:"size:512"`
	Description string    `json:"description" gorm:"size:2048"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
