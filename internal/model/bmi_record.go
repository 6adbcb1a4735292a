package model

import "time"

// BMIRecord is a single height/weight measurement belonging to a user.
type BMIRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Height    float64   `json:"height" gorm:"not null"`
	Weight    float64   `json:"weight" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
