package model

// MedicalCondition is a catalog entry users can link to their profile.
type MedicalCondition struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}
