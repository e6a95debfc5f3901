package models

import (
	"time"

	"gorm.io/gorm"
)

// MealLog is a free-text meal entry. Calories stays nil when the user
// didn't enter a number; immutable after creation except for delete.
type MealLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	MealName string `gorm:"not null"`
	Calories *float64
	Notes    string    `gorm:"type:text"`
	EatenAt  time.Time `gorm:"index;not null"`
}
