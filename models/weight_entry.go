package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightEntry stores the value as entered; the unit is whatever the user
// weighs in (lbs or kg), so delta math stays unit-agnostic.
type WeightEntry struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	Weight     float64   `gorm:"not null"`
	RecordedAt time.Time `gorm:"index;not null"`
	Notes      string    `gorm:"type:text"`
}
