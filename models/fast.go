package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	FastActive    = "active"
	FastCompleted = "completed"
)

// Fast is one fasting session. EndedAt is nil exactly while the fast is
// active; at most one active fast may exist per user.
type Fast struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null"`
	ScheduleType string    `gorm:"size:32"` // "16:8" | "18:6" | "20:4 (OMAD)" | custom label
	FastingHours float64   `gorm:"not null"`
	StartedAt    time.Time `gorm:"index;not null"`
	EndedAt      *time.Time
	Status       string `gorm:"size:16;index;not null"`
	Notes        string `gorm:"type:text"`
}

func (f *Fast) Completed() bool {
	return f.Status == FastCompleted && f.EndedAt != nil
}

// DurationHours is the realized fast length; zero while still active.
func (f *Fast) DurationHours() float64 {
	if f.EndedAt == nil {
		return 0
	}
	return f.EndedAt.Sub(f.StartedAt).Hours()
}
