package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Email             string `gorm:"uniqueIndex;not null"`
	Password          string `gorm:"not null"`
	DisplayName       string
	TargetWeight      *float64
	PreferredSchedule string `gorm:"size:32;default:'16:8'"`
	Role              string `gorm:"size:16;default:'user'"`

	HealthKitConnected bool
	HealthKitLastSync  *time.Time
	GoogleFitLinked    bool
	GoogleFitLastSync  *time.Time

	ResetToken    string
	ResetTokenExp time.Time
}
