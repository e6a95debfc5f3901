package models

import "time"

// HealthSnapshot is one day's synced external health metrics. The
// (user_id, date) pair is the upsert key; a later sync for the same day
// overwrites the earlier row.
type HealthSnapshot struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_snapshot_user_date"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_snapshot_user_date"`
	Steps        float64
	ActiveEnergy float64
	Weight       *float64
	HeartRate    *float64
	Source       string `gorm:"size:32"` // "Apple Health" | "Google Fit" | "Google Fit (Simulated)"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
