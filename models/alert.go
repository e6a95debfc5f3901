package models

import "time"

type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Kind      string    `gorm:"size:32"` // "fast.started" | "fast.goal" | "fast.completed" | "streak.reminder"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
