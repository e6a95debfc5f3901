package models

import "time"

type HydrationLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_hydration_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_hydration_user_date"`
	Glasses   int       `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
