package services

import (
	"log"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderScheduler nudges users who have push devices but no completed
// fast yet today, every evening at 20:00 server time.
type ReminderScheduler struct {
	db   *gorm.DB
	cron *cron.Cron
}

func NewReminderScheduler(db *gorm.DB) *ReminderScheduler {
	return &ReminderScheduler{db: db, cron: cron.New()}
}

func (r *ReminderScheduler) Start() {
	if _, err := r.cron.AddFunc("0 20 * * *", r.sendStreakReminders); err != nil {
		log.Printf("reminder scheduler not started: %v", err)
		return
	}
	r.cron.Start()
}

func (r *ReminderScheduler) Stop() { r.cron.Stop() }

func (r *ReminderScheduler) sendStreakReminders() {
	dayStart := startOfDay(time.Now())

	var userIDs []uint
	err := r.db.Model(&models.UserDevice{}).
		Distinct("user_devices.user_id").
		Joins("LEFT JOIN fasts ON fasts.user_id = user_devices.user_id AND fasts.status = ? AND fasts.ended_at >= ?",
			models.FastCompleted, dayStart).
		Where("user_devices.enabled = ? AND fasts.id IS NULL", true).
		Pluck("user_devices.user_id", &userIDs).Error
	if err != nil {
		log.Printf("streak reminder query failed: %v", err)
		return
	}

	for _, uid := range userIDs {
		EmitAlert(uid, "streak.reminder", "No fast logged today. A short fast tonight keeps your streak alive!")
	}
}
