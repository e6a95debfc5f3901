package services

import (
	"context"
	"errors"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"gorm.io/gorm"
)

// DailyGlassGoal is the fixed hydration target.
const DailyGlassGoal = 8

type HydrationService struct{ db *gorm.DB }

func NewHydrationService(db *gorm.DB) *HydrationService { return &HydrationService{db: db} }

type HydrationStatus struct {
	Glasses  int     `json:"glasses"`
	Goal     int     `json:"goal"`
	Progress float64 `json:"progress"`
}

func (s *HydrationService) Today(ctx context.Context, userID uint) (*HydrationStatus, error) {
	day := startOfDay(time.Now())

	var log models.HydrationLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&log).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return hydrationStatus(log.Glasses), nil
}

// Adjust adds delta glasses to today's count, clamping at zero. Upsert is
// by (user_id, local midnight).
func (s *HydrationService) Adjust(ctx context.Context, userID uint, delta int) (*HydrationStatus, error) {
	day := startOfDay(time.Now())

	var log models.HydrationLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		FirstOrCreate(&log, models.HydrationLog{UserID: userID, Date: day}).Error
	if err != nil {
		return nil, err
	}

	log.Glasses += delta
	if log.Glasses < 0 {
		log.Glasses = 0
	}
	if err := s.db.WithContext(ctx).Save(&log).Error; err != nil {
		return nil, err
	}
	return hydrationStatus(log.Glasses), nil
}

func hydrationStatus(glasses int) *HydrationStatus {
	progress := float64(glasses) / float64(DailyGlassGoal)
	if progress > 1 {
		progress = 1
	}
	return &HydrationStatus{Glasses: glasses, Goal: DailyGlassGoal, Progress: progress}
}
