package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"gorm.io/gorm"
)

var (
	ErrActiveFastExists = errors.New("an active fast already exists")
	ErrNoActiveFast     = errors.New("fast is not active")
)

type FastService struct {
	db    *gorm.DB
	timer *TimerService
}

func NewFastService(db *gorm.DB, timer *TimerService) *FastService {
	return &FastService{db: db, timer: timer}
}

// StartFast creates a new active fast. The one-active-fast-per-user rule is
// an application-layer precondition; the check and insert run in one
// transaction so two racing starts for the same user serialize.
func (s *FastService) StartFast(ctx context.Context, userID uint, schedule string, fastingHours float64) (*models.Fast, error) {
	if fastingHours <= 0 {
		return nil, errors.New("fasting hours must be positive")
	}

	fast := &models.Fast{
		UserID:       userID,
		ScheduleType: schedule,
		FastingHours: fastingHours,
		StartedAt:    time.Now(),
		Status:       models.FastActive,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Fast{}).
			Where("user_id = ? AND status = ?", userID, models.FastActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrActiveFastExists
		}
		return tx.Create(fast).Error
	})
	if err != nil {
		return nil, err
	}

	if s.timer != nil {
		s.timer.Track(fast)
	}
	EmitAlert(userID, "fast.started", fmt.Sprintf("%g-hour fast has begun. You got this!", fastingHours))
	return fast, nil
}

// AdjustStartTime corrects started_at while the fast is still active. It
// does not re-trigger the start notification.
func (s *FastService) AdjustStartTime(ctx context.Context, userID, fastID uint, newStart time.Time) (*models.Fast, error) {
	var fast models.Fast
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", fastID, userID).
		First(&fast).Error; err != nil {
		return nil, err
	}
	if fast.Status != models.FastActive {
		return nil, ErrNoActiveFast
	}

	fast.StartedAt = newStart
	if err := s.db.WithContext(ctx).Save(&fast).Error; err != nil {
		return nil, err
	}
	if s.timer != nil {
		s.timer.Track(&fast)
	}
	return &fast, nil
}

// EndFast completes an active fast, persisting ended_at and notes. The
// live timer state and its goal-notified marker are cleared so a later
// fast can re-trigger the completion signal.
func (s *FastService) EndFast(ctx context.Context, userID, fastID uint, notes string) (*models.Fast, error) {
	var fast models.Fast
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", fastID, userID).
		First(&fast).Error; err != nil {
		return nil, err
	}
	if fast.Status != models.FastActive {
		return nil, ErrNoActiveFast
	}

	now := time.Now()
	fast.Status = models.FastCompleted
	fast.EndedAt = &now
	fast.Notes = notes
	if err := s.db.WithContext(ctx).Save(&fast).Error; err != nil {
		return nil, err
	}

	if s.timer != nil {
		s.timer.Untrack(userID)
	}
	EmitAlert(userID, "fast.completed", "Fast complete! Great job staying consistent!")
	return &fast, nil
}

// GetActiveFast returns (nil, nil) when the user has no active fast.
func (s *FastService) GetActiveFast(ctx context.Context, userID uint) (*models.Fast, error) {
	var fast models.Fast
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.FastActive).
		Order("started_at DESC").
		First(&fast).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fast, nil
}

func (s *FastService) ListFasts(ctx context.Context, userID uint, limit int) ([]models.Fast, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var fasts []models.Fast
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&fasts).Error
	return fasts, err
}

func (s *FastService) DeleteFast(ctx context.Context, userID, fastID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", fastID, userID).
		Delete(&models.Fast{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if s.timer != nil {
		s.timer.UntrackFast(userID, fastID)
	}
	return nil
}
