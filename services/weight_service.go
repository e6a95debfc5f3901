package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"gorm.io/gorm"
)

type WeightService struct{ db *gorm.DB }

func NewWeightService(db *gorm.DB) *WeightService { return &WeightService{db: db} }

func (s *WeightService) LogWeight(ctx context.Context, userID uint, weight float64, notes string, recordedAt time.Time) (*models.WeightEntry, error) {
	if weight <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	entry := &models.WeightEntry{
		UserID:     userID,
		Weight:     weight,
		Notes:      notes,
		RecordedAt: recordedAt,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListWeights returns entries in chronological order plus the derived
// summary against the user's target weight.
func (s *WeightService) ListWeights(ctx context.Context, userID uint, targetWeight *float64) ([]models.WeightEntry, WeightSummary, error) {
	var entries []models.WeightEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, WeightSummary{}, err
	}
	return entries, SummarizeWeights(entries, targetWeight), nil
}

func (s *WeightService) DeleteWeight(ctx context.Context, userID, entryID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WeightEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// WeightSummary holds derived trend values. TotalChange needs two entries
// and DistanceToGoal needs a latest entry plus a target; both stay nil
// otherwise rather than erroring.
type WeightSummary struct {
	Latest         *float64 `json:"latest"`
	TotalChange    *float64 `json:"total_change"`
	DistanceToGoal *float64 `json:"distance_to_goal"`
}

// SummarizeWeights expects entries in chronological order.
func SummarizeWeights(entries []models.WeightEntry, targetWeight *float64) WeightSummary {
	var out WeightSummary
	if len(entries) == 0 {
		return out
	}

	latest := entries[len(entries)-1].Weight
	out.Latest = &latest

	if len(entries) >= 2 {
		change := latest - entries[0].Weight
		out.TotalChange = &change
	}
	if targetWeight != nil {
		dist := math.Abs(latest - *targetWeight)
		out.DistanceToGoal = &dist
	}
	return out
}
