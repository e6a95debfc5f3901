package services

import (
	"context"
	"math"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// Badge is a milestone keyed to lifetime completed-fast count.
type Badge struct {
	Threshold int    `json:"threshold"`
	Label     string `json:"label"`
	Emoji     string `json:"emoji"`
	Earned    bool   `json:"earned"`
}

// Ascending by threshold. Earning is monotonic: once count passes a
// threshold the badge stays earned.
var badgeTable = []Badge{
	{Threshold: 1, Label: "First Fast!", Emoji: "🌱"},
	{Threshold: 7, Label: "7-Day Streak", Emoji: "🔥"},
	{Threshold: 10, Label: "10 Fasts", Emoji: "💪"},
	{Threshold: 25, Label: "25 Fasts", Emoji: "⭐"},
	{Threshold: 50, Label: "50 Fasts", Emoji: "🏆"},
	{Threshold: 100, Label: "Century Club", Emoji: "👑"},
}

type DashboardStats struct {
	Streak     int     `json:"streak"`
	TotalFasts int     `json:"total_fasts"`
	WeekHours  float64 `json:"week_hours"`
}

type ChartPoint struct {
	Day   string  `json:"day"`
	Hours float64 `json:"hours"`
}

type InsightsStats struct {
	TotalFasts  int          `json:"total_fasts"`
	TotalHours  float64      `json:"total_hours"`
	AvgHours    float64      `json:"avg_hours"`
	LongestFast float64      `json:"longest_fast"`
	Chart       []ChartPoint `json:"chart"`
	Badges      []Badge      `json:"badges"`
}

func (s *StatsService) Dashboard(ctx context.Context, userID uint) (*DashboardStats, error) {
	fasts, err := s.completedFasts(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &DashboardStats{
		Streak:     Streak(fasts, now),
		TotalFasts: len(fasts),
		WeekHours:  PeriodHours(fasts, now, 7),
	}, nil
}

func (s *StatsService) Insights(ctx context.Context, userID uint, days int) (*InsightsStats, error) {
	if days != 30 {
		days = 7
	}
	fasts, err := s.completedFasts(ctx, userID)
	if err != nil {
		return nil, err
	}

	longest, total, avg := LifetimeHours(fasts)
	return &InsightsStats{
		TotalFasts:  len(fasts),
		TotalHours:  math.Round(total),
		AvgHours:    round1(avg),
		LongestFast: round1(longest),
		Chart:       ChartBuckets(fasts, time.Now(), days),
		Badges:      EarnedBadges(len(fasts)),
	}, nil
}

func (s *StatsService) completedFasts(ctx context.Context, userID uint) ([]models.Fast, error) {
	var fasts []models.Fast
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.FastCompleted).
		Order("ended_at DESC").
		Find(&fasts).Error
	return fasts, err
}

// ---------- pure aggregation ----------

// Streak counts consecutive calendar days, walking backward from today,
// each containing at least one completed fast's ended_at. The walk stops
// at the first empty day, so a miss today yields 0 no matter what came
// before. Bounded at 365 days to guarantee termination.
func Streak(fasts []models.Fast, now time.Time) int {
	today := startOfDay(now)
	streak := 0
	for d := 0; d < 365; d++ {
		day := today.AddDate(0, 0, -d)
		next := day.AddDate(0, 0, 1)
		found := false
		for i := range fasts {
			f := &fasts[i]
			if !f.Completed() {
				continue
			}
			if !f.EndedAt.Before(day) && f.EndedAt.Before(next) {
				found = true
				break
			}
		}
		if !found {
			break
		}
		streak++
	}
	return streak
}

// PeriodHours sums realized fast hours for fasts ending within the
// trailing N-day window, rounded to one decimal.
func PeriodHours(fasts []models.Fast, now time.Time, days int) float64 {
	cutoff := now.AddDate(0, 0, -days)
	var sum float64
	for i := range fasts {
		f := &fasts[i]
		if f.Completed() && f.EndedAt.After(cutoff) {
			sum += f.DurationHours()
		}
	}
	return round1(sum)
}

// LifetimeHours returns the longest, total, and mean fast duration in
// hours across all completed fasts. Mean is 0 when there are none.
func LifetimeHours(fasts []models.Fast) (longest, total, avg float64) {
	count := 0
	for i := range fasts {
		f := &fasts[i]
		if !f.Completed() {
			continue
		}
		h := f.DurationHours()
		total += h
		if h > longest {
			longest = h
		}
		count++
	}
	if count > 0 {
		avg = total / float64(count)
	}
	return longest, total, avg
}

// ChartBuckets produces a fixed-length per-day series, oldest to newest,
// of summed fast hours keyed by ended_at. Empty days stay in the series
// with 0 so the chart axis is stable.
func ChartBuckets(fasts []models.Fast, now time.Time, days int) []ChartPoint {
	points := make([]ChartPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := startOfDay(now).AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)
		var sum float64
		for j := range fasts {
			f := &fasts[j]
			if !f.Completed() {
				continue
			}
			if !f.EndedAt.Before(day) && f.EndedAt.Before(next) {
				sum += f.DurationHours()
			}
		}
		points = append(points, ChartPoint{
			Day:   day.Format("Mon"),
			Hours: round1(sum),
		})
	}
	return points
}

// EarnedBadges marks each badge earned iff totalFasts has reached its
// threshold. No partial credit; never un-earned.
func EarnedBadges(totalFasts int) []Badge {
	out := make([]Badge, len(badgeTable))
	copy(out, badgeTable)
	for i := range out {
		out[i].Earned = totalFasts >= out[i].Threshold
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
