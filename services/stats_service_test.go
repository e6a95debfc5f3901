package services

import (
	"testing"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"
)

// completedFast builds a fast ending at end with the given duration.
func completedFast(t *testing.T, end time.Time, hours float64) models.Fast {
	t.Helper()
	return models.Fast{
		UserID:       1,
		ScheduleType: "16:8",
		FastingHours: hours,
		StartedAt:    end.Add(-time.Duration(hours * float64(time.Hour))),
		EndedAt:      &end,
		Status:       models.FastCompleted,
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	fasts := []models.Fast{
		completedFast(t, time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC), 16), // today
		completedFast(t, time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC), 16),  // yesterday
		// nothing two days ago
		completedFast(t, time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC), 16),
	}
	if got := Streak(fasts, now); got != 2 {
		t.Fatalf("streak: got %d, want 2", got)
	}
}

func TestStreakMissTodayBreaksChain(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	fasts := []models.Fast{
		completedFast(t, time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC), 16), // yesterday only
	}
	if got := Streak(fasts, now); got != 0 {
		t.Fatalf("streak without a fast today: got %d, want 0", got)
	}
}

func TestStreakEmpty(t *testing.T) {
	if got := Streak(nil, time.Now()); got != 0 {
		t.Fatalf("streak of no fasts: got %d, want 0", got)
	}
}

func TestStreakIgnoresActiveFasts(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	fasts := []models.Fast{
		{
			UserID:       1,
			FastingHours: 16,
			StartedAt:    now.Add(-2 * time.Hour),
			Status:       models.FastActive,
		},
	}
	if got := Streak(fasts, now); got != 0 {
		t.Fatalf("active fasts must not count: got %d, want 0", got)
	}
}

func TestPeriodHoursTrailingWeek(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	fasts := []models.Fast{
		completedFast(t, now.Add(-24*time.Hour), 16),
		completedFast(t, now.Add(-72*time.Hour), 18),
		completedFast(t, now.Add(-10*24*time.Hour), 20), // outside the window
	}
	if got := PeriodHours(fasts, now, 7); got != 34.0 {
		t.Fatalf("week hours: got %v, want 34.0", got)
	}
}

func TestLifetimeHoursZeroSafe(t *testing.T) {
	longest, total, avg := LifetimeHours(nil)
	if longest != 0 || total != 0 || avg != 0 {
		t.Fatalf("empty lifetime: got %v/%v/%v, want zeros", longest, total, avg)
	}
}

func TestLifetimeHours(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	fasts := []models.Fast{
		completedFast(t, now, 16),
		completedFast(t, now.Add(-24*time.Hour), 20),
		completedFast(t, now.Add(-48*time.Hour), 12),
	}
	longest, total, avg := LifetimeHours(fasts)
	if longest != 20 {
		t.Fatalf("longest: got %v, want 20", longest)
	}
	if total != 48 {
		t.Fatalf("total: got %v, want 48", total)
	}
	if avg != 16 {
		t.Fatalf("avg: got %v, want 16", avg)
	}
}

func TestChartBucketsFixedLength(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	windowStart := startOfDay(now).AddDate(0, 0, -6)

	fasts := []models.Fast{
		completedFast(t, windowStart.AddDate(0, 0, 3).Add(10*time.Hour), 16),
		completedFast(t, windowStart.AddDate(0, 0, 5).Add(9*time.Hour), 18),
	}

	points := ChartBuckets(fasts, now, 7)
	if len(points) != 7 {
		t.Fatalf("series length: got %d, want 7", len(points))
	}
	for i, p := range points {
		switch i {
		case 3:
			if p.Hours != 16 {
				t.Fatalf("bucket 3: got %v, want 16", p.Hours)
			}
		case 5:
			if p.Hours != 18 {
				t.Fatalf("bucket 5: got %v, want 18", p.Hours)
			}
		default:
			if p.Hours != 0 {
				t.Fatalf("bucket %d: got %v, want 0", i, p.Hours)
			}
		}
	}
}

func TestChartBucketsSumsSameDay(t *testing.T) {
	now := time.Date(2026, 8, 15, 20, 0, 0, 0, time.UTC)
	today := startOfDay(now)

	fasts := []models.Fast{
		completedFast(t, today.Add(8*time.Hour), 14),
		completedFast(t, today.Add(18*time.Hour), 2),
	}

	points := ChartBuckets(fasts, now, 7)
	if got := points[6].Hours; got != 16 {
		t.Fatalf("today's bucket: got %v, want 16", got)
	}
}

func TestEarnedBadgesMonotonic(t *testing.T) {
	prevEarned := 0
	for _, count := range []int{0, 1, 7, 10, 25, 50, 100, 250} {
		badges := EarnedBadges(count)
		earned := 0
		for _, b := range badges {
			if b.Earned {
				earned++
				if count < b.Threshold {
					t.Fatalf("badge %q earned at count %d below threshold %d", b.Label, count, b.Threshold)
				}
			}
		}
		if earned < prevEarned {
			t.Fatalf("earned badges decreased from %d to %d at count %d", prevEarned, earned, count)
		}
		prevEarned = earned
	}

	badges := EarnedBadges(100)
	for _, b := range badges {
		if !b.Earned {
			t.Fatalf("badge %q should be earned at 100 fasts", b.Label)
		}
	}
}
