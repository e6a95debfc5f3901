package services

import (
	"testing"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"gorm.io/gorm"
)

func activeFast(id uint, userID uint, hours float64, startedAt time.Time) *models.Fast {
	f := &models.Fast{
		UserID:       userID,
		ScheduleType: "16:8",
		FastingHours: hours,
		StartedAt:    startedAt,
		Status:       models.FastActive,
	}
	f.Model = gorm.Model{ID: id}
	return f
}

func TestDeriveAtGoal(t *testing.T) {
	start := time.Date(2026, 8, 14, 20, 0, 0, 0, time.UTC)
	f := activeFast(1, 1, 16, start)

	snap := Derive(f, start.Add(16*time.Hour))
	if snap.RemainingMs != 0 {
		t.Fatalf("remaining at goal: got %d, want 0", snap.RemainingMs)
	}
	if snap.Progress != 1.0 {
		t.Fatalf("progress at goal: got %v, want 1.0", snap.Progress)
	}
	if !snap.Overtime {
		t.Fatal("expected overtime flag at goal")
	}
}

func TestDeriveOvertimeKeepsCounting(t *testing.T) {
	start := time.Date(2026, 8, 14, 20, 0, 0, 0, time.UTC)
	f := activeFast(1, 1, 16, start)

	snap := Derive(f, start.Add(16*time.Hour+time.Second))
	if snap.RemainingMs != 0 {
		t.Fatalf("remaining in overtime: got %d, want 0", snap.RemainingMs)
	}
	if snap.Progress != 1.0 {
		t.Fatalf("progress must stay clamped at 1.0, got %v", snap.Progress)
	}
	if snap.ElapsedMs != (16*3600+1)*1000 {
		t.Fatalf("elapsed must keep counting, got %d", snap.ElapsedMs)
	}
	if !snap.Overtime {
		t.Fatal("expected overtime flag")
	}
}

func TestDeriveMidway(t *testing.T) {
	start := time.Date(2026, 8, 14, 20, 0, 0, 0, time.UTC)
	f := activeFast(1, 1, 16, start)

	snap := Derive(f, start.Add(8*time.Hour))
	if snap.Progress != 0.5 {
		t.Fatalf("progress: got %v, want 0.5", snap.Progress)
	}
	if snap.RemainingMs != 8*3600*1000 {
		t.Fatalf("remaining: got %d, want 8h", snap.RemainingMs)
	}
	if snap.Overtime {
		t.Fatal("unexpected overtime flag midway")
	}
}

func TestDeriveClockCorrectedBackward(t *testing.T) {
	start := time.Date(2026, 8, 14, 20, 0, 0, 0, time.UTC)
	f := activeFast(1, 1, 16, start)

	// now before started_at: progress reads 0, magnitude still reported
	snap := Derive(f, start.Add(-30*time.Second))
	if snap.Progress != 0 {
		t.Fatalf("progress with negative elapsed: got %v, want 0", snap.Progress)
	}
	if snap.ElapsedMs != -30000 {
		t.Fatalf("elapsed: got %d, want -30000", snap.ElapsedMs)
	}
	if snap.Elapsed != "00:00:30" {
		t.Fatalf("elapsed clock renders by magnitude, got %q", snap.Elapsed)
	}
	if snap.RemainingMs != 16*3600*1000 {
		t.Fatalf("remaining: got %d, want full target", snap.RemainingMs)
	}
}

func TestStageLookup(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "Fed State"},
		{3.9, "Fed State"},
		{4, "Early Fasting"},
		{8, "Fat Burning"},
		{12, "Ketosis"},
		{17.9, "Ketosis"},
		{18, "Deep Ketosis"},
		{40, "Deep Ketosis"},
	}
	for _, tc := range cases {
		if got := StageFor(tc.hours); got.Label != tc.want {
			t.Fatalf("StageFor(%v): got %q, want %q", tc.hours, got.Label, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00"},
		{61000, "00:01:01"},
		{16 * 3600 * 1000, "16:00:00"},
		{-90000, "00:01:30"},
		{100*3600*1000 + 5000, "100:00:05"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.ms); got != tc.want {
			t.Fatalf("FormatClock(%d): got %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestGoalSignalFiresOncePerFast(t *testing.T) {
	svc := NewTimerService(nil, nil)
	start := time.Date(2026, 8, 14, 20, 0, 0, 0, time.UTC)
	fast := activeFast(42, 7, 16, start)
	svc.Track(fast)

	// ticks keep arriving through overtime; the marker must latch after
	// the first one
	goal := start.Add(16 * time.Hour)
	for i := 0; i < 5; i++ {
		svc.tick(goal.Add(time.Duration(i) * time.Second))
	}

	svc.mu.Lock()
	notified := svc.notified[7]
	svc.mu.Unlock()
	if notified != 42 {
		t.Fatalf("notified marker: got %d, want 42", notified)
	}

	// ending the fast clears the marker so the next fast re-arms
	svc.Untrack(7)
	svc.mu.Lock()
	_, stillNotified := svc.notified[7]
	_, stillActive := svc.active[7]
	svc.mu.Unlock()
	if stillNotified || stillActive {
		t.Fatal("untrack must clear live state and the notified marker")
	}

	next := activeFast(43, 7, 1, goal)
	svc.Track(next)
	svc.tick(goal.Add(2 * time.Hour))

	svc.mu.Lock()
	notified = svc.notified[7]
	svc.mu.Unlock()
	if notified != 43 {
		t.Fatalf("second fast must re-trigger: got marker %d, want 43", notified)
	}
}

func TestTickBeforeGoalDoesNotNotify(t *testing.T) {
	svc := NewTimerService(nil, nil)
	start := time.Date(2026, 8, 14, 20, 0, 0, 0, time.UTC)
	svc.Track(activeFast(1, 1, 16, start))

	svc.tick(start.Add(15 * time.Hour))

	svc.mu.Lock()
	_, notified := svc.notified[1]
	svc.mu.Unlock()
	if notified {
		t.Fatal("goal signal must not fire before remaining hits 0")
	}
}

func TestResumeDoesNotReannounceGoal(t *testing.T) {
	svc := NewTimerService(nil, nil)
	start := time.Date(2026, 8, 14, 20, 0, 0, 0, time.UTC)
	now := start.Add(17 * time.Hour)

	// user 1 is already past goal, user 2 is mid-fast
	svc.resume([]models.Fast{
		*activeFast(5, 1, 16, start),
		*activeFast(6, 2, 16, now.Add(-2*time.Hour)),
	}, now)

	svc.mu.Lock()
	notified := svc.notified[1]
	_, midMarked := svc.notified[2]
	svc.mu.Unlock()
	if notified != 5 {
		t.Fatalf("overtime fast must be marked notified on resume, got %d", notified)
	}
	if midMarked {
		t.Fatal("mid-fast resume must not pre-mark the goal signal")
	}

	svc.tick(now.Add(time.Second))
	svc.mu.Lock()
	notified = svc.notified[1]
	svc.mu.Unlock()
	if notified != 5 {
		t.Fatalf("tick after resume must keep the latch on fast 5, got %d", notified)
	}
}

func TestUntrackFastIgnoresOtherIDs(t *testing.T) {
	svc := NewTimerService(nil, nil)
	start := time.Now().Add(-2 * time.Hour)
	svc.Track(activeFast(10, 1, 16, start))

	// deleting an unrelated history row must not stop the live timer
	svc.UntrackFast(1, 99)
	svc.mu.Lock()
	_, active := svc.active[1]
	svc.mu.Unlock()
	if !active {
		t.Fatal("live fast dropped by mismatched delete")
	}

	svc.UntrackFast(1, 10)
	svc.mu.Lock()
	_, active = svc.active[1]
	svc.mu.Unlock()
	if active {
		t.Fatal("live fast should be dropped when its own id is deleted")
	}
}
