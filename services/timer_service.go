package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"gorm.io/gorm"
)

// FastingStage is a named physiological phase looked up by elapsed hours.
type FastingStage struct {
	Hours       float64 `json:"hours"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

// Ordered ascending by threshold; the first entry (0h) is the default.
var fastingStages = []FastingStage{
	{Hours: 0, Label: "Fed State", Description: "Digesting and absorbing your last meal."},
	{Hours: 4, Label: "Early Fasting", Description: "Blood sugar settles as insulin drops."},
	{Hours: 8, Label: "Fat Burning", Description: "Glycogen runs low; fat becomes the fuel."},
	{Hours: 12, Label: "Ketosis", Description: "Ketone production ramps up."},
	{Hours: 18, Label: "Deep Ketosis", Description: "Autophagy and deep ketosis territory."},
}

// StageFor returns the last stage whose threshold is at or below the
// elapsed hours.
func StageFor(elapsedHours float64) FastingStage {
	stage := fastingStages[0]
	for _, s := range fastingStages {
		if elapsedHours >= s.Hours {
			stage = s
		}
	}
	return stage
}

// TimerSnapshot is the live view of an active fast at one instant.
type TimerSnapshot struct {
	FastID       uint         `json:"fast_id"`
	ScheduleType string       `json:"schedule_type"`
	ElapsedMs    int64        `json:"elapsed_ms"`
	RemainingMs  int64        `json:"remaining_ms"`
	Progress     float64      `json:"progress"`
	Overtime     bool         `json:"overtime"`
	Stage        FastingStage `json:"stage"`
	Elapsed      string       `json:"elapsed"`
	Remaining    string       `json:"remaining"`
}

// Derive recomputes the snapshot from scratch for one wall-clock reading.
// Progress clamps to [0,1]; elapsed keeps counting past the goal and the
// Overtime flag replaces the "remaining" label once the goal is reached.
// A clock corrected backward past started_at reads as zero progress while
// the elapsed magnitude is still reported.
func Derive(f *models.Fast, now time.Time) TimerSnapshot {
	targetMs := int64(f.FastingHours * 3600000)
	elapsedMs := now.Sub(f.StartedAt).Milliseconds()

	progressElapsed := elapsedMs
	if progressElapsed < 0 {
		progressElapsed = 0
	}
	remainingMs := targetMs - progressElapsed
	if remainingMs < 0 {
		remainingMs = 0
	}

	progress := 0.0
	if targetMs > 0 {
		progress = float64(progressElapsed) / float64(targetMs)
		if progress > 1 {
			progress = 1
		}
	}

	return TimerSnapshot{
		FastID:       f.ID,
		ScheduleType: f.ScheduleType,
		ElapsedMs:    elapsedMs,
		RemainingMs:  remainingMs,
		Progress:     progress,
		Overtime:     remainingMs == 0,
		Stage:        StageFor(float64(progressElapsed) / 3600000),
		Elapsed:      FormatClock(elapsedMs),
		Remaining:    FormatClock(remainingMs),
	}
}

// FormatClock renders milliseconds as HH:MM:SS, by magnitude.
func FormatClock(ms int64) string {
	if ms < 0 {
		ms = -ms
	}
	totalSeconds := ms / 1000
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	sec := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// TimerService owns the live fasts and the one-second tick. Each tick is a
// pure recomputation; the only state beyond the tracked fasts is the
// last-notified fast id per user, which makes the goal-reached signal fire
// at most once per fast even though remaining stays 0 through overtime.
type TimerService struct {
	db  *gorm.DB
	hub *RealtimeHub

	mu       sync.Mutex
	active   map[uint]*models.Fast // userID -> active fast
	notified map[uint]uint         // userID -> fast ID already congratulated
	stop     chan struct{}
}

func NewTimerService(db *gorm.DB, hub *RealtimeHub) *TimerService {
	return &TimerService{
		db:       db,
		hub:      hub,
		active:   make(map[uint]*models.Fast),
		notified: make(map[uint]uint),
		stop:     make(chan struct{}),
	}
}

// Start resumes any fasts left active across a restart, then begins ticking.
func (t *TimerService) Start() {
	var fasts []models.Fast
	if err := t.db.Where("status = ?", models.FastActive).Find(&fasts).Error; err == nil {
		t.resume(fasts, time.Now())
	}

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				t.tick(now)
			case <-t.stop:
				return
			}
		}
	}()
}

// resume reloads live fasts. A fast already past its goal gets its
// notified marker pre-set so the restart does not re-announce it.
func (t *TimerService) resume(fasts []models.Fast, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range fasts {
		f := fasts[i]
		t.active[f.UserID] = &f
		if Derive(&f, now).Overtime {
			t.notified[f.UserID] = f.ID
		}
	}
}

func (t *TimerService) Stop() { close(t.stop) }

func (t *TimerService) Track(f *models.Fast) {
	t.mu.Lock()
	t.active[f.UserID] = f
	delete(t.notified, f.UserID)
	t.mu.Unlock()
}

func (t *TimerService) Untrack(userID uint) {
	t.mu.Lock()
	delete(t.active, userID)
	delete(t.notified, userID)
	t.mu.Unlock()
}

// UntrackFast drops live state only if the given fast is the tracked one,
// so deleting an old history row never kills a running timer.
func (t *TimerService) UntrackFast(userID, fastID uint) {
	t.mu.Lock()
	if f, ok := t.active[userID]; ok && f.ID == fastID {
		delete(t.active, userID)
		delete(t.notified, userID)
	}
	t.mu.Unlock()
}

func (t *TimerService) tick(now time.Time) {
	type goalHit struct {
		userID uint
		fastID uint
		hours  float64
	}
	var hits []goalHit

	t.mu.Lock()
	for userID, fast := range t.active {
		snap := Derive(fast, now)
		if t.hub != nil {
			t.hub.BroadcastTimer(userID, snap)
		}
		if snap.Overtime && t.notified[userID] != fast.ID {
			t.notified[userID] = fast.ID
			hits = append(hits, goalHit{userID: userID, fastID: fast.ID, hours: fast.FastingHours})
		}
	}
	t.mu.Unlock()

	// emit outside the lock; EmitAlert writes the DB and may push
	for _, h := range hits {
		EmitAlert(h.userID, "fast.goal", fmt.Sprintf("Goal reached! You completed your %g-hour target.", h.hours))
	}
}
