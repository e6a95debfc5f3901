package services

import (
	"fmt"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"gorm.io/gorm"
)

var alertTitles = map[string]string{
	"fast.started":    "Fast Started",
	"fast.goal":       "Goal Reached!",
	"fast.completed":  "Fast Complete",
	"streak.reminder": "Keep Your Streak",
}

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists the alert, then fans it out over the websocket hub
// and push. Safe to call anywhere, including before InitAlertDeps.
func EmitAlert(userID uint, kind, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Kind: kind, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		title := alertTitles[kind]
		if title == "" {
			title = "Fasting Friend"
		}
		_alert.ps.PushToUser(userID, title, message, map[string]string{
			"kind": kind, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}
