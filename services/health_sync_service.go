package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"

	"gorm.io/gorm"
)

const (
	SourceAppleHealth        = "Apple Health"
	SourceGoogleFit          = "Google Fit"
	SourceGoogleFitSimulated = "Google Fit (Simulated)"
)

var ErrIntegrationNotConnected = errors.New("health integration is not connected")

// HealthSyncService writes one HealthSnapshot per user per day. Apple
// Health data arrives from the native bridge (each kind read independently
// on-device, so partial payloads are normal); Google Fit goes through a
// server-mediated sync endpoint with a clearly tagged simulated fallback.
type HealthSyncService struct {
	db      *gorm.DB
	syncURL string
	client  *http.Client
}

func NewHealthSyncService(db *gorm.DB, googleFitSyncURL string) *HealthSyncService {
	return &HealthSyncService{
		db:      db,
		syncURL: googleFitSyncURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// HealthKitPayload carries whatever subset of kinds the device could read.
// Missing kinds stay absent; a failed kind on-device never blocks the rest.
type HealthKitPayload struct {
	Steps        float64  `json:"steps"`
	ActiveEnergy float64  `json:"active_energy"`
	Weight       *float64 `json:"weight"`
	HeartRate    *float64 `json:"heart_rate"`
}

func (s *HealthSyncService) ConnectHealthKit(ctx context.Context, userID uint) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"health_kit_connected": true, "health_kit_last_sync": &now}).Error
}

func (s *HealthSyncService) DisconnectHealthKit(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"health_kit_connected": false, "health_kit_last_sync": nil}).Error
}

func (s *HealthSyncService) SyncHealthKit(ctx context.Context, userID uint, payload HealthKitPayload) (*models.HealthSnapshot, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	if !user.HealthKitConnected {
		return nil, ErrIntegrationNotConnected
	}

	snap, err := s.upsertSnapshot(ctx, userID, models.HealthSnapshot{
		Steps:        payload.Steps,
		ActiveEnergy: payload.ActiveEnergy,
		Weight:       payload.Weight,
		HeartRate:    payload.HeartRate,
		Source:       SourceAppleHealth,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("health_kit_last_sync", &now).Error; err != nil {
		log.Printf("healthkit last-sync update failed for user %d: %v", userID, err)
	}
	return snap, nil
}

func (s *HealthSyncService) ConnectGoogleFit(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("google_fit_linked", true).Error
}

func (s *HealthSyncService) DisconnectGoogleFit(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"google_fit_linked": false, "google_fit_last_sync": nil}).Error
}

// GoogleFitSyncResult reports what got imported. Simulated is true only on
// the degraded-mode path; callers must surface the distinction.
type GoogleFitSyncResult struct {
	Steps        float64 `json:"steps"`
	ActiveEnergy float64 `json:"active_energy"`
	Simulated    bool    `json:"simulated"`
	Source       string  `json:"source"`
}

func (s *HealthSyncService) SyncGoogleFit(ctx context.Context, userID uint) (*GoogleFitSyncResult, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	if !user.GoogleFitLinked {
		return nil, ErrIntegrationNotConnected
	}

	result := s.fetchGoogleFit(ctx, userID)

	if _, err := s.upsertSnapshot(ctx, userID, models.HealthSnapshot{
		Steps:        result.Steps,
		ActiveEnergy: result.ActiveEnergy,
		Source:       result.Source,
	}); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("google_fit_last_sync", &now).Error; err != nil {
		log.Printf("googlefit last-sync update failed for user %d: %v", userID, err)
	}
	return result, nil
}

// fetchGoogleFit calls the configured sync endpoint. When the endpoint is
// unconfigured or fails, it generates placeholder values so the UI still
// has something to render, tagged as simulated rather than genuine data.
func (s *HealthSyncService) fetchGoogleFit(ctx context.Context, userID uint) *GoogleFitSyncResult {
	if s.syncURL == "" {
		return simulatedGoogleFit()
	}

	body, _ := json.Marshal(map[string]uint{"user_id": userID})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.syncURL, bytes.NewReader(body))
	if err != nil {
		return simulatedGoogleFit()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("google fit sync call failed: %v", err)
		return simulatedGoogleFit()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("google fit sync returned %s", resp.Status)
		return simulatedGoogleFit()
	}

	var out struct {
		Steps        float64 `json:"steps"`
		ActiveEnergy float64 `json:"active_energy"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("google fit sync decode failed: %v", err)
		return simulatedGoogleFit()
	}

	return &GoogleFitSyncResult{
		Steps:        out.Steps,
		ActiveEnergy: out.ActiveEnergy,
		Source:       SourceGoogleFit,
	}
}

func simulatedGoogleFit() *GoogleFitSyncResult {
	return &GoogleFitSyncResult{
		Steps:        float64(rand.Intn(5000) + 3000),
		ActiveEnergy: float64(rand.Intn(300) + 100),
		Simulated:    true,
		Source:       SourceGoogleFitSimulated,
	}
}

func (s *HealthSyncService) ListSnapshots(ctx context.Context, userID uint, limit int) ([]models.HealthSnapshot, error) {
	if limit <= 0 || limit > 90 {
		limit = 30
	}
	var snaps []models.HealthSnapshot
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&snaps).Error
	return snaps, err
}

// upsertSnapshot writes today's row keyed by (user_id, date); a second
// sync the same day overwrites the earlier values.
func (s *HealthSyncService) upsertSnapshot(ctx context.Context, userID uint, values models.HealthSnapshot) (*models.HealthSnapshot, error) {
	day := startOfDay(time.Now())

	var snap models.HealthSnapshot
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		snap = models.HealthSnapshot{UserID: userID, Date: day}
	} else if err != nil {
		return nil, err
	}

	snap.Steps = values.Steps
	snap.ActiveEnergy = values.ActiveEnergy
	snap.Weight = values.Weight
	snap.HeartRate = values.HeartRate
	snap.Source = values.Source

	if err := s.db.WithContext(ctx).Save(&snap).Error; err != nil {
		return nil, fmt.Errorf("snapshot upsert: %w", err)
	}
	return &snap, nil
}
