package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchGoogleFitRealEndpoint(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s, want POST", r.Method)
		}
		var body struct {
			UserID uint `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("request decode: %v", err)
		}
		if body.UserID != 7 {
			t.Errorf("user_id: got %d, want 7", body.UserID)
		}
		json.NewEncoder(w).Encode(map[string]float64{
			"steps":         6234,
			"active_energy": 312,
		})
	}))
	defer ts.Close()

	svc := &HealthSyncService{syncURL: ts.URL, client: ts.Client()}
	result := svc.fetchGoogleFit(context.Background(), 7)

	if result.Simulated {
		t.Fatal("successful sync must not be tagged simulated")
	}
	if result.Source != SourceGoogleFit {
		t.Fatalf("source: got %q, want %q", result.Source, SourceGoogleFit)
	}
	if result.Steps != 6234 || result.ActiveEnergy != 312 {
		t.Fatalf("imported values: got %v/%v", result.Steps, result.ActiveEnergy)
	}
}

func TestFetchGoogleFitUnconfiguredFallsBack(t *testing.T) {
	svc := &HealthSyncService{client: http.DefaultClient}
	result := svc.fetchGoogleFit(context.Background(), 1)

	if !result.Simulated {
		t.Fatal("unconfigured endpoint must produce simulated data")
	}
	if result.Source != SourceGoogleFitSimulated {
		t.Fatalf("source: got %q, want %q", result.Source, SourceGoogleFitSimulated)
	}
	if result.Steps < 3000 || result.Steps >= 8000 {
		t.Fatalf("simulated steps out of range: %v", result.Steps)
	}
	if result.ActiveEnergy < 100 || result.ActiveEnergy >= 400 {
		t.Fatalf("simulated energy out of range: %v", result.ActiveEnergy)
	}
}

func TestFetchGoogleFitServerErrorFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer ts.Close()

	svc := &HealthSyncService{syncURL: ts.URL, client: ts.Client()}
	result := svc.fetchGoogleFit(context.Background(), 1)

	if !result.Simulated || result.Source != SourceGoogleFitSimulated {
		t.Fatalf("failed endpoint must fall back to simulated, got %+v", result)
	}
}

func TestFetchGoogleFitBadPayloadFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	svc := &HealthSyncService{syncURL: ts.URL, client: ts.Client()}
	result := svc.fetchGoogleFit(context.Background(), 1)

	if !result.Simulated {
		t.Fatal("undecodable payload must fall back to simulated")
	}
}
