package services

import (
	"testing"
	"time"

	"github.com/BugHunter-Coder/fasting-friend/models"
)

func weights(values ...float64) []models.WeightEntry {
	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	out := make([]models.WeightEntry, 0, len(values))
	for i, v := range values {
		out = append(out, models.WeightEntry{
			UserID:     1,
			Weight:     v,
			RecordedAt: base.AddDate(0, 0, i),
		})
	}
	return out
}

func TestSummarizeWeightsTrend(t *testing.T) {
	target := 165.0
	s := SummarizeWeights(weights(180, 175, 170), &target)

	if s.Latest == nil || *s.Latest != 170 {
		t.Fatalf("latest: got %v, want 170", s.Latest)
	}
	if s.TotalChange == nil || *s.TotalChange != -10 {
		t.Fatalf("total change: got %v, want -10", s.TotalChange)
	}
	if s.DistanceToGoal == nil || *s.DistanceToGoal != 5 {
		t.Fatalf("distance to goal: got %v, want 5", s.DistanceToGoal)
	}
}

func TestSummarizeWeightsSingleEntry(t *testing.T) {
	target := 165.0
	s := SummarizeWeights(weights(170), &target)

	if s.Latest == nil || *s.Latest != 170 {
		t.Fatalf("latest: got %v, want 170", s.Latest)
	}
	if s.TotalChange != nil {
		t.Fatalf("one entry has no change, got %v", *s.TotalChange)
	}
	if s.DistanceToGoal == nil || *s.DistanceToGoal != 5 {
		t.Fatalf("distance to goal: got %v, want 5", s.DistanceToGoal)
	}
}

func TestSummarizeWeightsEmpty(t *testing.T) {
	target := 165.0
	s := SummarizeWeights(nil, &target)
	if s.Latest != nil || s.TotalChange != nil || s.DistanceToGoal != nil {
		t.Fatalf("empty entries must produce an empty summary: %+v", s)
	}
}

func TestSummarizeWeightsNoTarget(t *testing.T) {
	s := SummarizeWeights(weights(180, 175), nil)
	if s.TotalChange == nil || *s.TotalChange != -5 {
		t.Fatalf("total change: got %v, want -5", s.TotalChange)
	}
	if s.DistanceToGoal != nil {
		t.Fatal("no target weight means no distance to goal")
	}
}
