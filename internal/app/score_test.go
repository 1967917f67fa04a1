package app

import (
	"testing"

	"ringtime/internal/config"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		distance float64
		want     int
	}{
		{100, 10},
		{10, 1000},
		{5, 4000},
		{30, 111},
		{1, 99999},
		{480, 0},
	}
	for _, tt := range tests {
		if got := ComputeScore(tt.distance); got != tt.want {
			t.Errorf("ComputeScore(%v): expected %d, got %d", tt.distance, tt.want, got)
		}
	}
}

func TestComputeScoreRewardsPrecision(t *testing.T) {
	prev := ComputeScore(200)
	for _, d := range []float64{150, 100, 50, 20, 10, 2, 0.5} {
		got := ComputeScore(d)
		if got <= prev {
			t.Errorf("expected score at %v (%d) to exceed %d", d, got, prev)
		}
		prev = got
	}
}

func TestComputeScoreClampsTinyDistances(t *testing.T) {
	if got := ComputeScore(1e-12); got != config.MaxHitScore {
		t.Errorf("expected clamp to %d, got %d", config.MaxHitScore, got)
	}
}
