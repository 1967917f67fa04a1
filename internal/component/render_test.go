package component

import "testing"

func TestCircleInnerRadius(t *testing.T) {
	tests := []struct {
		name   string
		circle Circle
		want   float64
	}{
		{"filled disc", Circle{Radius: 20}, 0},
		{"ring", Circle{Radius: 500, StrokeWidth: 30}, 470},
		{"ring thinner than stroke", Circle{Radius: 12, StrokeWidth: 30}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.circle.InnerRadius(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCircleContains(t *testing.T) {
	ring := Circle{Radius: 100, StrokeWidth: 30}
	if !ring.Contains(85) {
		t.Error("expected 85 to be on the ring")
	}
	if ring.Contains(60) {
		t.Error("expected 60 to be inside the ring hole")
	}
	if ring.Contains(101) {
		t.Error("expected 101 to be outside the ring")
	}

	collapsed := Circle{Radius: -5, StrokeWidth: 30}
	if collapsed.Contains(0) {
		t.Error("expected a negative radius ring to cover nothing")
	}
}

func TestResetKindString(t *testing.T) {
	if ResetHit.String() != "hit" || ResetLoss.String() != "loss" || ResetNone.String() != "none" {
		t.Error("unexpected ResetKind names")
	}
}
