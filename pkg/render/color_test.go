package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("unexpected darkened color %v", got)
	}
}

func TestScaleColorClamps(t *testing.T) {
	c := color.RGBA{10, 20, 30, 40}
	if got := ScaleColor(c, 2); got != c {
		t.Errorf("expected factor above 1 to clamp, got %v", got)
	}
	if got := ScaleColor(c, -1); got != (color.RGBA{0, 0, 0, 40}) {
		t.Errorf("expected factor below 0 to clamp, got %v", got)
	}
}

func TestDefaultPaletteOverlay(t *testing.T) {
	p := DefaultPalette()
	if p.Overlay.A != overlayAlpha {
		t.Errorf("expected overlay alpha %d, got %d", overlayAlpha, p.Overlay.A)
	}
	if p.Overlay.R >= p.Background.R || p.Overlay.B >= p.Background.B {
		t.Errorf("expected overlay %v darker than background %v", p.Overlay, p.Background)
	}
	if p.Overlay.R > p.Overlay.A || p.Overlay.G > p.Overlay.A || p.Overlay.B > p.Overlay.A {
		t.Errorf("overlay %v is not a valid premultiplied color", p.Overlay)
	}
}

func TestMixColor(t *testing.T) {
	a := color.RGBA{0, 100, 200, 255}
	b := color.RGBA{100, 200, 0, 255}
	if got := MixColor(a, b, 0); got != a {
		t.Errorf("expected a at t=0, got %v", got)
	}
	if got := MixColor(a, b, 1); got != b {
		t.Errorf("expected b at t=1, got %v", got)
	}
	if got := MixColor(a, b, 0.5); got != (color.RGBA{50, 150, 100, 255}) {
		t.Errorf("unexpected midpoint %v", got)
	}
	if got := MixColor(a, b, 3); got != b {
		t.Errorf("expected t to clamp, got %v", got)
	}
}

func TestLoadFace(t *testing.T) {
	face, err := LoadFace(32)
	if err != nil {
		t.Fatalf("LoadFace failed: %v", err)
	}
	defer face.Close()
	if h := face.Metrics().Height.Ceil(); h < 20 {
		t.Errorf("expected a line height of at least 20, got %d", h)
	}
}
