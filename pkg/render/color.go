// pkg/render/color.go
package render

import (
	"image/color"

	"ringtime/internal/config"
	"ringtime/internal/utils"
)

const overlayAlpha = 192

// Palette holds the colors that are not part of a snapshot.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Highlight  color.RGBA // high score line right after a new record
	Overlay    color.RGBA
}

// DefaultPalette builds the palette from config.
func DefaultPalette() Palette {
	// затемнённый фон, полупрозрачный (premultiplied: RGB <= A)
	overlay := DarkenColor(config.BackgroundColor)
	overlay.A = overlayAlpha
	return Palette{
		Background: config.BackgroundColor,
		Text:       config.TextColor,
		Highlight:  config.PlayerColor,
		Overlay:    overlay,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies the RGB channels by f, clamped to [0, 1].
func ScaleColor(c color.RGBA, f float64) color.RGBA {
	f = max(0, min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// MixColor blends from a to b; t is clamped to [0, 1].
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	f := float32(max(0, min(1, t)))
	mix := func(x, y uint8) uint8 {
		return uint8(utils.Lerp(float32(x), float32(y), f) + 0.5)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
