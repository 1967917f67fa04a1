package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"ringtime/internal/component"
	"ringtime/internal/config"
)

// Effects are per-frame visual modifiers that live outside the game state.
type Effects struct {
	PlayerScale float64 // 1 means no pulse
	Dim         float64 // 0 means no background flash
	Highlight   float64 // 0..1, high score line toward Palette.Highlight
}

// RingRenderer draws the ring, the player disc and the score lines.
type RingRenderer struct {
	face    font.Face
	palette Palette
}

func NewRingRenderer(face font.Face, palette Palette) *RingRenderer {
	return &RingRenderer{face: face, palette: palette}
}

// Draw paints one frame.
func (r *RingRenderer) Draw(screen *ebiten.Image, snap component.Snapshot, fx Effects) {
	bg := r.palette.Background
	if fx.Dim > 0 {
		bg = ScaleColor(bg, 1-fx.Dim)
	}
	screen.Fill(bg)

	drawCircle(screen, snap.Enemy)

	player := snap.Player
	if fx.PlayerScale > 0 {
		player.Radius *= fx.PlayerScale
	}
	drawCircle(screen, player)

	cx, cy := int(snap.Center.X), int(snap.Center.Y)
	r.drawCentered(screen, fmt.Sprintf("Score: %d", snap.Score), cx, cy-config.ScoreTextOffsetY, r.palette.Text)
	high := MixColor(r.palette.Text, r.palette.Highlight, fx.Highlight)
	r.drawCentered(screen, fmt.Sprintf("High Score: %d", snap.HighScore), cx, cy-config.HighTextOffsetY, high)
}

// DrawBanner writes a line of text centered on the screen.
func (r *RingRenderer) DrawBanner(screen *ebiten.Image, msg string, clr color.Color) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), r.palette.Overlay, false)
	r.drawCentered(screen, msg, config.ScreenWidth/2, config.ScreenHeight/2, clr)
}

func (r *RingRenderer) drawCentered(screen *ebiten.Image, msg string, cx, cy int, clr color.Color) {
	bounds := text.BoundString(r.face, msg)
	x := cx - bounds.Dx()/2 - bounds.Min.X
	y := cy - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, msg, r.face, x, y, clr)
}

// drawCircle paints a filled disc, or a ring that grows inward from Radius.
// A ring thicker than its radius degenerates to a disc.
func drawCircle(screen *ebiten.Image, c component.Circle) {
	if c.Radius <= 0 {
		return
	}
	cx, cy := float32(c.CenterX), float32(c.CenterY)
	if c.StrokeWidth <= 0 || c.Radius <= c.StrokeWidth {
		vector.DrawFilledCircle(screen, cx, cy, float32(c.Radius), c.Color, true)
		return
	}
	mid := c.Radius - c.StrokeWidth/2
	vector.StrokeCircle(screen, cx, cy, float32(mid), float32(c.StrokeWidth), c.Color, true)
}
