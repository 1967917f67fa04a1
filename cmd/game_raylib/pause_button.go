package main

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ringtime/internal/config"
	"ringtime/internal/utils"
)

// pauseButton is the corner toggle. It pulses briefly after each toggle.
type pauseButton struct {
	x, y      float32
	size      float32
	paused    bool
	sinceFlip float64
	color     rl.Color
}

func newPauseButton(x, y, size float32, c color.RGBA) *pauseButton {
	return &pauseButton{x: x, y: y, size: size, sinceFlip: 1, color: toRL(c)}
}

func (b *pauseButton) contains(pos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(pos, rl.NewVector2(b.x, b.y), b.size*1.5)
}

func (b *pauseButton) toggle() {
	b.paused = !b.paused
	b.sinceFlip = 0
}

func (b *pauseButton) update(dt float64) {
	b.sinceFlip += dt
}

func (b *pauseButton) draw() {
	s := b.size * float32(utils.Pulse(b.sinceFlip, config.PulseStrength, config.PulseDecay))

	if b.paused {
		// треугольник "play"
		rl.DrawTriangle(
			rl.NewVector2(b.x-s, b.y-s*1.2),
			rl.NewVector2(b.x-s, b.y+s*1.2),
			rl.NewVector2(b.x+s, b.y),
			b.color,
		)
		return
	}
	w, h, gap := s*0.6, s*2, s*0.4
	rl.DrawRectangleV(rl.NewVector2(b.x-w-gap/2, b.y-h/2), rl.NewVector2(w, h), b.color)
	rl.DrawRectangleV(rl.NewVector2(b.x+gap/2, b.y-h/2), rl.NewVector2(w, h), b.color)
}
