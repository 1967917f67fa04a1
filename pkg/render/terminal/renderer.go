// Package terminal draws the ring in a character grid with tcell.
package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"ringtime/internal/component"
	"ringtime/internal/config"
)

// Renderer maps the 600x600 logical field onto terminal cells.
type Renderer struct {
	screen tcell.Screen
	bg     tcell.Style
	text   tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	bg := tcell.StyleDefault.Background(rgb(config.BackgroundColor))
	return &Renderer{
		screen: screen,
		bg:     bg,
		text:   bg.Foreground(rgb(config.PlayerColor)).Bold(true),
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellSize returns logical pixels per cell column so the whole field fits.
// Rows are TerminalCellRatio times taller than columns.
func cellSize(cols, rows int) float64 {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	return math.Max(
		float64(config.ScreenWidth)/float64(cols),
		float64(config.ScreenHeight)/(float64(rows)*config.TerminalCellRatio),
	)
}

// Render draws the snapshot and shows the frame.
func (r *Renderer) Render(snap component.Snapshot) {
	cols, rows := r.screen.Size()
	unit := cellSize(cols, rows)
	player := r.bg.Background(rgb(snap.Player.Color))
	enemy := r.bg.Background(rgb(snap.Enemy.Color))

	for row := 0; row < rows; row++ {
		dy := (float64(row) + 0.5 - float64(rows)/2) * unit * config.TerminalCellRatio
		for col := 0; col < cols; col++ {
			dx := (float64(col) + 0.5 - float64(cols)/2) * unit
			d := math.Hypot(dx, dy)

			style := r.bg
			switch {
			case snap.Player.Contains(d):
				style = player
			case snap.Enemy.Contains(d):
				style = enemy
			}
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	r.centered(0, fmt.Sprintf("High Score: %d", snap.HighScore), cols)
	r.centered(1, fmt.Sprintf("Score: %d", snap.Score), cols)
	r.screen.Show()
}

func (r *Renderer) centered(row int, msg string, cols int) {
	runes := []rune(msg)
	x := (cols - len(runes)) / 2
	for i, ch := range runes {
		r.screen.SetContent(x+i, row, ch, nil, r.text)
	}
}
