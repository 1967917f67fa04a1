// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ringtime/internal/loop"
	"ringtime/internal/ui"
	"ringtime/pkg/render"
)

// Triggers reports how many actions the player fired this frame.
type Triggers func() int

// KeyboardTriggers counts a Space key-down edge and a left click.
// Held keys do not repeat.
func KeyboardTriggers() int {
	n := 0
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		n++
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		n++
	}
	return n
}

// PauseRequested reports a pause toggle key edge.
func PauseRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9)
}

// PlayState drives the game loop and draws it.
type PlayState struct {
	sm       *StateMachine
	loop     *loop.Loop
	renderer *render.RingRenderer
	feedback *ui.Feedback
	triggers Triggers
	pause    func() bool
}

// NewPlayState creates the play state. Visual feedback follows the game's
// events only while the state is active.
func NewPlayState(sm *StateMachine, lp *loop.Loop, renderer *render.RingRenderer) *PlayState {
	return &PlayState{
		sm:       sm,
		loop:     lp,
		renderer: renderer,
		feedback: ui.NewFeedback(),
		triggers: KeyboardTriggers,
		pause:    PauseRequested,
	}
}

func (g *PlayState) Enter() {
	g.feedback.Subscribe(g.loop.Game().EventDispatcher)
}

func (g *PlayState) Update(deltaTime float64) {
	if g.pause() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.loop.Step(g.triggers())
	g.feedback.Update(deltaTime)
}

func (g *PlayState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.loop.Snapshot(), g.feedback.Effects())
}

func (g *PlayState) Exit() {
	g.feedback.Unsubscribe(g.loop.Game().EventDispatcher)
}
