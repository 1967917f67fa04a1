// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ringtime/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the game: no ticks and no actions reach it.
type PauseState struct {
	sm       *StateMachine
	previous *PlayState
	resume   func() bool
}

func NewPauseState(sm *StateMachine, prev *PlayState) *PauseState {
	return &PauseState{
		sm:       sm,
		previous: prev,
		resume:   PauseRequested,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if s.resume() {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	s.previous.renderer.DrawBanner(screen, "PAUSED", config.PauseTextColor)
}

func (s *PauseState) Exit() {}
