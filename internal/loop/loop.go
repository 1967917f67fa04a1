// Package loop drives the game once per frame and connects it to the
// audio and rendering boundaries.
package loop

import (
	"context"
	"fmt"
	"time"

	"ringtime/internal/app"
	"ringtime/internal/component"
	"ringtime/internal/config"
	"ringtime/internal/event"
	"ringtime/internal/interfaces"
)

// Loop owns the game value and the injected audio sink.
type Loop struct {
	game  *app.Game
	audio interfaces.Audio
	frame uint64
}

// audioListener turns accepted actions into a click.
type audioListener struct {
	audio interfaces.Audio
}

func (l *audioListener) OnEvent(e event.Event) {
	if e.Type == event.ActionAccepted {
		l.audio.PlayClick()
	}
}

// New wires audio to the game's events and starts the music.
func New(game *app.Game, audio interfaces.Audio) *Loop {
	game.EventDispatcher.Subscribe(event.ActionAccepted, &audioListener{audio: audio})
	audio.StartMusic()
	return &Loop{game: game, audio: audio}
}

// Game exposes the driven game, mostly for hosts that subscribe to events.
func (l *Loop) Game() *app.Game {
	return l.game
}

// Frame is the number of completed steps.
func (l *Loop) Frame() uint64 {
	return l.frame
}

// Step applies this frame's triggers, then advances the ring once.
func (l *Loop) Step(actions int) {
	for i := 0; i < actions; i++ {
		l.game.OnAction()
	}
	l.game.Tick()
	l.frame++
}

// Snapshot returns the state to draw after the last Step.
func (l *Loop) Snapshot() component.Snapshot {
	return l.game.Snapshot()
}

// Run paces a front end at config.TPS until it asks to quit or ctx ends.
// Input -> Step -> Render, like every host.
func (l *Loop) Run(ctx context.Context, fe interfaces.Frontend) error {
	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	for {
		in := fe.Poll()
		if in.Quit {
			return nil
		}
		l.Step(in.Actions)
		fe.Render(l.Snapshot())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Shutdown saves the best score and releases audio. Both are attempted.
func (l *Loop) Shutdown() error {
	saveErr := l.game.Shutdown()
	if err := l.audio.Close(); err != nil && saveErr == nil {
		return fmt.Errorf("failed to close audio: %w", err)
	}
	return saveErr
}
