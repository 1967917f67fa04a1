package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"ringtime/internal/interfaces"
)

// repeatGap separates a new Space press from terminal auto-repeat. Terminals
// report no key release, so a Space arriving within this gap of the previous
// one is treated as the key being held.
const repeatGap = 100 * time.Millisecond

// Frontend reads keys from a tcell screen and renders into it.
// Events are pumped on a helper goroutine and drained by Poll on the loop's
// goroutine, so the game itself is never touched concurrently.
type Frontend struct {
	*Renderer
	screen    tcell.Screen
	events    chan tcell.Event
	done      chan struct{}
	stopped   chan struct{}
	lastSpace time.Time
}

// NewFrontend starts pumping events from an initialized screen.
func NewFrontend(screen tcell.Screen) *Frontend {
	f := &Frontend{
		Renderer: NewRenderer(screen),
		screen:   screen,
		events:   make(chan tcell.Event, 64),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go f.pump()
	return f
}

// Close stops the pump. It returns at the next screen event or when the
// screen is finalized, whichever comes first.
func (f *Frontend) Close() {
	select {
	case <-f.done:
	default:
		close(f.done)
	}
}

func (f *Frontend) pump() {
	defer close(f.stopped)
	for {
		select {
		case <-f.done:
			return
		default:
		}
		ev := f.screen.PollEvent()
		if ev == nil {
			close(f.events)
			return
		}
		select {
		case f.events <- ev:
		case <-f.done:
			return
		}
	}
}

// Poll drains pending events without blocking.
func (f *Frontend) Poll() interfaces.Input {
	var in interfaces.Input
	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				in.Quit = true
				return in
			}
			f.handle(ev, &in)
		default:
			return in
		}
	}
}

func (f *Frontend) handle(ev tcell.Event, in *interfaces.Input) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.Quit = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				if f.pressed(ev.When()) {
					in.Actions++
				}
			case 'q', 'Q':
				in.Quit = true
			}
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

// pressed reports whether a Space at t is a fresh press rather than a repeat.
// Every Space, counted or not, restarts the gap, so a held key stays quiet.
func (f *Frontend) pressed(t time.Time) bool {
	fresh := f.lastSpace.IsZero() || t.Sub(f.lastSpace) >= repeatGap
	f.lastSpace = t
	return fresh
}
