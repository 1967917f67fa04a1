// internal/ui/indicator.go
package ui

import (
	"ringtime/internal/component"
	"ringtime/internal/config"
	"ringtime/internal/event"
	"ringtime/internal/utils"
	"ringtime/pkg/render"
)

const (
	flashDuration     = 0.25 // секунд
	highlightDuration = 0.6
)

var feedbackEvents = []event.EventType{event.ActionAccepted, event.RoundLost, event.HighScoreBeaten}

// Feedback pulses the player disc on a hit, dims the background on a loss and
// lights up the high score line on a new record. It listens on the game's
// dispatcher and advances with the host's delta time.
type Feedback struct {
	sinceHit    float64
	sinceLoss   float64
	sinceRecord float64
	hit         bool
	lost        bool
	record      bool
}

// NewFeedback creates an idle feedback tracker.
func NewFeedback() *Feedback {
	return &Feedback{}
}

// Subscribe registers the tracker for hit, loss and record events.
func (f *Feedback) Subscribe(d *event.Dispatcher) {
	for _, t := range feedbackEvents {
		d.Subscribe(t, f)
	}
}

// Unsubscribe undoes Subscribe.
func (f *Feedback) Unsubscribe(d *event.Dispatcher) {
	for _, t := range feedbackEvents {
		d.Unsubscribe(t, f)
	}
}

func (f *Feedback) OnEvent(e event.Event) {
	if e.Type == event.HighScoreBeaten {
		f.record = true
		f.sinceRecord = 0
		return
	}
	switch event.KindOf(e) {
	case component.ResetHit:
		f.hit = true
		f.sinceHit = 0
	case component.ResetLoss:
		f.lost = true
		f.sinceLoss = 0
	}
}

// Update advances the effect timers.
func (f *Feedback) Update(deltaTime float64) {
	f.sinceHit += deltaTime
	f.sinceLoss += deltaTime
	f.sinceRecord += deltaTime
	if f.lost && f.sinceLoss >= flashDuration {
		f.lost = false
	}
	if f.record && f.sinceRecord >= highlightDuration {
		f.record = false
	}
}

// Effects returns what the renderer should apply this frame.
func (f *Feedback) Effects() render.Effects {
	fx := render.Effects{PlayerScale: 1}
	if f.hit {
		fx.PlayerScale = utils.Pulse(f.sinceHit, config.PulseStrength, config.PulseDecay)
	}
	if f.lost {
		fx.Dim = 0.5 * (1 - f.sinceLoss/flashDuration)
	}
	if f.record {
		fx.Highlight = 1 - f.sinceRecord/highlightDuration
	}
	return fx
}
