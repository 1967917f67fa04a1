package event

import "ringtime/internal/component"

const (
	ActionAccepted  EventType = "ActionAccepted"  // игрок попал в окно
	RoundLost       EventType = "RoundLost"       // кольцо прошло сквозь диск
	HighScoreBeaten EventType = "HighScoreBeaten" // рекорд обновлён и сохранён
)

// HitData is the payload of ActionAccepted.
type HitData struct {
	Distance float64
	Points   int
	Score    int
}

// LossData is the payload of RoundLost.
type LossData struct {
	FinalScore int
	Round      int
}

// HighScoreData is the payload of HighScoreBeaten.
type HighScoreData struct {
	Previous int
	Current  int
}

// KindOf maps an event to the reset transition that produced it.
func KindOf(e Event) component.ResetKind {
	switch e.Type {
	case ActionAccepted:
		return component.ResetHit
	case RoundLost:
		return component.ResetLoss
	default:
		return component.ResetNone
	}
}
