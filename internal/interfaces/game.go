package interfaces

import "ringtime/internal/component"

// ScoreStore persists the best score.
type ScoreStore interface {
	Load() int
	Save(value int) error
}

// RangeSource draws integers uniformly from [lo, hi].
type RangeSource interface {
	IntRange(lo, hi int) int
}

// Renderer draws one frame from a snapshot.
type Renderer interface {
	Render(snap component.Snapshot)
}

// Audio is the sound boundary. Implementations must tolerate calls after
// Close.
type Audio interface {
	PlayClick()
	StartMusic()
	Close() error
}
