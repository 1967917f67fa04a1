package component

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Center          Point
	Player          Circle
	Enemy           Circle
	Score           int
	HighScore       int
	DifficultyIndex int
	EnemySpeed      float64
	Round           int
	LastReset       ResetKind
}
