package app

import (
	"ringtime/internal/defs"
	"ringtime/internal/interfaces"
)

// beforeStart is the index before the first draw; the first advance lands on 0.
const beforeStart = -1

// SpeedScheduler walks the progression table and draws ring speeds from it.
type SpeedScheduler struct {
	table defs.SpeedTable
	rng   interfaces.RangeSource
	index int
}

// NewSpeedScheduler creates a scheduler positioned before the first level.
func NewSpeedScheduler(table defs.SpeedTable, rng interfaces.RangeSource) *SpeedScheduler {
	if table.Levels() == 0 {
		panic("speed table must have at least one level")
	}
	return &SpeedScheduler{
		table: table,
		rng:   rng,
		index: beforeStart,
	}
}

// AdvanceAndDraw moves one level up, saturating at the hardest level, and
// returns a speed drawn uniformly from that level's inclusive range.
func (s *SpeedScheduler) AdvanceAndDraw() float64 {
	if s.index < s.maxIndex() {
		s.index++
	}
	low, high := s.table.Bounds(s.index)
	return float64(s.rng.IntRange(low, high))
}

// Reset returns to the position before the first level.
func (s *SpeedScheduler) Reset() {
	s.index = beforeStart
}

// Index is the current difficulty level, -1 before the first draw.
func (s *SpeedScheduler) Index() int {
	return s.index
}

func (s *SpeedScheduler) maxIndex() int {
	return s.table.Levels() - 1
}
