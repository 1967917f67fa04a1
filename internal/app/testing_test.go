package app

import (
	"errors"

	"ringtime/internal/event"
)

// memoryStore records every save.
type memoryStore struct {
	value   int
	saves   []int
	saveErr error
}

func (m *memoryStore) Load() int { return m.value }

func (m *memoryStore) Save(value int) error {
	m.saves = append(m.saves, value)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = value
	return nil
}

// lowRange always returns the lower bound, so speeds are predictable.
type lowRange struct {
	calls [][2]int
}

func (r *lowRange) IntRange(lo, hi int) int {
	r.calls = append(r.calls, [2]int{lo, hi})
	return lo
}

// highRange always returns the upper bound.
type highRange struct{}

func (highRange) IntRange(lo, hi int) int { return hi }

var errDiskFull = errors.New("disk full")

func newTestGame(store *memoryStore) (*Game, *lowRange, *event.Dispatcher) {
	rng := &lowRange{}
	d := event.NewDispatcher()
	return NewGame(store, rng, d), rng, d
}
