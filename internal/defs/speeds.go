package defs

// SpeedTable описывает диапазоны скорости кольца по уровням сложности.
// Low[i] и High[i] задают границы равномерного выбора (включительно).
type SpeedTable struct {
	Low  []int
	High []int
}

// Levels returns how many difficulty levels the table can serve.
// Extra entries in the longer slice are never reached.
func (t SpeedTable) Levels() int {
	return min(len(t.Low), len(t.High))
}

// Bounds returns the inclusive draw range for a level.
func (t SpeedTable) Bounds(level int) (low, high int) {
	return t.Low[level], t.High[level]
}

// SpeedTiers is the fixed progression used by the game.
var SpeedTiers = SpeedTable{
	Low:  []int{0, 1, 2, 3, 4, 5, 6, 7},
	High: []int{3, 4, 5, 6, 7, 8, 9, 10, 11},
}
