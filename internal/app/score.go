package app

import (
	"math"

	"ringtime/internal/config"
)

// ComputeScore turns the gap between ring and disc into points:
// floor(1 / (distance/scale)^2 * multiplier). The reward grows sharply as
// the gap closes. distance must be positive; the hit window guarantees it.
func ComputeScore(distance float64) int {
	raw := 1 / math.Pow(distance/config.ScoreScale, 2) * config.ScoreMultiplier
	if raw >= config.MaxHitScore {
		return config.MaxHitScore
	}
	return int(math.Floor(raw))
}
