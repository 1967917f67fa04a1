package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Pulse returns a scale factor that starts at 1+strength and decays back to 1.
func Pulse(elapsed, strength, decay float64) float64 {
	if elapsed < 0 {
		return 1
	}
	return 1.0 + strength*math.Exp(-elapsed*decay)
}
