// Package audio synthesizes the click and music at start-up and plays them
// through ebiten or beep. No asset files are needed.
package audio

import (
	"encoding/binary"
	"math"

	"ringtime/internal/config"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// sine generates a pure tone.
func sine(freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phaseInc := freq / float64(config.AudioSampleRate)
	phase := 0.0
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release in place.
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * float64(config.AudioSampleRate))
	release := int(releaseSec * float64(config.AudioSampleRate))

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := range buf {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-1-i) / float64(release)
		}
		buf[i] *= vol
	}
}

func durationToSamples(sec float64) int {
	return int(sec * float64(config.AudioSampleRate))
}

// clickSound is a short bright blip played on every accepted action.
func clickSound() floatBuffer {
	buf := sine(config.ClickFrequency, durationToSamples(config.ClickDuration))
	applyEnvelope(buf, 0.004, 0.04)
	for i := range buf {
		buf[i] *= 0.6
	}
	return buf
}

// musicLoop is a low drone whose partials complete whole cycles inside the
// loop length, so it repeats without a seam.
func musicLoop() floatBuffer {
	samples := durationToSamples(config.MusicLoopSeconds)
	root := sine(110, samples)
	fifth := sine(165, samples)
	buf := make(floatBuffer, samples)
	for i := range buf {
		t := float64(i) / float64(samples)
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*t)
		buf[i] = 0.12 * swell * (root[i] + 0.5*fifth[i])
	}
	return buf
}

// pcm16Stereo converts mono samples to signed 16-bit little-endian stereo,
// the format ebiten's audio context expects.
func pcm16Stereo(buf floatBuffer) []byte {
	out := make([]byte, len(buf)*4)
	for i, s := range buf {
		s = max(-1, min(1, s))
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], v)
		binary.LittleEndian.PutUint16(out[i*4+2:], v)
	}
	return out
}
