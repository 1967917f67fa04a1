package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"ringtime/internal/config"
)

func TestClickSoundShape(t *testing.T) {
	buf := clickSound()
	if want := durationToSamples(config.ClickDuration); len(buf) != want {
		t.Fatalf("expected %d samples, got %d", want, len(buf))
	}
	if buf[0] != 0 {
		t.Errorf("expected silent first sample, got %v", buf[0])
	}
	if math.Abs(buf[len(buf)-1]) > 1e-9 {
		t.Errorf("expected silent last sample, got %v", buf[len(buf)-1])
	}
	peak := 0.0
	for _, s := range buf {
		peak = max(peak, math.Abs(s))
	}
	if peak <= 0.1 || peak > 1 {
		t.Errorf("unexpected click peak %v", peak)
	}
}

func TestMusicLoopIsSeamless(t *testing.T) {
	buf := musicLoop()
	if want := durationToSamples(config.MusicLoopSeconds); len(buf) != want {
		t.Fatalf("expected %d samples, got %d", want, len(buf))
	}
	// the sample after the last one is the first one again
	step := math.Abs(buf[0] - buf[len(buf)-1])
	if step > 0.02 {
		t.Errorf("loop seam jumps by %v", step)
	}
	for i, s := range buf {
		if math.Abs(s) > 1 {
			t.Fatalf("sample %d clips: %v", i, s)
		}
	}
}

func TestApplyEnvelopeRamps(t *testing.T) {
	buf := make(floatBuffer, durationToSamples(0.1))
	for i := range buf {
		buf[i] = 1
	}
	applyEnvelope(buf, 0.01, 0.01)

	attack := durationToSamples(0.01)
	if buf[0] != 0 {
		t.Errorf("expected attack to start at 0, got %v", buf[0])
	}
	if buf[attack/2] >= 1 || buf[attack/2] <= 0 {
		t.Errorf("expected mid-attack gain in (0, 1), got %v", buf[attack/2])
	}
	if buf[len(buf)/2] != 1 {
		t.Errorf("expected sustain at 1, got %v", buf[len(buf)/2])
	}
	if buf[len(buf)-1] != 0 {
		t.Errorf("expected release to end at 0, got %v", buf[len(buf)-1])
	}
}

func TestPCM16Stereo(t *testing.T) {
	out := pcm16Stereo(floatBuffer{0, 1, -1, 2})
	if len(out) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(out))
	}
	read := func(i int) int16 { return int16(binary.LittleEndian.Uint16(out[i*2:])) }

	if read(0) != 0 || read(1) != 0 {
		t.Errorf("expected silence, got %d %d", read(0), read(1))
	}
	if read(2) != math.MaxInt16 || read(3) != math.MaxInt16 {
		t.Errorf("expected full scale on both channels, got %d %d", read(2), read(3))
	}
	if read(4) != -math.MaxInt16 {
		t.Errorf("expected negative full scale, got %d", read(4))
	}
	if read(6) != math.MaxInt16 {
		t.Errorf("expected clipping to full scale, got %d", read(6))
	}
}

func TestBufferStreamer(t *testing.T) {
	one := newBufferStreamer(floatBuffer{0.5, 0.5, 0.5}, 0.5, false)
	samples := make([][2]float64, 2)

	n, ok := one.Stream(samples)
	if n != 2 || !ok || samples[0][0] != 0.25 || samples[1][1] != 0.25 {
		t.Fatalf("unexpected first read n=%d ok=%v %v", n, ok, samples)
	}
	n, ok = one.Stream(samples)
	if n != 1 || !ok {
		t.Errorf("expected partial read of 1, got n=%d ok=%v", n, ok)
	}
	if n, ok = one.Stream(samples); n != 0 || ok {
		t.Errorf("expected drained streamer, got n=%d ok=%v", n, ok)
	}

	looped := newBufferStreamer(floatBuffer{1, 2}, 1, true)
	big := make([][2]float64, 5)
	if n, ok := looped.Stream(big); n != 5 || !ok || big[4][0] != 1 || big[3][0] != 2 {
		t.Errorf("expected looping read, got n=%d ok=%v %v", n, ok, big)
	}
}

func TestNopIsSafe(t *testing.T) {
	var n Nop
	n.PlayClick()
	n.StartMusic()
	if err := n.Close(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
