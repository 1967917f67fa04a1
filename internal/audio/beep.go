package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"ringtime/internal/config"
)

const sampleRate = beep.SampleRate(config.AudioSampleRate)

// BeepPlayer mixes the sounds through the system speaker with beep.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	click       floatBuffer
	music       floatBuffer
	volume      float64
	musicOn     bool
	initialized bool
}

// NewBeepPlayer initializes the speaker and starts an empty mixer.
func NewBeepPlayer(volume float64) (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	p := &BeepPlayer{
		mixer:       &beep.Mixer{},
		click:       clickSound(),
		music:       musicLoop(),
		volume:      volume,
		initialized: true,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// PlayClick adds one click on top of whatever is playing.
func (p *BeepPlayer) PlayClick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(newBufferStreamer(p.click, p.volume, false))
	speaker.Unlock()
}

// StartMusic adds the looping drone once.
func (p *BeepPlayer) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.musicOn {
		return
	}
	speaker.Lock()
	p.mixer.Add(newBufferStreamer(p.music, p.volume, true))
	speaker.Unlock()
	p.musicOn = true
}

// Close silences and releases the speaker.
func (p *BeepPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
	return nil
}

// bufferStreamer replays a mono buffer on both channels.
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	loop bool
	pos  int
}

func newBufferStreamer(buf floatBuffer, gain float64, loop bool) *bufferStreamer {
	return &bufferStreamer{buf: buf, gain: gain, loop: loop}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if len(s.buf) == 0 {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			if !s.loop {
				return i, i > 0
			}
			s.pos = 0
		}
		v := s.buf[s.pos] * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
