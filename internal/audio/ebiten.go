package audio

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"ringtime/internal/config"
)

// EbitenPlayer plays through ebiten's audio context. Only one context may
// exist per process, so an existing one is reused.
type EbitenPlayer struct {
	ctx    *audio.Context
	click  *audio.Player
	music  *audio.Player
	closed bool
}

// NewEbitenPlayer prepares both sounds at the given volume (0..1).
func NewEbitenPlayer(volume float64) (*EbitenPlayer, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(config.AudioSampleRate)
	}

	click := ctx.NewPlayerFromBytes(pcm16Stereo(clickSound()))
	click.SetVolume(volume)

	pcm := pcm16Stereo(musicLoop())
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	music.SetVolume(volume)

	return &EbitenPlayer{ctx: ctx, click: click, music: music}, nil
}

// PlayClick restarts the click from the beginning.
func (p *EbitenPlayer) PlayClick() {
	if p.closed {
		return
	}
	replay(p.click)
}

type rewindPlayer interface {
	Rewind() error
	Play()
}

// replay starts a player from the beginning. A failed rewind is logged and
// the sound is skipped.
func replay(p rewindPlayer) {
	if err := p.Rewind(); err != nil {
		log.Printf("Failed to rewind click: %v", err)
		return
	}
	p.Play()
}

// StartMusic starts the background loop.
func (p *EbitenPlayer) StartMusic() {
	if p.closed || p.music.IsPlaying() {
		return
	}
	p.music.Play()
}

// Close stops playback. The context itself lives until exit.
func (p *EbitenPlayer) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if err := p.click.Close(); err != nil {
		return fmt.Errorf("failed to close click player: %w", err)
	}
	if err := p.music.Close(); err != nil {
		return fmt.Errorf("failed to close music player: %w", err)
	}
	return nil
}
