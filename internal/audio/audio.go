// Package audio synthesizes the game's sound cues and plays them through a
// single mixer. Audio is strictly fire-and-forget: cues never block the game
// loop, and when no playback backend is available the engine runs in silent
// mode instead of failing.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mzeman/novastrike/internal/sim"
)

// Config holds audio settings.
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 to 1.0
	SampleRate int
}

// DefaultConfig returns the standard audio settings.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// Engine synthesizes cues into one speaker mixer. It implements
// sim.SoundSink.
type Engine struct {
	cfg    Config
	sr     beep.SampleRate
	mixer  *beep.Mixer
	silent atomic.Bool
}

// NewEngine creates an engine; call Start before playing.
func NewEngine(cfg Config) *Engine {
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 1 {
		cfg.Volume = 1
	}
	e := &Engine{
		cfg:   cfg,
		sr:    beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	e.silent.Store(!cfg.Enabled)
	return e
}

// Start initializes the speaker and attaches the mixer. Failure to open a
// playback device switches to silent mode rather than returning an error.
func (e *Engine) Start() error {
	if e.silent.Load() {
		return nil
	}
	if err := speaker.Init(e.sr, e.sr.N(time.Millisecond*100)); err != nil {
		e.silent.Store(true)
		return nil
	}
	speaker.Play(e.mixer)
	return nil
}

// Play mixes in the streamer for the given cue. Unknown cues and silent mode
// are no-ops.
func (e *Engine) Play(snd sim.Sound) {
	if e.silent.Load() {
		return
	}
	st := cueStreamer(snd, e.sr, e.cfg.Volume)
	if st == nil {
		return
	}
	speaker.Lock()
	e.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback.
func (e *Engine) Close() {
	if e.silent.Load() {
		return
	}
	speaker.Clear()
}

var _ sim.SoundSink = (*Engine)(nil)
