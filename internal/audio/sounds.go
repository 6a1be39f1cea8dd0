package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/mzeman/novastrike/internal/sim"
)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveNoise
)

// tone is a finite streamer producing a single synthesized note: a waveform
// with a linear frequency sweep, an attack/release envelope and a fixed
// gain.
type tone struct {
	sr        beep.SampleRate
	wave      waveform
	freqStart float64
	freqEnd   float64
	gain      float64

	total   int // total samples
	attack  int // attack window in samples
	release int // release window in samples
	pos     int
	phase   float64
}

func newTone(sr beep.SampleRate, wave waveform, freqStart, freqEnd float64, dur time.Duration, gain float64) *tone {
	total := sr.N(dur)
	attack := sr.N(5 * time.Millisecond)
	release := sr.N(30 * time.Millisecond)
	if attack+release > total {
		attack = total / 4
		release = total / 4
	}
	return &tone{
		sr:        sr,
		wave:      wave,
		freqStart: freqStart,
		freqEnd:   freqEnd,
		gain:      gain,
		total:     total,
		attack:    attack,
		release:   release,
	}
}

// Stream fills samples until the tone's duration is exhausted.
func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		frac := float64(t.pos) / float64(t.total)
		freq := t.freqStart + (t.freqEnd-t.freqStart)*frac

		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase-math.Floor(t.phase) < 0.5 {
				v = 1.0
			} else {
				v = -1.0
			}
		case waveNoise:
			v = rand.Float64()*2 - 1
		}
		t.phase += freq / float64(t.sr)

		env := 1.0
		if t.attack > 0 && t.pos < t.attack {
			env = float64(t.pos) / float64(t.attack)
		}
		if rem := t.total - t.pos; t.release > 0 && rem < t.release {
			if rel := float64(rem) / float64(t.release); rel < env {
				env = rel
			}
		}

		v *= env * t.gain
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

// cueStreamer builds the streamer for a simulation sound cue.
func cueStreamer(snd sim.Sound, sr beep.SampleRate, volume float64) beep.Streamer {
	switch snd {
	case sim.SoundShoot:
		return newTone(sr, waveSquare, 880, 440, 60*time.Millisecond, 0.25*volume)
	case sim.SoundHit:
		return newTone(sr, waveNoise, 0, 0, 80*time.Millisecond, 0.35*volume)
	case sim.SoundExplosion:
		return beep.Mix(
			newTone(sr, waveNoise, 0, 0, 300*time.Millisecond, 0.4*volume),
			newTone(sr, waveSine, 120, 40, 300*time.Millisecond, 0.3*volume),
		)
	case sim.SoundPowerUp:
		return beep.Seq(
			newTone(sr, waveSine, 660, 660, 70*time.Millisecond, 0.4*volume),
			newTone(sr, waveSine, 880, 880, 120*time.Millisecond, 0.4*volume),
		)
	default:
		return nil
	}
}
