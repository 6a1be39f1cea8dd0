// Package input decodes the raw terminal byte stream into a per-frame
// held-key snapshot. Terminals deliver key repeats rather than press/release
// events, so a key counts as held while repeats keep arriving within a short
// window.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// repeat byte arrived.
const keyHoldDuration = 150 * time.Millisecond

// Input is the current frame's held-key state for the shooter's logical
// actions.
type Input struct {
	Quit  bool
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool // space
	Start bool // enter
	Pause bool // p or escape
}

// keyState tracks the last time each action's key was seen.
type keyState struct {
	quit  time.Time
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
	fire  time.Time
	start time.Time
	pause time.Time
}

// Stream delivers input bytes via a channel and tracks key state across
// frames so simultaneous key combinations are detected.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when the reader does.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all buffered bytes from the stream without blocking and
// returns the held-key snapshot for this frame. A closed stream reads as a
// quit request.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return Input{Quit: true}
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	Parse(buf, &s.state, now)
	return s.state.snapshot(now)
}

// ResetKeyInput clears all key state, dropping any presses buffered before a
// screen transition.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// Parse applies a chunk of terminal bytes to the key state. Exported for
// tests; callers normally go through ReadInput.
func Parse(buf []byte, state *keyState, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences for arrow keys: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
				i += 2
				continue
			case 'B':
				state.down = now
				i += 2
				continue
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
	}
}

// snapshot builds the held-key view: a key is down if its last repeat was
// seen within the hold window.
func (ks *keyState) snapshot(now time.Time) Input {
	return Input{
		Quit:  now.Sub(ks.quit) < keyHoldDuration,
		Up:    now.Sub(ks.up) < keyHoldDuration,
		Down:  now.Sub(ks.down) < keyHoldDuration,
		Left:  now.Sub(ks.left) < keyHoldDuration,
		Right: now.Sub(ks.right) < keyHoldDuration,
		Fire:  now.Sub(ks.fire) < keyHoldDuration,
		Start: now.Sub(ks.start) < keyHoldDuration,
		Pause: now.Sub(ks.pause) < keyHoldDuration,
	}
}

// applyByteToState updates key timestamps for single-byte keys.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // ctrl-c
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case ' ':
		state.fire = now
	case '\n', '\r':
		state.start = now
	case 'p', 'P', '\x1b':
		state.pause = now
	}
}
