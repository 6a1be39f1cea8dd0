// Package loop drives the game: once per tick it samples input, advances the
// simulation and renders the resulting snapshot. The tick cadence comes from
// a Scheduler so tests can substitute deterministic time.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/mzeman/novastrike/internal/draw"
	"github.com/mzeman/novastrike/internal/input"
	"github.com/mzeman/novastrike/internal/sim"
)

// Render area caps. Terminals larger than this get a centered, bordered
// playfield instead of an ever-larger one.
const (
	maxRenderCols = 160
	maxRenderRows = 50
)

const defaultFPS = 60

// Options configure a game loop. All fields are optional.
type Options struct {
	TermSizeFunc draw.TermSizeFunc  // defaults to os.Stdout size
	Scores       sim.HighScoreStore // nil disables persistence
	Sounds       sim.SoundSink      // nil disables audio
	Scheduler    Scheduler          // defaults to a frame scheduler at TargetFPS
	TargetFPS    int
	Rand         *rand.Rand
}

// Run starts the game loop with the standard Input → Update → Draw cycle and
// blocks until the player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	fps := opts.TargetFPS
	if fps <= 0 {
		fps = defaultFPS
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewFrameScheduler(time.Second / time.Duration(fps))
	}
	defer sched.Stop()

	simulation := sim.New(sim.Options{
		Scores: opts.Scores,
		Sounds: opts.Sounds,
		Rand:   opts.Rand,
	})
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		termWidth, termHeight = maxRenderCols, maxRenderRows
	}
	renderW, renderH, offCol, offRow := layout(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderW, renderH, sim.FieldWidth, sim.FieldHeight)
	canvas.SetOffset(offCol, offRow)
	cw := draw.NewChunkWriter(w, offCol, offRow)

	var edges edgeFilter
	lastPhase := simulation.Phase()
	lastTime := time.Now()

	for {
		frameStart, ok := sched.Next()
		if !ok {
			break // loop stopped externally
		}
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		inp := input.ReadInput(stream)
		if inp.Quit {
			break
		}

		// ===== UPDATE PHASE =====
		simulation.Step(frameStart, delta, edges.translate(inp))

		if phase := simulation.Phase(); phase != lastPhase {
			// Drop keys buffered behind a screen transition so a held
			// start key does not leak into the run.
			input.ResetKeyInput(stream)
			lastPhase = phase
		}

		// ===== DRAW PHASE =====
		if tw, th, err := sizeFunc(); err == nil && tw > 0 && th > 0 {
			renderW, renderH, offCol, offRow = layout(tw, th)
			canvas.Resize(renderW, renderH)
			canvas.SetOffset(offCol, offRow)
			cw.SetOffset(offCol, offRow)
		}
		if err := renderFrame(cw, canvas, simulation.Snapshot(), frameStart); err != nil {
			return err
		}
	}

	draw.ClearScreen(w)
	return nil
}

// layout clamps the render area to the caps and centers it in the terminal.
func layout(termWidth, termHeight int) (renderW, renderH, offCol, offRow int) {
	renderW = termWidth
	if renderW > maxRenderCols {
		renderW = maxRenderCols
	}
	renderH = termHeight
	if renderH > maxRenderRows {
		renderH = maxRenderRows
	}
	offCol = (termWidth - renderW) / 2
	offRow = (termHeight - renderH) / 2
	return renderW, renderH, offCol, offRow
}

// edgeFilter turns held start/pause keys into one-shot signals. Movement and
// fire stay level-triggered.
type edgeFilter struct {
	prevStart bool
	prevPause bool
}

func (e *edgeFilter) translate(in input.Input) sim.Input {
	out := sim.Input{
		Up:    in.Up,
		Down:  in.Down,
		Left:  in.Left,
		Right: in.Right,
		Fire:  in.Fire,
		Start: in.Start && !e.prevStart,
		Pause: in.Pause && !e.prevPause,
	}
	e.prevStart = in.Start
	e.prevPause = in.Pause
	return out
}
