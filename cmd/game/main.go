package main

import (
	"bufio"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/mzeman/novastrike/internal/audio"
	"github.com/mzeman/novastrike/internal/config"
	"github.com/mzeman/novastrike/internal/loop"
	"github.com/mzeman/novastrike/internal/score"
	"github.com/mzeman/novastrike/internal/sim"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	// Persistence is optional: without a store the game runs with a zero
	// high score.
	var scores sim.HighScoreStore
	if st, err := score.Open(cfg.ScoresPath); err != nil {
		logger.Warn("high score store unavailable", "path", cfg.ScoresPath, "err", err)
	} else {
		scores = st
		defer st.Close()
	}

	engine := audio.NewEngine(audio.Config{
		Enabled:    cfg.AudioEnabled,
		Volume:     cfg.AudioVolume,
		SampleRate: 44100,
	})
	_ = engine.Start() // falls back to silent mode on its own
	defer engine.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	runErr := loop.Run(reader, os.Stdout, loop.Options{
		Scores:    scores,
		Sounds:    engine,
		TargetFPS: cfg.TargetFPS,
	})

	_ = term.Restore(fd, oldState)
	if runErr != nil {
		logger.Fatal("game error", "err", runErr)
	}
}
