package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "2222", s.SSHPort)
	assert.Equal(t, "novastrike_scores.db", s.ScoresPath)
	assert.True(t, s.AudioEnabled)
	assert.Equal(t, 0.5, s.AudioVolume)
	assert.Equal(t, 60, s.TargetFPS)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfg := []byte("ssh:\n  port: \"2022\"\naudio:\n  enabled: false\n  volume: 80\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "novastrike.yaml"), cfg, 0o644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "2022", s.SSHPort)
	assert.False(t, s.AudioEnabled)
	assert.Equal(t, 0.8, s.AudioVolume)
	// Untouched keys keep defaults.
	assert.Equal(t, 60, s.TargetFPS)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NOVASTRIKE_GAME_FPS", "30")
	t.Setenv("NOVASTRIKE_AUDIO_VOLUME", "120")

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 30, s.TargetFPS)
	// Volume is clamped to [0, 1].
	assert.Equal(t, 1.0, s.AudioVolume)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "novastrike.yaml"), []byte("{::"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
