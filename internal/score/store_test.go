package score

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadEmpty(t *testing.T) {
	s := newTestStore(t)

	best, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(1250))
	best, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1250, best)
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(100))
	require.NoError(t, s.Save(400))

	best, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 400, best)
}
