package draw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRectProducesAtLeastOnePixel(t *testing.T) {
	// 80x24 terminal over an 800x600 logical field: a 4x12 bullet is far
	// smaller than one terminal cell but must still show up.
	c := NewScaledCanvas(80, 24, 800, 600)
	c.FillRect(400, 300, 4, 12, White)

	count := 0
	for _, px := range c.pixels {
		if px != None {
			count++
		}
	}
	assert.Greater(t, count, 0)
}

func TestClearDropsAllPixels(t *testing.T) {
	c := NewScaledCanvas(40, 12, 800, 600)
	c.FillRect(0, 0, 800, 600, Red)
	c.Clear()

	for _, px := range c.pixels {
		require.Equal(t, None, px)
	}
}

func TestSetFloatIgnoresOutOfRange(t *testing.T) {
	c := NewScaledCanvas(40, 12, 800, 600)
	c.SetFloat(-50, 300, White)
	c.SetFloat(400, -50, White)
	c.SetFloat(10000, 300, White)

	for _, px := range c.pixels {
		require.Equal(t, None, px)
	}
}

func TestRenderUsesHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)

	// Top sub-pixel only: upper half block in the cell's foreground.
	c.setPixel(0, 0, White)
	// Both sub-pixels: upper half block with background color.
	c.setPixel(1, 0, Red)
	c.setPixel(1, 1, Red)
	// Bottom sub-pixel only: lower half block.
	c.setPixel(2, 1, Yellow)

	var out strings.Builder
	c.Render(&out)
	s := out.String()

	assert.Contains(t, s, "▀")
	assert.Contains(t, s, "▄")
	// Background SGR only appears for the fully filled cell.
	assert.Contains(t, s, "48;5;")
	// The render always ends with a reset.
	assert.True(t, strings.HasSuffix(s, "\033[0m"))
}

func TestRenderSkipsEmptyCells(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)

	var out strings.Builder
	c.Render(&out)

	// Nothing drawn: only the trailing reset goes out.
	assert.Equal(t, "\033[0m", out.String())
}

func TestResizeKeepsLogicalMapping(t *testing.T) {
	c := NewScaledCanvas(80, 24, 800, 600)
	c.Resize(160, 50)

	assert.Equal(t, 160, c.TerminalWidth())
	assert.Equal(t, 50, c.TerminalHeight())
	assert.Len(t, c.pixels, 160*100)

	// Full-field fill still covers the whole buffer after resizing.
	c.FillRect(0, 0, 800, 600, Blue)
	for _, px := range c.pixels {
		require.Equal(t, Blue, px)
	}
}

func TestLogicalToTerminalTracksScaling(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)

	col, row := c.LogicalToTerminal(0, 0)
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)

	col, row = c.LogicalToTerminal(800, 600)
	assert.Equal(t, 81, col)
	assert.Equal(t, 31, row)

	col, row = c.LogicalToTerminal(400, 300)
	assert.Equal(t, 41, col)
	assert.Equal(t, 16, row)
}

func TestChunkWriterAppliesOffset(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out, 10, 5)
	cw.WriteAt(1, 1, "X")
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[6;11HX", out.String())
}

func TestChunkWriterFlushResets(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out, 0, 0)
	cw.WriteString("hello")
	require.NoError(t, cw.Flush())
	require.NoError(t, cw.Flush())

	assert.Equal(t, "hello", out.String())
}

func TestRenderBorderOnlyWhenOffset(t *testing.T) {
	c := NewScaledCanvas(10, 5, 800, 600)

	var out strings.Builder
	c.RenderBorder(&out)
	assert.Empty(t, out.String())

	c.SetOffset(2, 1)
	c.RenderBorder(&out)
	s := out.String()
	assert.Contains(t, s, "┌")
	assert.Contains(t, s, "┘")
	assert.Contains(t, s, "│")
}
