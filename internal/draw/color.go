// Package draw renders the game to a terminal through a color half-block
// canvas: every terminal row holds two vertically stacked pixels, drawn with
// the upper/lower half-block characters and 256-color SGR sequences.
package draw

// Color is a palette entry for canvas pixels. The zero value is transparent.
type Color uint8

const (
	None Color = iota
	White
	Yellow
	Red
	Orange
	Green
	Blue
	Cyan
	Magenta
	Gray

	colorCount
)

// ansi256 maps palette entries to xterm 256-color indexes.
var ansi256 = [colorCount]uint8{
	None:    0,
	White:   15,
	Yellow:  226,
	Red:     196,
	Orange:  208,
	Green:   46,
	Blue:    33,
	Cyan:    51,
	Magenta: 201,
	Gray:    245,
}
