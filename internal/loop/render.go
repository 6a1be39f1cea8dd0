package loop

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mzeman/novastrike/internal/draw"
	"github.com/mzeman/novastrike/internal/sim"
)

// Entity colors.
var enemyColors = map[sim.EnemyKind]draw.Color{
	sim.EnemyBasic: draw.Green,
	sim.EnemyFast:  draw.Yellow,
	sim.EnemyTank:  draw.Blue,
	sim.EnemyBoss:  draw.Magenta,
}

var powerUpColors = map[sim.PowerUpKind]draw.Color{
	sim.PowerRapidFire: draw.Yellow,
	sim.PowerShield:    draw.Blue,
	sim.PowerMultiShot: draw.Magenta,
}

var powerUpGlyphs = map[sim.PowerUpKind]string{
	sim.PowerRapidFire: "R",
	sim.PowerShield:    "S",
	sim.PowerMultiShot: "M",
}

var tintColors = map[sim.Tint]draw.Color{
	sim.TintWhite:  draw.White,
	sim.TintYellow: draw.Yellow,
	sim.TintRed:    draw.Red,
	sim.TintOrange: draw.Orange,
}

// renderFrame draws one snapshot and flushes it to the terminal.
func renderFrame(cw *draw.ChunkWriter, canvas *draw.Canvas, snap sim.Snapshot, now time.Time) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	switch snap.Phase {
	case sim.PhaseMenu:
		drawMenuScreen(cw, canvas, snap)

	case sim.PhasePlaying, sim.PhasePaused:
		drawWorld(canvas, snap, now)
		canvas.Render(cw)
		canvas.RenderBorder(cw)
		drawGlyphOverlays(cw, canvas, snap)
		drawHUD(cw, canvas, snap, now)
		if snap.Phase == sim.PhasePaused {
			drawPausedOverlay(cw, canvas)
		}

	case sim.PhaseGameOver:
		// Keep the death explosion visible behind the text.
		drawWorld(canvas, snap, now)
		canvas.Render(cw)
		canvas.RenderBorder(cw)
		drawGameOverScreen(cw, canvas, snap)
	}

	return cw.Flush()
}

// drawWorld paints every visible entity onto the canvas.
func drawWorld(canvas *draw.Canvas, snap sim.Snapshot, now time.Time) {
	for _, p := range snap.PowerUps {
		canvas.FillRect(p.X, p.Y, p.W, p.H, powerUpColors[p.Kind])
	}

	for _, e := range snap.Enemies {
		canvas.FillRect(e.X, e.Y, e.W, e.H, enemyColors[e.Kind])
	}

	for _, b := range snap.Bullets {
		col := draw.White
		if !b.FromPlayer {
			col = draw.Red
		}
		canvas.FillRect(b.X, b.Y, b.W, b.H, col)
	}

	for _, p := range snap.Particles {
		// Skip faded particles (< 25% lifetime), matching the fade-out.
		if p.MaxLife > 0 && float64(p.Life)/float64(p.MaxLife) < 0.25 {
			continue
		}
		canvas.SetFloat(p.X, p.Y, tintColors[p.Tint])
	}

	player := snap.Player
	col := draw.Cyan
	if player.HasEffect(now, sim.PowerShield) {
		col = draw.White
	}
	canvas.FillRect(player.X, player.Y, player.W, player.H, col)
}

// drawGlyphOverlays letters the power-up pickups after the canvas render so
// the glyphs sit on top of the filled rects.
func drawGlyphOverlays(cw *draw.ChunkWriter, canvas *draw.Canvas, snap sim.Snapshot) {
	for _, p := range snap.PowerUps {
		col, row := canvas.LogicalToTerminal(p.CenterX(), p.CenterY())
		cw.WriteAt(col, row, powerUpGlyphs[p.Kind])
	}
}

// drawHUD draws score, wave and health over the top rows of the canvas.
func drawHUD(cw *draw.ChunkWriter, canvas *draw.Canvas, snap sim.Snapshot, now time.Time) {
	termWidth := canvas.TerminalWidth()

	left := fmt.Sprintf("Score: %d  Wave: %d  High: %d", snap.Stats.Score, snap.Stats.Wave, snap.Stats.HighScore)
	cw.WriteAt(2, 1, left)

	health := healthBar(snap.Player.Health, snap.Player.MaxHealth)
	cw.WriteAt(termWidth-len(health)-1, 1, health)

	if effects := effectLine(snap.Player, now); effects != "" {
		cw.WriteAt(2, 2, effects)
	}
}

// healthBar renders the player's health as a ten-segment bar.
func healthBar(health, maxHealth int) string {
	const segments = 10
	filled := 0
	if maxHealth > 0 {
		filled = health * segments / maxHealth
	}
	if filled < 0 {
		filled = 0
	}
	if filled > segments {
		filled = segments
	}
	return fmt.Sprintf("HP %3d [%s%s]", health,
		strings.Repeat("=", filled), strings.Repeat("-", segments-filled))
}

// effectLine lists the live power-up effects with their remaining windows,
// in a stable order.
func effectLine(player sim.Player, now time.Time) string {
	var parts []string
	for _, e := range player.Effects {
		if !e.ActiveAt(now) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %.1fs", e.Kind, e.Remaining(now).Seconds()))
	}
	sort.Strings(parts)
	return strings.Join(parts, "  ")
}

// writeCentered writes text horizontally centered on the given canvas row.
func writeCentered(cw *draw.ChunkWriter, canvas *draw.Canvas, row int, text string) {
	col := canvas.TerminalWidth()/2 - len(text)/2
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, text)
}

func drawMenuScreen(cw *draw.ChunkWriter, canvas *draw.Canvas, snap sim.Snapshot) {
	centerY := canvas.TerminalHeight() / 2

	writeCentered(cw, canvas, centerY-3, "N O V A S T R I K E")
	writeCentered(cw, canvas, centerY, "Press ENTER to start")
	writeCentered(cw, canvas, centerY+3, "WASD/Arrows to move, SPACE to shoot, P to pause, Q to quit")
	if snap.Stats.HighScore > 0 {
		writeCentered(cw, canvas, centerY+5, fmt.Sprintf("High score: %d", snap.Stats.HighScore))
	}
}

func drawPausedOverlay(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2
	writeCentered(cw, canvas, centerY, "P A U S E D")
	writeCentered(cw, canvas, centerY+2, "Press P to resume")
}

func drawGameOverScreen(cw *draw.ChunkWriter, canvas *draw.Canvas, snap sim.Snapshot) {
	centerY := canvas.TerminalHeight() / 2

	writeCentered(cw, canvas, centerY-2, "GAME OVER")
	writeCentered(cw, canvas, centerY, fmt.Sprintf("Score: %d", snap.Stats.Score))
	if snap.Stats.Score >= snap.Stats.HighScore && snap.Stats.Score > 0 {
		writeCentered(cw, canvas, centerY+1, "New record!")
	} else {
		writeCentered(cw, canvas, centerY+1, fmt.Sprintf("High score: %d", snap.Stats.HighScore))
	}
	writeCentered(cw, canvas, centerY+3, "Press ENTER to restart")
}
