package sim

import (
	"time"

	"github.com/mzeman/novastrike/internal/geom"
)

// Box is the shared shape of every game entity: a rectangle, a velocity and
// an active flag. Inactive entities are pruned from their collection at the
// end of the frame that deactivated them.
type Box struct {
	geom.Rect
	Vel    geom.Vec
	Active bool
}

// Player is the single player-controlled ship. It is never removed from the
// simulation; a run ends when its health reaches zero.
type Player struct {
	Box
	Health    int
	MaxHealth int

	// Effects holds the currently applied power-up effects, at most one per
	// kind. Collecting a duplicate replaces the entry rather than stacking.
	Effects map[PowerUpKind]Effect

	lastShot time.Time
	cooldown time.Duration
}

// HasEffect reports whether an effect of the given kind is live at now.
func (p *Player) HasEffect(now time.Time, kind PowerUpKind) bool {
	e, ok := p.Effects[kind]
	return ok && e.ActiveAt(now)
}

// EnemyKind tags an enemy variant with fixed stats.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyTank
	EnemyBoss

	enemyKindCount
)

// String returns the variant name for logs and HUD text.
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// enemyStats are the fixed per-variant constants.
type enemyStats struct {
	width, height float64
	speedMult     float64
	health        int
	cooldown      time.Duration
	points        int
}

var enemyTable = [enemyKindCount]enemyStats{
	EnemyBasic: {width: 40, height: 40, speedMult: 1.0, health: 1, cooldown: 2500 * time.Millisecond, points: 10},
	EnemyFast:  {width: 35, height: 35, speedMult: 2.0, health: 1, cooldown: 1500 * time.Millisecond, points: 15},
	EnemyTank:  {width: 60, height: 60, speedMult: 0.5, health: 3, cooldown: 2000 * time.Millisecond, points: 30},
	EnemyBoss:  {width: 100, height: 80, speedMult: 0.3, health: 10, cooldown: 800 * time.Millisecond, points: 100},
}

// Enemy is an AI-controlled ship descending toward the bottom edge.
type Enemy struct {
	Box
	Kind      EnemyKind
	Health    int
	MaxHealth int
	Points    int

	lastShot time.Time
	cooldown time.Duration
}

// Bullet is a projectile fired by either side. Ownership decides which
// collision rules apply.
type Bullet struct {
	Box
	Damage     int
	FromPlayer bool
}

// PowerUpKind tags a power-up variant.
type PowerUpKind int

const (
	PowerRapidFire PowerUpKind = iota
	PowerShield
	PowerMultiShot

	powerUpKindCount
)

// String returns the power-up name for HUD text.
func (k PowerUpKind) String() string {
	switch k {
	case PowerRapidFire:
		return "rapid fire"
	case PowerShield:
		return "shield"
	case PowerMultiShot:
		return "multi shot"
	default:
		return "unknown"
	}
}

// powerUpDurations are the fixed effect windows per variant.
var powerUpDurations = [powerUpKindCount]time.Duration{
	PowerRapidFire: 10000 * time.Millisecond,
	PowerShield:    8000 * time.Millisecond,
	PowerMultiShot: 15000 * time.Millisecond,
}

// PowerUp is a pickup drifting down the playfield.
type PowerUp struct {
	Box
	Kind     PowerUpKind
	Duration time.Duration
}

// Effect is a time-windowed modifier applied to the player. Expiry is
// computed from elapsed time, never ticked down.
type Effect struct {
	Kind        PowerUpKind
	Duration    time.Duration
	ActivatedAt time.Time
}

// ActiveAt reports whether the effect window still covers now.
func (e Effect) ActiveAt(now time.Time) bool {
	return now.Sub(e.ActivatedAt) < e.Duration
}

// Remaining returns the time left in the effect window, floored at zero.
func (e Effect) Remaining(now time.Time) time.Duration {
	left := e.Duration - now.Sub(e.ActivatedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Tint is the palette color a particle renders with. The simulation owns the
// palette choice so bursts look the same on every frontend.
type Tint int

const (
	TintWhite Tint = iota
	TintYellow
	TintRed
	TintOrange
)

// Particle is a short-lived burst fragment. The simulation owns its lifetime;
// the renderer only reads it for fading.
type Particle struct {
	Box
	Life    time.Duration
	MaxLife time.Duration
	Tint    Tint
}

// Stats accumulates run statistics.
type Stats struct {
	Score     int
	Wave      int
	Kills     int
	HighScore int
}
