package sim

import "time"

// Playfield dimensions in logical units. The renderer scales these to the
// terminal; the simulation never sees terminal cells.
const (
	FieldWidth  = 800.0
	FieldHeight = 600.0
)

// Player tuning.
const (
	PlayerMaxHealth = 100

	playerWidth  = 50.0
	playerHeight = 40.0
	playerSpeed  = 5.0 // logical units per tick, per axis

	baseShootCooldown = 250 * time.Millisecond
	rapidFireDivisor  = 3

	playerBulletSpeed  = 7.0
	playerBulletDamage = 1
	multiShotSpread    = 1.5 // horizontal velocity of the outer bullets
)

// Enemy tuning.
const (
	enemyBaseSpeed    = 2.0
	enemyBulletSpeed  = 5.0
	enemyBulletDamage = 10
	crashDamage       = 20 // body collision with the player

	bossMinWave = 5
)

// Bullet dimensions (shared by both sides).
const (
	bulletWidth  = 4.0
	bulletHeight = 12.0
)

// Power-up pickups.
const (
	powerUpSize      = 30.0
	powerUpFallSpeed = 2.0
)

// Spawn timing.
const (
	initialEnemyInterval = 2000 * time.Millisecond
	minEnemyInterval     = 500 * time.Millisecond
	enemyIntervalStep    = 100 * time.Millisecond

	powerUpInterval = 10000 * time.Millisecond
	powerUpChance   = 0.1
)

// Wave progression.
const killsPerWave = 10

// Particle bursts.
const (
	hitParticleCount       = 8
	explosionParticleCount = 15

	particleSize     = 3.0
	particleMinSpeed = 1.0
	particleMaxSpeed = 3.0
	particleMinLife  = 300 * time.Millisecond
	particleMaxLife  = 800 * time.Millisecond
)
