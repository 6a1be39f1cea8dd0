package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerMovesPerHeldDirection(t *testing.T) {
	s := newTestSim()
	startRun(t, s, t0)
	x, y := s.player.X, s.player.Y

	s.Step(t0.Add(frame), frame, Input{Left: true})
	assert.Equal(t, x-playerSpeed, s.player.X)

	s.Step(t0.Add(2*frame), frame, Input{Right: true})
	assert.Equal(t, x, s.player.X)

	s.Step(t0.Add(3*frame), frame, Input{Up: true})
	assert.Equal(t, y-playerSpeed, s.player.Y)
}

func TestDiagonalMovementIsNotNormalized(t *testing.T) {
	s := newTestSim()
	startRun(t, s, t0)
	x, y := s.player.X, s.player.Y

	// Both axes get the full per-axis speed on a diagonal.
	s.Step(t0.Add(frame), frame, Input{Left: true, Up: true})
	assert.Equal(t, x-playerSpeed, s.player.X)
	assert.Equal(t, y-playerSpeed, s.player.Y)
}

func TestPlayerClampedToField(t *testing.T) {
	s := newTestSim()
	startRun(t, s, t0)

	s.player.X, s.player.Y = 0, 0
	s.Step(t0.Add(frame), frame, Input{Left: true, Up: true})
	assert.Equal(t, 0.0, s.player.X)
	assert.Equal(t, 0.0, s.player.Y)

	s.player.X = FieldWidth - playerWidth
	s.player.Y = FieldHeight - playerHeight
	s.Step(t0.Add(2*frame), frame, Input{Right: true, Down: true})
	assert.Equal(t, float64(FieldWidth-playerWidth), s.player.X)
	assert.Equal(t, float64(FieldHeight-playerHeight), s.player.Y)

	// Opposing keys cancel out.
	s.Step(t0.Add(3*frame), frame, Input{Left: true, Right: true})
	assert.Equal(t, float64(FieldWidth-playerWidth), s.player.X)
}

func TestFireSpawnsOneBulletAboveShip(t *testing.T) {
	s := newTestSim()
	startRun(t, s, t0)

	s.Step(t0.Add(frame), frame, Input{Fire: true})
	require.Len(t, s.bullets, 1)

	// The bullet spawns just above the ship and already moved once this
	// tick: motion updates run after the player update within a frame.
	b := s.bullets[0]
	assert.True(t, b.FromPlayer)
	assert.Equal(t, playerBulletDamage, b.Damage)
	assert.Equal(t, -float64(playerBulletSpeed), b.Vel.Y)
	assert.Equal(t, 0.0, b.Vel.X)
	assert.Equal(t, s.player.CenterX()-bulletWidth/2, b.X)
	assert.Equal(t, s.player.Y-bulletHeight-playerBulletSpeed, b.Y)
}

func TestShootCooldownGatesFiring(t *testing.T) {
	s := newTestSim()
	startRun(t, s, t0)

	s.Step(t0.Add(frame), frame, Input{Fire: true})
	require.Len(t, s.bullets, 1)

	// Holding fire inside the cooldown window does nothing.
	s.Step(t0.Add(100*time.Millisecond), frame, Input{Fire: true})
	assert.Len(t, s.bullets, 1)

	s.Step(t0.Add(frame+baseShootCooldown), frame, Input{Fire: true})
	assert.Len(t, s.bullets, 2)
}

func TestRapidFireShortensCooldown(t *testing.T) {
	s := newTestSim()
	startRun(t, s, t0)
	s.player.Effects[PowerRapidFire] = Effect{
		Kind:        PowerRapidFire,
		Duration:    powerUpDurations[PowerRapidFire],
		ActivatedAt: t0,
	}

	s.Step(t0.Add(frame), frame, Input{Fire: true})
	require.Len(t, s.bullets, 1)

	// 100ms is inside the base 250ms window but past 250/3.
	s.Step(t0.Add(frame+100*time.Millisecond), frame, Input{Fire: true})
	assert.Len(t, s.bullets, 2)
}

func TestMultiShotFiresSymmetricFan(t *testing.T) {
	s := newTestSim()
	startRun(t, s, t0)
	s.player.Effects[PowerMultiShot] = Effect{
		Kind:        PowerMultiShot,
		Duration:    powerUpDurations[PowerMultiShot],
		ActivatedAt: t0,
	}

	s.Step(t0.Add(frame), frame, Input{Fire: true})
	require.Len(t, s.bullets, 3)

	var spreads []float64
	for _, b := range s.bullets {
		assert.True(t, b.FromPlayer)
		assert.Equal(t, -float64(playerBulletSpeed), b.Vel.Y)
		spreads = append(spreads, b.Vel.X)
	}
	assert.ElementsMatch(t, []float64{-multiShotSpread, 0, multiShotSpread}, spreads)
}

func TestStackedEffectsCombine(t *testing.T) {
	s := newTestSim()
	startRun(t, s, t0)
	s.player.Effects[PowerMultiShot] = Effect{Kind: PowerMultiShot, Duration: time.Minute, ActivatedAt: t0}
	s.player.Effects[PowerRapidFire] = Effect{Kind: PowerRapidFire, Duration: time.Minute, ActivatedAt: t0}

	s.Step(t0.Add(frame), frame, Input{Fire: true})
	require.Len(t, s.bullets, 3)

	// The shortened cooldown applies to the whole fan.
	s.Step(t0.Add(frame+100*time.Millisecond), frame, Input{Fire: true})
	assert.Len(t, s.bullets, 6)
}

func TestExpiredEffectsAreDropped(t *testing.T) {
	s := newTestSim()
	startRun(t, s, t0)
	s.player.Effects[PowerRapidFire] = Effect{
		Kind:        PowerRapidFire,
		Duration:    100 * time.Millisecond,
		ActivatedAt: t0,
	}

	// Still live one tick in.
	s.Step(t0.Add(frame), frame, Input{})
	assert.Contains(t, s.player.Effects, PowerRapidFire)

	// Expiry is checked against activation time, not remaining ticks.
	s.Step(t0.Add(100*time.Millisecond), frame, Input{})
	assert.NotContains(t, s.player.Effects, PowerRapidFire)
}

func TestEffectBoundaryIsExclusive(t *testing.T) {
	eff := Effect{Kind: PowerShield, Duration: time.Second, ActivatedAt: t0}

	assert.True(t, eff.ActiveAt(t0.Add(time.Second-time.Nanosecond)))
	assert.False(t, eff.ActiveAt(t0.Add(time.Second)))
	assert.False(t, eff.ActiveAt(t0.Add(2*time.Second)))
}
