package sim

import (
	"math"
	"time"

	"github.com/mzeman/novastrike/internal/geom"
)

// Burst palettes. Hits flash white/yellow, explosions red/orange.
var (
	hitPalette       = []Tint{TintWhite, TintYellow}
	explosionPalette = []Tint{TintRed, TintOrange}
)

// resolveCollisions cross-checks the entity sets after all motion updates.
// The pass order matters for score and health consistency within a frame:
// player bullets first, then enemy bullets, body collisions, pickups.
// Deactivated entities stay in their slices until end-of-frame compaction;
// collision checks consult the active flag instead of re-filtering mid-loop.
func (s *Simulation) resolveCollisions(now time.Time) {
	s.playerBulletsVsEnemies()

	shielded := s.player.HasEffect(now, PowerShield)
	if !shielded {
		s.enemyBulletsVsPlayer()
		s.playerVsEnemies()
	}

	s.playerVsPowerUps(now)
}

// playerBulletsVsEnemies applies bullet damage to enemies. A bullet retires
// on its first hit; an enemy is retired by the death check immediately after
// the hit that drops it to zero.
func (s *Simulation) playerBulletsVsEnemies() {
	for bi := range s.bullets {
		b := &s.bullets[bi]
		if !b.Active || !b.FromPlayer {
			continue
		}
		for ei := range s.enemies {
			e := &s.enemies[ei]
			if !e.Active {
				continue
			}
			if !geom.Overlaps(b.Rect, e.Rect) {
				continue
			}

			b.Active = false
			e.Health -= b.Damage
			s.burst(b.CenterX(), b.CenterY(), hitParticleCount, hitPalette)
			s.play(SoundHit)

			if e.Health <= 0 {
				e.Active = false
				s.stats.Score += e.Points
				s.stats.Kills++
				s.burst(e.CenterX(), e.CenterY(), explosionParticleCount, explosionPalette)
				s.play(SoundExplosion)
			}
			break // bullet is spent
		}
	}
}

// enemyBulletsVsPlayer damages the player, floored at zero health. Skipped
// entirely while a shield effect is live.
func (s *Simulation) enemyBulletsVsPlayer() {
	for bi := range s.bullets {
		b := &s.bullets[bi]
		if !b.Active || b.FromPlayer {
			continue
		}
		if !geom.Overlaps(b.Rect, s.player.Rect) {
			continue
		}

		b.Active = false
		s.player.Health -= b.Damage
		if s.player.Health < 0 {
			s.player.Health = 0
		}
		s.burst(b.CenterX(), b.CenterY(), hitParticleCount, hitPalette)
		s.play(SoundHit)
	}
}

// playerVsEnemies consumes enemies that ram the player. The crash deals a
// fixed 20 damage and grants no score, unlike a bullet kill.
func (s *Simulation) playerVsEnemies() {
	for ei := range s.enemies {
		e := &s.enemies[ei]
		if !e.Active {
			continue
		}
		if !geom.Overlaps(s.player.Rect, e.Rect) {
			continue
		}

		e.Active = false
		s.player.Health -= crashDamage
		if s.player.Health < 0 {
			s.player.Health = 0
		}
		s.burst(e.CenterX(), e.CenterY(), explosionParticleCount, explosionPalette)
		s.play(SoundExplosion)
	}
}

// playerVsPowerUps collects pickups. Collecting a kind the player already
// holds replaces the effect with a fresh activation timestamp and the
// pickup's duration; timers never stack.
func (s *Simulation) playerVsPowerUps(now time.Time) {
	for pi := range s.powerUps {
		p := &s.powerUps[pi]
		if !p.Active {
			continue
		}
		if !geom.Overlaps(s.player.Rect, p.Rect) {
			continue
		}

		p.Active = false
		s.player.Effects[p.Kind] = Effect{
			Kind:        p.Kind,
			Duration:    p.Duration,
			ActivatedAt: now,
		}
		s.play(SoundPowerUp)
	}
}

// burst radiates count particles from (x, y) at evenly spaced angles with
// randomized speed and lifetime, tinted from the given palette.
func (s *Simulation) burst(x, y float64, count int, palette []Tint) {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := particleMinSpeed + s.rng.Float64()*(particleMaxSpeed-particleMinSpeed)
		life := particleMinLife + time.Duration(s.rng.Float64()*float64(particleMaxLife-particleMinLife))

		s.particles = append(s.particles, Particle{
			Box: Box{
				Rect: geom.Rect{X: x, Y: y, W: particleSize, H: particleSize},
				Vel: geom.Vec{
					X: math.Cos(angle) * speed,
					Y: math.Sin(angle) * speed,
				},
				Active: true,
			},
			Life:    life,
			MaxLife: life,
			Tint:    palette[s.rng.Intn(len(palette))],
		})
	}
}
