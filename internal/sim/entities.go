package sim

import (
	"time"

	"github.com/mzeman/novastrike/internal/geom"
)

// updateEnemies advances every enemy by its fixed velocity, deactivates those
// fully past the bottom edge and lets the rest fire downward on cooldown.
func (s *Simulation) updateEnemies(now time.Time) {
	for i := range s.enemies {
		e := &s.enemies[i]
		if !e.Active {
			continue
		}

		e.X += e.Vel.X
		e.Y += e.Vel.Y

		if e.Y > FieldHeight {
			e.Active = false
			continue
		}

		if now.Sub(e.lastShot) >= e.cooldown {
			e.lastShot = now
			s.bullets = append(s.bullets, Bullet{
				Box: Box{
					Rect: geom.Rect{
						X: e.CenterX() - bulletWidth/2,
						Y: e.Y + e.H,
						W: bulletWidth,
						H: bulletHeight,
					},
					Vel:    geom.Vec{Y: enemyBulletSpeed},
					Active: true,
				},
				Damage: enemyBulletDamage,
			})
		}
	}
}

// updateBullets advances bullets and deactivates any that left the playfield
// through any of the four edges.
func (s *Simulation) updateBullets() {
	for i := range s.bullets {
		b := &s.bullets[i]
		if !b.Active {
			continue
		}

		b.X += b.Vel.X
		b.Y += b.Vel.Y

		if b.X+b.W < 0 || b.X > FieldWidth || b.Y+b.H < 0 || b.Y > FieldHeight {
			b.Active = false
		}
	}
}

// updatePowerUps drifts pickups down at a fixed slow speed; they disappear
// past the bottom edge.
func (s *Simulation) updatePowerUps() {
	for i := range s.powerUps {
		p := &s.powerUps[i]
		if !p.Active {
			continue
		}

		p.Y += powerUpFallSpeed
		if p.Y > FieldHeight {
			p.Active = false
		}
	}
}

// updateParticles moves particles and burns down their remaining life by the
// elapsed frame time.
func (s *Simulation) updateParticles(delta time.Duration) {
	for i := range s.particles {
		p := &s.particles[i]
		if !p.Active {
			continue
		}

		p.X += p.Vel.X
		p.Y += p.Vel.Y

		p.Life -= delta
		if p.Life <= 0 {
			p.Active = false
		}
	}
}
