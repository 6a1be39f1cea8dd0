package sim

import (
	"time"

	"github.com/mzeman/novastrike/internal/geom"
)

// updatePlayer applies held movement keys, expires elapsed power-up effects
// and fires when the cooldown allows.
func (s *Simulation) updatePlayer(now time.Time, in Input) {
	p := &s.player

	// Diagonal movement is intentionally not normalized: both axes move at
	// full speed, so diagonals are faster than axial movement.
	if in.Left {
		p.X -= playerSpeed
	}
	if in.Right {
		p.X += playerSpeed
	}
	if in.Up {
		p.Y -= playerSpeed
	}
	if in.Down {
		p.Y += playerSpeed
	}

	if p.X < 0 {
		p.X = 0
	}
	if p.X > FieldWidth-p.W {
		p.X = FieldWidth - p.W
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > FieldHeight-p.H {
		p.Y = FieldHeight - p.H
	}

	for kind, e := range p.Effects {
		if !e.ActiveAt(now) {
			delete(p.Effects, kind)
		}
	}

	if in.Fire {
		s.tryShoot(now)
	}
}

// tryShoot fires the player's weapon if the effective cooldown has elapsed.
// Rapid fire cuts the cooldown to a third; multi shot widens the pattern to
// three bullets with the outer two diverging symmetrically.
func (s *Simulation) tryShoot(now time.Time) {
	p := &s.player

	cooldown := p.cooldown
	if p.HasEffect(now, PowerRapidFire) {
		cooldown /= rapidFireDivisor
	}
	if now.Sub(p.lastShot) < cooldown {
		return
	}
	p.lastShot = now

	cx := p.CenterX() - bulletWidth/2
	y := p.Y - bulletHeight

	if p.HasEffect(now, PowerMultiShot) {
		for _, vx := range [3]float64{-multiShotSpread, 0, multiShotSpread} {
			s.addPlayerBullet(cx, y, vx)
		}
	} else {
		s.addPlayerBullet(cx, y, 0)
	}

	s.play(SoundShoot)
}

func (s *Simulation) addPlayerBullet(x, y, vx float64) {
	s.bullets = append(s.bullets, Bullet{
		Box: Box{
			Rect:   geom.Rect{X: x, Y: y, W: bulletWidth, H: bulletHeight},
			Vel:    geom.Vec{X: vx, Y: -playerBulletSpeed},
			Active: true,
		},
		Damage:     playerBulletDamage,
		FromPlayer: true,
	})
}
