package sim

import (
	"time"

	"github.com/mzeman/novastrike/internal/geom"
)

// spawn runs the two independent spawn timers against the tick timestamp.
func (s *Simulation) spawn(now time.Time) {
	if now.Sub(s.lastEnemySpawn) > s.enemyInterval {
		s.spawnEnemy(now)
		s.lastEnemySpawn = now
	}

	if now.Sub(s.lastPowerUpSpawn) > powerUpInterval {
		// The timer restarts even when the roll fails, so the effective
		// spawn interval is geometric with success probability 0.1 per
		// 10-second window. Observed contract; do not "fix".
		if s.rng.Float64() < powerUpChance {
			s.spawnPowerUp()
		}
		s.lastPowerUpSpawn = now
	}
}

// spawnEnemy places a uniformly random eligible variant at a random x just
// above the top edge. The boss variant only enters the pool from wave 5.
func (s *Simulation) spawnEnemy(now time.Time) {
	eligible := enemyKindCount - 1
	if s.stats.Wave >= bossMinWave {
		eligible = enemyKindCount
	}
	kind := EnemyKind(s.rng.Intn(int(eligible)))
	st := enemyTable[kind]

	s.enemies = append(s.enemies, Enemy{
		Box: Box{
			Rect: geom.Rect{
				X: s.rng.Float64() * (FieldWidth - st.width),
				Y: -st.height,
				W: st.width,
				H: st.height,
			},
			Vel:    geom.Vec{Y: enemyBaseSpeed * st.speedMult},
			Active: true,
		},
		Kind:      kind,
		Health:    st.health,
		MaxHealth: st.health,
		Points:    st.points,
		lastShot:  now,
		cooldown:  st.cooldown,
	})
}

// spawnPowerUp drops a uniformly random pickup with its variant-fixed effect
// duration.
func (s *Simulation) spawnPowerUp() {
	kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))

	s.powerUps = append(s.powerUps, PowerUp{
		Box: Box{
			Rect: geom.Rect{
				X: s.rng.Float64() * (FieldWidth - powerUpSize),
				Y: -powerUpSize,
				W: powerUpSize,
				H: powerUpSize,
			},
			Active: true,
		},
		Kind:     kind,
		Duration: powerUpDurations[kind],
	})
}
