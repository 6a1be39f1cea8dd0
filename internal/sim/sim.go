// Package sim implements the real-time simulation core of the shooter: the
// fixed-role update pipeline that advances entity state, resolves collisions,
// spawns content and manages time-bounded effects. It is driven entirely by
// timestamps and input passed into Step, owns all entity collections, and
// reports state to the presentation layer through read-only snapshots.
package sim

import (
	"math/rand"
	"time"

	"github.com/mzeman/novastrike/internal/geom"
)

// Phase is the coarse game state gating the update pipeline.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// Input is the set of logical actions sampled once per tick. Movement and
// fire are level-triggered (held keys); Start and Pause are edge signals the
// frontend raises once per key press.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Start                 bool
	Pause                 bool
}

// Sound identifies a fire-and-forget audio cue. Cues never affect simulation
// state and are dropped when no sink is attached.
type Sound int

const (
	SoundShoot Sound = iota
	SoundHit
	SoundExplosion
	SoundPowerUp
)

// SoundSink receives audio cues.
type SoundSink interface {
	Play(Sound)
}

// HighScoreStore persists the single best-score scalar. A nil store or a
// failing store degrades silently to a zero high score.
type HighScoreStore interface {
	Load() (int, error)
	Save(int) error
}

// Options configure a Simulation. All fields are optional.
type Options struct {
	Scores HighScoreStore
	Sounds SoundSink
	Rand   *rand.Rand // defaults to a time-seeded source
}

// Simulation owns the full game state for one run. It is not safe for
// concurrent use; all mutation happens inside Step on the caller's tick.
type Simulation struct {
	phase Phase

	player    Player
	enemies   []Enemy
	bullets   []Bullet
	powerUps  []PowerUp
	particles []Particle
	stats     Stats

	enemyInterval    time.Duration
	lastEnemySpawn   time.Time
	lastPowerUpSpawn time.Time

	rng    *rand.Rand
	scores HighScoreStore
	sounds SoundSink
}

// New creates a simulation in the menu phase. The high score is loaded from
// the store at startup; a missing or failing store yields zero.
func New(opts Options) *Simulation {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Simulation{
		phase:  PhaseMenu,
		rng:    rng,
		scores: opts.Scores,
		sounds: opts.Sounds,
	}
	if s.scores != nil {
		if best, err := s.scores.Load(); err == nil {
			s.stats.HighScore = best
		}
	}
	return s
}

// Phase returns the current game phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Step advances the simulation by one tick. now is the tick timestamp and
// delta the elapsed time since the previous tick; both are injected so tests
// can run on synthetic time. Outside the playing phase the pipeline is
// skipped and only phase signals are handled.
func (s *Simulation) Step(now time.Time, delta time.Duration, in Input) {
	switch s.phase {
	case PhaseMenu:
		if in.Start {
			s.reset(now)
			s.phase = PhasePlaying
		}

	case PhasePaused:
		// Time is not compensated across a pause: cooldowns and effect
		// windows keep running on the injected clock.
		if in.Pause {
			s.phase = PhasePlaying
		}

	case PhaseGameOver:
		if in.Start {
			s.reset(now)
			s.phase = PhasePlaying
		}

	case PhasePlaying:
		if in.Pause {
			s.phase = PhasePaused
			return
		}

		s.updatePlayer(now, in)
		s.updateEnemies(now)
		s.updateBullets()
		s.updatePowerUps()
		s.updateParticles(delta)
		s.resolveCollisions(now)
		s.spawn(now)
		s.advanceWave()
		s.compact()

		if s.player.Health <= 0 {
			s.finishRun()
			s.phase = PhaseGameOver
		}
	}
}

// reset restores all run state: player at bottom-center with full health and
// no effects, empty collections, zeroed score and kills, wave 1, fresh spawn
// timers at the default interval. The high score survives resets.
func (s *Simulation) reset(now time.Time) {
	s.player = Player{
		Box: Box{
			Rect: geom.Rect{
				X: FieldWidth/2 - playerWidth/2,
				Y: FieldHeight - playerHeight - 20,
				W: playerWidth,
				H: playerHeight,
			},
			Active: true,
		},
		Health:    PlayerMaxHealth,
		MaxHealth: PlayerMaxHealth,
		Effects:   make(map[PowerUpKind]Effect),
		cooldown:  baseShootCooldown,
	}

	s.enemies = s.enemies[:0]
	s.bullets = s.bullets[:0]
	s.powerUps = s.powerUps[:0]
	s.particles = s.particles[:0]

	high := s.stats.HighScore
	s.stats = Stats{Wave: 1, HighScore: high}

	s.enemyInterval = initialEnemyInterval
	s.lastEnemySpawn = now
	s.lastPowerUpSpawn = now
}

// finishRun persists the high score when the ending run beat it. Store
// failures are dropped; persistence is optional by design.
func (s *Simulation) finishRun() {
	if s.stats.Score <= s.stats.HighScore {
		return
	}
	s.stats.HighScore = s.stats.Score
	if s.scores != nil {
		_ = s.scores.Save(s.stats.Score)
	}
}

// compact prunes inactive entities from every collection, reusing the
// backing arrays. Runs once at the end of each playing tick so an entity
// deactivated this frame never appears in a later one.
func (s *Simulation) compact() {
	enemies := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Active {
			enemies = append(enemies, e)
		}
	}
	s.enemies = enemies

	bullets := s.bullets[:0]
	for _, b := range s.bullets {
		if b.Active {
			bullets = append(bullets, b)
		}
	}
	s.bullets = bullets

	powerUps := s.powerUps[:0]
	for _, p := range s.powerUps {
		if p.Active {
			powerUps = append(powerUps, p)
		}
	}
	s.powerUps = powerUps

	particles := s.particles[:0]
	for _, p := range s.particles {
		if p.Active {
			particles = append(particles, p)
		}
	}
	s.particles = particles
}

func (s *Simulation) play(snd Sound) {
	if s.sounds != nil {
		s.sounds.Play(snd)
	}
}

// Snapshot is a read-only copy of the visible simulation state, taken once
// per tick for the presentation layer. Mutating it does not reach the core.
type Snapshot struct {
	Phase     Phase
	Player    Player
	Enemies   []Enemy
	Bullets   []Bullet
	PowerUps  []PowerUp
	Particles []Particle
	Stats     Stats
}

// Snapshot captures the current state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	player := s.player
	if s.player.Effects != nil {
		player.Effects = make(map[PowerUpKind]Effect, len(s.player.Effects))
		for k, e := range s.player.Effects {
			player.Effects[k] = e
		}
	}

	return Snapshot{
		Phase:     s.phase,
		Player:    player,
		Enemies:   append([]Enemy(nil), s.enemies...),
		Bullets:   append([]Bullet(nil), s.bullets...),
		PowerUps:  append([]PowerUp(nil), s.powerUps...),
		Particles: append([]Particle(nil), s.particles...),
		Stats:     s.stats,
	}
}
