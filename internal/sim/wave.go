package sim

// advanceWave escalates difficulty once the cumulative kill count reaches the
// current threshold of wave x 10. Each wave-up tightens the enemy spawn
// interval by 100ms down to the 500ms floor; enemy stats themselves never
// change with the wave.
func (s *Simulation) advanceWave() {
	if s.stats.Kills < s.stats.Wave*killsPerWave {
		return
	}

	s.stats.Wave++
	s.enemyInterval -= enemyIntervalStep
	if s.enemyInterval < minEnemyInterval {
		s.enemyInterval = minEnemyInterval
	}
}
