package stardrift

import (
	"math/rand"

	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
)

// Spawner owns the enemy and item spawn accumulators.
type Spawner struct {
	cfg        config.SpawnConfig
	enemyTimer float64
	itemTimer  float64
}

// NewSpawner creates a spawner with primed accumulators.
func NewSpawner(cfg config.SpawnConfig) *Spawner {
	s := &Spawner{cfg: cfg}
	s.Reset()
	return s
}

// Reset primes both accumulators with their configured start values.
// A negative enemy start delays the first enemy.
func (s *Spawner) Reset() {
	s.enemyTimer = s.cfg.EnemyTimerStart
	s.itemTimer = s.cfg.ItemTimerStart
}

// Advance moves both accumulators forward by dt and reports which spawns
// are due. An accumulator that fires drops back to zero. The enemy one
// keeps counting without firing while enemiesAlive is at the cap.
func (s *Spawner) Advance(dt float64, enemiesAlive int) (spawnEnemy, spawnItem bool) {
	s.enemyTimer += dt
	s.itemTimer += dt

	capped := s.cfg.MaxEnemies > 0 && enemiesAlive >= s.cfg.MaxEnemies
	if s.enemyTimer > s.cfg.EnemyInterval && !capped {
		s.enemyTimer = 0
		spawnEnemy = true
	}
	if s.itemTimer > s.cfg.ItemInterval {
		s.itemTimer = 0
		spawnItem = true
	}
	return spawnEnemy, spawnItem
}

// Timers returns the current accumulator values.
func (s *Spawner) Timers() (enemy, item float64) {
	return s.enemyTimer, s.itemTimer
}

// EnemyColumn picks a centre column for a new enemy that stays out of the
// player's no-spawn zone: the player's horizontal extent widened by the
// avoid padding on each side. A candidate is tested as a player-wide
// column centred on x. After the configured attempts it gives up
// and returns one more unconstrained roll.
func EnemyColumn(rng *rand.Rand, enemy config.EnemyConfig, spawn config.SpawnConfig, screenW int, player core.Box) float64 {
	lo := enemy.SideMargin
	hi := max(enemy.SideMargin, screenW-enemy.SideMargin)
	zone := player.Inflate(2*spawn.AvoidPadding, 0)

	for range spawn.AvoidAttempts {
		x := float64(randInt(rng, lo, hi))
		if !overlapsColumn(x, player.W, zone) {
			return x
		}
	}
	return float64(randInt(rng, lo, hi))
}

// overlapsColumn reports whether a column of width w centred on x overlaps
// the zone horizontally.
func overlapsColumn(x, w float64, zone core.Box) bool {
	left := x - w/2
	right := x + w/2
	return left < zone.Right() && zone.X < right
}
