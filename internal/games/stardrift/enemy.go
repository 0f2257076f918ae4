package stardrift

import (
	"math/rand"

	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
)

// Enemy falls from above the screen at a speed fixed when it spawns.
type Enemy struct {
	body
}

// NewEnemy creates an enemy above the visible area.
// spawnX is the centre column; nil picks one uniformly in
// [side_margin, screenW-side_margin]. speedScale multiplies the rolled speed.
func NewEnemy(rng *rand.Rand, cfg config.EnemyConfig, screenW int, spawnX *float64, speedScale float64) *Enemy {
	var x float64
	if spawnX != nil {
		x = *spawnX
	} else {
		x = float64(randInt(rng, cfg.SideMargin, max(cfg.SideMargin, screenW-cfg.SideMargin)))
	}

	speed := float64(randInt(rng, cfg.MinSpeed, cfg.MaxSpeed)) * speedScale

	return &Enemy{body{
		box:   core.BoxAt(x, cfg.SpawnY, cfg.Size, cfg.Size),
		speed: speed,
		inset: cfg.Inset,
	}}
}

// Update moves the enemy straight down.
func (e *Enemy) Update(dt float64) {
	e.fall(dt)
}

// Sprite returns the image to draw for the enemy.
func (e *Enemy) Sprite() core.Sprite {
	return core.Sprite{ID: core.SpriteEnemy, W: e.box.W, H: e.box.H}
}
