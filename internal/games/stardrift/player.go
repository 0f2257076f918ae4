package stardrift

import (
	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
)

// Player is the ship steered by the user.
type Player struct {
	body
}

// NewPlayer creates a player centred on (cx, cy).
func NewPlayer(cfg config.PlayerConfig, cx, cy float64) *Player {
	return &Player{body{
		box:   core.BoxAt(cx, cy, cfg.Size, cfg.Size),
		speed: cfg.Speed,
		inset: cfg.Inset,
	}}
}

// Move translates the player by dir*speed*dt and clamps it inside the bounds.
// dir components are -1, 0 or 1 per axis, so diagonal movement is faster
// than straight movement.
func (p *Player) Move(dir core.Vec2, dt, boundsW, boundsH float64) {
	p.box = p.box.
		Translate(dir.X*p.speed*dt, dir.Y*p.speed*dt).
		ClampInside(boundsW, boundsH)
}

// MoveTo recentres the player on (cx, cy).
func (p *Player) MoveTo(cx, cy float64) {
	p.box = core.BoxAt(cx, cy, p.box.W, p.box.H)
}

// Sprite returns the image to draw for the player.
func (p *Player) Sprite() core.Sprite {
	return core.Sprite{ID: core.SpritePlayer, W: p.box.W, H: p.box.H}
}
