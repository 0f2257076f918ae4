package stardrift

import (
	"math/rand"

	"github.com/vovakirdan/stardrift/internal/core"
)

// Entity is anything with a bounding box that takes part in collisions.
type Entity interface {
	// Bounds returns the full visual box.
	Bounds() core.Box
	// CollisionBox returns the box used for overlap checks, inset from Bounds.
	CollisionBox() core.Box
}

// Faller is an entity that drifts straight down every frame.
type Faller interface {
	Entity
	Update(dt float64)
}

// body is the shape shared by the player, enemies and items.
type body struct {
	box   core.Box
	speed float64 // Units per second
	inset float64 // Collision box inset per side
}

// Bounds returns the full visual box.
func (b *body) Bounds() core.Box {
	return b.box
}

// CollisionBox returns the bounding box shrunk by the inset on every side.
func (b *body) CollisionBox() core.Box {
	return b.box.Inset(b.inset)
}

// Speed returns the movement speed in units per second.
func (b *body) Speed() float64 {
	return b.speed
}

// Top returns the y-coordinate of the top edge.
func (b *body) Top() float64 {
	return b.box.Y
}

func (b *body) fall(dt float64) {
	b.box.Y += b.speed * dt
}

// randInt returns a uniform integer in [lo, hi]. hi below lo yields lo.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
