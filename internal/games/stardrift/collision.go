package stardrift

// Collisions decides player contacts using each entity's inset collision box.
type Collisions struct {
	visibleTop float64
}

// NewCollisions creates the collision rules. Enemies whose top edge is
// above visibleTop cannot hurt the player.
func NewCollisions(visibleTop float64) Collisions {
	return Collisions{visibleTop: visibleTop}
}

// EnemyHits reports whether the enemy damages the player this frame.
// No damage is dealt while the player is invincible.
func (c Collisions) EnemyHits(p *Player, e *Enemy, invincible float64) bool {
	if invincible > 0 || e.Top() < c.visibleTop {
		return false
	}
	return e.CollisionBox().Intersects(p.CollisionBox())
}

// Collects reports whether the player picks up the item this frame.
func (c Collisions) Collects(p *Player, it *Item) bool {
	return it.CollisionBox().Intersects(p.CollisionBox())
}
