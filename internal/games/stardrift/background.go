package stardrift

import "github.com/vovakirdan/stardrift/internal/core"

// Background is a vertically scrolling image drawn twice so the seam
// between the two copies is never visible.
type Background struct {
	offset float64
	speed  float64
	width  float64
	height float64
}

// NewBackground creates a background covering a width x height playfield.
func NewBackground(speed, width, height float64) *Background {
	return &Background{speed: speed, width: width, height: height}
}

// Update advances the scroll offset and wraps it to zero at the screen height.
func (b *Background) Update(dt float64) {
	b.offset += b.speed * dt
	if b.offset >= b.height {
		b.offset = 0
	}
}

// Offset returns the current scroll offset in [0, height).
func (b *Background) Offset() float64 {
	return b.offset
}

// Spans returns the y-coordinates of the two copies' top edges.
// The first copy sits at -offset and the second directly below it,
// together covering [0, height] at any offset.
func (b *Background) Spans() (first, second float64) {
	return -b.offset, b.height - b.offset
}

// Reset puts the scroll offset back to zero.
func (b *Background) Reset() {
	b.offset = 0
}

// Draw blits both copies.
func (b *Background) Draw(r core.Renderer) {
	sprite := core.Sprite{ID: core.SpriteBackground, W: b.width, H: b.height}
	first, second := b.Spans()
	r.DrawImage(sprite, core.Vec2{X: 0, Y: first})
	r.DrawImage(sprite, core.Vec2{X: 0, Y: second})
}
