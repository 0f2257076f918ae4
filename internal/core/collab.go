package core

// SpriteID names an image the game asks a renderer to draw.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpriteEnemy
	SpriteItem
	SpriteHeart
	SpriteBackground
)

// String returns the asset base name of the sprite.
func (s SpriteID) String() string {
	switch s {
	case SpritePlayer:
		return "player"
	case SpriteEnemy:
		return "enemy"
	case SpriteItem:
		return "item"
	case SpriteHeart:
		return "heart"
	case SpriteBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Sprite is an image reference together with the size it is drawn at.
type Sprite struct {
	ID   SpriteID
	W, H float64
}

// Sound names a sound effect.
type Sound int

const (
	SoundHit Sound = iota
	SoundPick
	SoundGameOver
)

// String returns the asset base name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "sfx_hit"
	case SoundPick:
		return "sfx_pick"
	case SoundGameOver:
		return "sfx_gameover"
	default:
		return "unknown"
	}
}

// Renderer draws one frame. Positions are in world units.
type Renderer interface {
	// Clear fills the whole frame with a colour.
	Clear(c Color)
	// DrawImage draws a sprite with its top-left corner at pos.
	// Sprites the renderer has no image for are skipped.
	DrawImage(s Sprite, pos Vec2)
	// DrawText draws text with its top-left corner at pos.
	DrawText(text string, pos Vec2, c Color)
	// MeasureText returns the size of text in world units.
	MeasureText(text string) Vec2
	// FillRect fills a box with a flat colour.
	FillRect(b Box, c Color)
	// Present finishes the frame.
	Present()
}

// InputSource is polled once per frame.
type InputSource interface {
	Poll() InputFrame
}

// Clock supplies frame timing.
type Clock interface {
	// Elapsed returns the seconds since the previous call.
	Elapsed() float64
	// CapFrameRate blocks until at least 1/hz seconds passed since the previous frame.
	CapFrameRate(hz int)
}

// AudioPlayer plays sounds. Every method is a no-op when audio is unavailable.
type AudioPlayer interface {
	PlayOnce(s Sound)
	PlayMusic()
	StopMusic()
}

// PersistentStore keeps the high score across process restarts.
type PersistentStore interface {
	// LoadHighScore returns the stored high score, or 0 if absent or unreadable.
	LoadHighScore() int
	// SaveHighScore stores the high score; failures are logged, not returned.
	SaveHighScore(score int)
}
