package stardrift

import (
	"fmt"

	"github.com/vovakirdan/stardrift/internal/core"
)

// HUD and game over layout, in world units.
const (
	heartSize    = 32
	heartSpacing = 36
	hudMargin    = 10
	scoreY       = 48
	highY        = 72

	GameOverTitle = "THE FORCE WAS NOT WITH YOU"
)

// Render draws the current frame and presents it.
func (s *Session) Render(r core.Renderer) {
	if s.mode == ModeGameOver {
		s.renderGameOver(r)
	} else {
		s.renderPlaying(r)
	}
	r.Present()
}

func (s *Session) renderPlaying(r core.Renderer) {
	r.Clear(core.ColorBlack)
	s.bg.Draw(r)

	for _, e := range s.enemies {
		r.DrawImage(e.Sprite(), e.Bounds().Pos())
	}
	for _, it := range s.items {
		r.DrawImage(it.Sprite(), it.Bounds().Pos())
	}
	r.DrawImage(s.player.Sprite(), s.player.Bounds().Pos())

	heart := core.Sprite{ID: core.SpriteHeart, W: heartSize, H: heartSize}
	for i := range s.life {
		r.DrawImage(heart, core.Vec2{X: float64(hudMargin + i*heartSpacing), Y: hudMargin})
	}

	r.DrawText(fmt.Sprintf("Score: %d", s.score), core.Vec2{X: hudMargin, Y: scoreY}, core.ColorWhite)
	r.DrawText(fmt.Sprintf("High: %d", s.highScore), core.Vec2{X: hudMargin, Y: highY}, core.ColorYellow)
}

func (s *Session) renderGameOver(r core.Renderer) {
	r.Clear(core.ColorBlack)
	s.bg.Draw(r)

	cx, cy := float64(s.screenW/2), float64(int(s.height)/2)

	size := r.MeasureText(GameOverTitle)
	r.DrawText(GameOverTitle, core.Vec2{X: cx - size.X/2, Y: cy - 20 - size.Y/2}, core.ColorBrightRed)

	r.DrawText(fmt.Sprintf("SCORE: %d", s.score), core.Vec2{X: cx - 60, Y: cy + 10}, core.ColorWhite)
	r.DrawText(fmt.Sprintf("HIGH: %d", s.highScore), core.Vec2{X: cx - 60, Y: cy + 34}, core.ColorGold)

	r.FillRect(s.restartButton, core.ColorBlue)
	r.FillRect(s.quitButton, core.ColorRed)
	r.DrawText("Restart", s.restartButton.Pos().Add(core.Vec2{X: 8, Y: 8}), core.ColorWhite)
	r.DrawText("Quit", s.quitButton.Pos().Add(core.Vec2{X: 24, Y: 8}), core.ColorWhite)
}
