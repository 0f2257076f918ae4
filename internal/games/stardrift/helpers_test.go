package stardrift

import (
	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
)

type memStore struct {
	high     int
	saves    []int
	recorded []int
}

func (m *memStore) LoadHighScore() int { return m.high }

func (m *memStore) SaveHighScore(score int) {
	m.high = score
	m.saves = append(m.saves, score)
}

func (m *memStore) RecordScore(score int) {
	m.recorded = append(m.recorded, score)
}

type fakeAudio struct {
	played      []core.Sound
	musicStarts int
	musicStops  int
}

func (a *fakeAudio) PlayOnce(s core.Sound) { a.played = append(a.played, s) }
func (a *fakeAudio) PlayMusic()            { a.musicStarts++ }
func (a *fakeAudio) StopMusic()            { a.musicStops++ }

func (a *fakeAudio) count(s core.Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

type drawnImage struct {
	sprite core.Sprite
	pos    core.Vec2
}

type drawnText struct {
	text  string
	pos   core.Vec2
	color core.Color
}

type drawnRect struct {
	box   core.Box
	color core.Color
}

type fakeRenderer struct {
	clears   int
	images   []drawnImage
	texts    []drawnText
	rects    []drawnRect
	presents int
}

func (r *fakeRenderer) Clear(core.Color) { r.clears++ }

func (r *fakeRenderer) DrawImage(s core.Sprite, pos core.Vec2) {
	r.images = append(r.images, drawnImage{s, pos})
}

func (r *fakeRenderer) DrawText(text string, pos core.Vec2, c core.Color) {
	r.texts = append(r.texts, drawnText{text, pos, c})
}

func (r *fakeRenderer) MeasureText(text string) core.Vec2 {
	return core.Vec2{X: float64(len(text) * 8), Y: 16}
}

func (r *fakeRenderer) FillRect(b core.Box, c core.Color) {
	r.rects = append(r.rects, drawnRect{b, c})
}

func (r *fakeRenderer) Present() { r.presents++ }

func (r *fakeRenderer) imagesOf(id core.SpriteID) int {
	n := 0
	for _, img := range r.images {
		if img.sprite.ID == id {
			n++
		}
	}
	return n
}

func (r *fakeRenderer) findText(text string) (drawnText, bool) {
	for _, t := range r.texts {
		if t.text == text {
			return t, true
		}
	}
	return drawnText{}, false
}

// scriptedInput replays frames in order, then returns empty frames.
type scriptedInput struct {
	frames []core.InputFrame
	next   int
}

func (s *scriptedInput) Poll() core.InputFrame {
	if s.next >= len(s.frames) {
		return core.NewInputFrame()
	}
	f := s.frames[s.next]
	s.next++
	return f
}

func testConfig() config.StarDriftConfig {
	cfg := config.DefaultStarDriftConfig()
	cfg.Item.HealChance = 0
	return cfg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 1}
}

func newTestSession(store *memStore, audio *fakeAudio) *Session {
	return New(Options{
		Config:  testConfig(),
		Runtime: testRuntime(),
		Store:   store,
		Audio:   audio,
	})
}

// enemyAt builds an enemy with its top-left corner at (x, y).
func enemyAt(x, y, speed float64) *Enemy {
	cfg := testConfig().Enemy
	return &Enemy{body{box: core.NewBox(x, y, cfg.Size, cfg.Size), speed: speed, inset: cfg.Inset}}
}

// itemAt builds an item with its top-left corner at (x, y).
func itemAt(x, y, speed float64, reward Reward) *Item {
	cfg := testConfig().Item
	return &Item{
		body:   body{box: core.NewBox(x, y, cfg.Size, cfg.Size), speed: speed, inset: cfg.Inset},
		reward: reward,
	}
}

// onPlayer returns an enemy overlapping the player, still in place.
func onPlayer(s *Session) *Enemy {
	p := s.player.Bounds()
	return enemyAt(p.X+10, p.Y+10, 0)
}

func step(s *Session, dt float64) core.StepResult {
	return s.Step(core.NewInputFrame(), dt)
}
