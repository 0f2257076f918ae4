package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
)

// newTestRenderer maps an 800x600 world onto 80x24 cells: 10 units per
// column and 25 units per row.
func newTestRenderer() (*CellRenderer, *core.Screen) {
	screen := core.NewScreen(80, 24)
	return NewCellRenderer(screen, 800, 600), screen
}

func TestCellRect(t *testing.T) {
	r, _ := newTestRenderer()

	tests := []struct {
		name string
		box  core.Box
		want core.Rect
	}{
		{"aligned", core.NewBox(100, 50, 100, 50), core.NewRect(10, 2, 10, 2)},
		{"partial cells round outward", core.NewBox(105, 60, 10, 10), core.NewRect(10, 2, 2, 1)},
		{"tiny box keeps one cell", core.NewBox(401, 301, 1, 1), core.NewRect(40, 12, 1, 1)},
		{"empty box keeps one cell", core.NewBox(0, 0, 0, 0), core.NewRect(0, 0, 1, 1)},
		{"above the screen", core.NewBox(100, -50, 10, 25), core.NewRect(10, -2, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.cellRect(tt.box); got != tt.want {
				t.Errorf("cellRect(%+v) = %+v, want %+v", tt.box, got, tt.want)
			}
		})
	}
}

func TestToWorldHitsCellCentre(t *testing.T) {
	r, _ := newTestRenderer()

	got := r.ToWorld(30, 15)
	want := core.Vec2{X: 305, Y: 387.5}
	if got != want {
		t.Errorf("ToWorld(30, 15) = %+v, want %+v", got, want)
	}

	empty := NewCellRenderer(core.NewScreen(0, 0), 800, 600)
	if got := empty.ToWorld(3, 3); got != (core.Vec2{}) {
		t.Errorf("ToWorld on empty screen = %+v, want zero", got)
	}
}

func TestMeasureText(t *testing.T) {
	r, _ := newTestRenderer()
	got := r.MeasureText("Quit")
	if got.X != 40 || got.Y != 25 {
		t.Errorf("MeasureText(Quit) = %+v, want (40,25)", got)
	}
}

func TestDrawImageGlyphs(t *testing.T) {
	r, screen := newTestRenderer()

	r.DrawImage(core.Sprite{ID: core.SpritePlayer, W: 70, H: 70}, core.Vec2{X: 370, Y: 485})
	cell := screen.GetCell(37, 19)
	if cell.Rune != '█' || cell.Fg != core.ColorBrightCyan {
		t.Errorf("player cell = %+v", cell)
	}
	if screen.Get(36, 19) != ' ' {
		t.Error("player should not spill left of its box")
	}

	r.DrawImage(core.Sprite{ID: core.SpriteHeart, W: 32, H: 32}, core.Vec2{X: 10, Y: 10})
	r.DrawImage(core.Sprite{ID: core.SpriteHeart, W: 32, H: 32}, core.Vec2{X: 46, Y: 10})
	if screen.Get(1, 0) != '♥' || screen.Get(4, 0) != '♥' {
		t.Errorf("hearts row = %q", screen.Row(0))
	}
	if screen.Get(2, 0) != ' ' || screen.Get(1, 1) != ' ' {
		t.Error("a heart should take a single cell")
	}
}

func TestDrawBackgroundStars(t *testing.T) {
	r, screen := newTestRenderer()
	r.DrawImage(core.Sprite{ID: core.SpriteBackground, W: 800, H: 600}, core.Vec2{})

	stars := strings.Count(screen.String(), ".")
	if stars == 0 || stars > starCount {
		t.Errorf("drew %d stars, want between 1 and %d", stars, starCount)
	}

	// The same tile drawn twice gives the same field.
	first := screen.String()
	r.Clear(core.ColorBlack)
	r.DrawImage(core.Sprite{ID: core.SpriteBackground, W: 800, H: 600}, core.Vec2{})
	if screen.String() != first {
		t.Error("star field should be deterministic")
	}
}

func TestClearAndFillRect(t *testing.T) {
	r, screen := newTestRenderer()
	screen.DrawText(0, 0, "junk")

	r.Clear(core.ColorBlack)
	if screen.Get(0, 0) != ' ' || screen.GetCell(0, 0).Bg != core.ColorDefault {
		t.Error("black clear should leave default cells")
	}

	r.Clear(core.ColorBlue)
	if screen.GetCell(79, 23).Bg != core.ColorBlue {
		t.Error("coloured clear should paint the background")
	}

	r.Clear(core.ColorBlack)
	r.FillRect(core.NewBox(280, 360, 100, 44), core.ColorBlue)
	r.DrawText("Restart", core.Vec2{X: 288, Y: 368}, core.ColorWhite)
	cell := screen.GetCell(28, 14)
	if cell.Rune != 'R' || cell.Fg != core.ColorWhite || cell.Bg != core.ColorBlue {
		t.Errorf("button label cell = %+v", cell)
	}
}

func TestSessionRendersOnCells(t *testing.T) {
	s := stardrift.New(stardrift.Options{
		Config:  config.DefaultStarDriftConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Seed: 1},
	})
	r, screen := newTestRenderer()
	s.Render(r)

	if !strings.Contains(screen.Row(1), "Score: 0") {
		t.Errorf("row 1 = %q, want the score", screen.Row(1))
	}
	if !strings.Contains(screen.Row(2), "High: 0") {
		t.Errorf("row 2 = %q, want the high score", screen.Row(2))
	}
	if got := strings.Count(screen.Row(0), "♥"); got != 3 {
		t.Errorf("row 0 has %d hearts, want 3", got)
	}
	if !strings.Contains(screen.String(), "█") {
		t.Error("player not drawn")
	}
}
