package tui

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/stardrift/internal/core"
)

// starCount is the number of stars per background tile.
const starCount = 48

// glyph is how a sprite looks on the cell grid.
type glyph struct {
	r      rune
	fg     core.Color
	single bool // Drawn as one cell at the sprite's top-left instead of filling its box
}

var glyphs = map[core.SpriteID]glyph{
	core.SpritePlayer: {r: '█', fg: core.ColorBrightCyan},
	core.SpriteEnemy:  {r: '▓', fg: core.ColorBrightRed},
	core.SpriteItem:   {r: '◆', fg: core.ColorGold},
	core.SpriteHeart:  {r: '♥', fg: core.ColorBrightRed, single: true},
}

// CellRenderer draws world-space frames onto a cell Screen.
// The world is stretched to the grid independently on each axis.
type CellRenderer struct {
	screen *core.Screen
	worldW float64
	worldH float64
	stars  []core.Vec2 // Tile-relative positions in [0,1)
}

// NewCellRenderer creates a renderer mapping a worldW x worldH world onto screen.
func NewCellRenderer(screen *core.Screen, worldW, worldH float64) *CellRenderer {
	rng := rand.New(rand.NewSource(7))
	stars := make([]core.Vec2, starCount)
	for i := range stars {
		stars[i] = core.Vec2{X: rng.Float64(), Y: rng.Float64()}
	}
	return &CellRenderer{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
		stars:  stars,
	}
}

// unit returns the world size of one cell. ok is false when either the
// world or the screen is empty.
func (r *CellRenderer) unit() (ux, uy float64, ok bool) {
	cols, rows := r.screen.Width(), r.screen.Height()
	if r.worldW <= 0 || r.worldH <= 0 || cols == 0 || rows == 0 {
		return 0, 0, false
	}
	return r.worldW / float64(cols), r.worldH / float64(rows), true
}

// cell returns the cell containing a world point.
func (r *CellRenderer) cell(p core.Vec2) (col, row int) {
	ux, uy, ok := r.unit()
	if !ok {
		return -1, -1
	}
	return int(math.Floor(p.X / ux)), int(math.Floor(p.Y / uy))
}

// cellRect returns the cells covered by a box, at least one cell.
func (r *CellRenderer) cellRect(b core.Box) core.Rect {
	ux, uy, ok := r.unit()
	if !ok {
		return core.Rect{}
	}
	x0 := int(math.Floor(b.X / ux))
	y0 := int(math.Floor(b.Y / uy))
	x1 := max(int(math.Ceil(b.Right()/ux)), x0+1)
	y1 := max(int(math.Ceil(b.Bottom()/uy)), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// ToWorld returns the world position at the centre of a cell.
func (r *CellRenderer) ToWorld(col, row int) core.Vec2 {
	ux, uy, ok := r.unit()
	if !ok {
		return core.Vec2{}
	}
	return core.Vec2{X: (float64(col) + 0.5) * ux, Y: (float64(row) + 0.5) * uy}
}

// Clear blanks the screen. Black is left to the terminal's own background.
func (r *CellRenderer) Clear(c core.Color) {
	r.screen.Clear()
	if c == core.ColorDefault || c == core.ColorBlack {
		return
	}
	r.screen.FillRect(core.NewRect(0, 0, r.screen.Width(), r.screen.Height()), c)
}

// DrawImage draws a sprite as glyphs. The background is a star field that
// scrolls with the tile position.
func (r *CellRenderer) DrawImage(s core.Sprite, pos core.Vec2) {
	if s.ID == core.SpriteBackground {
		r.drawStars(s, pos)
		return
	}

	g, ok := glyphs[s.ID]
	if !ok {
		return
	}
	if g.single {
		col, row := r.cell(pos)
		r.screen.SetCell(col, row, core.Cell{Rune: g.r, Fg: g.fg})
		return
	}

	rect := r.cellRect(core.NewBox(pos.X, pos.Y, s.W, s.H))
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			r.screen.SetCell(x, y, core.Cell{Rune: g.r, Fg: g.fg})
		}
	}
}

func (r *CellRenderer) drawStars(s core.Sprite, pos core.Vec2) {
	for _, st := range r.stars {
		col, row := r.cell(core.Vec2{X: pos.X + st.X*s.W, Y: pos.Y + st.Y*s.H})
		if r.screen.Get(col, row) != ' ' {
			continue
		}
		r.screen.SetCell(col, row, core.Cell{Rune: '.', Fg: core.ColorGray})
	}
}

// DrawText writes text starting at the cell containing pos.
func (r *CellRenderer) DrawText(text string, pos core.Vec2, c core.Color) {
	col, row := r.cell(pos)
	r.screen.DrawTextColor(col, row, text, c)
}

// MeasureText returns the world size of text: one cell per rune, one row high.
func (r *CellRenderer) MeasureText(text string) core.Vec2 {
	ux, uy, ok := r.unit()
	if !ok {
		return core.Vec2{}
	}
	return core.Vec2{X: float64(len([]rune(text))) * ux, Y: uy}
}

// FillRect paints the cells covered by a box.
func (r *CellRenderer) FillRect(b core.Box, c core.Color) {
	r.screen.FillRect(r.cellRect(b), c)
}

// Present does nothing; the Bubble Tea view reads the screen.
func (r *CellRenderer) Present() {}

var _ core.Renderer = (*CellRenderer)(nil)
