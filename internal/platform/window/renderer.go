package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/stardrift/internal/assets"
	"github.com/vovakirdan/stardrift/internal/core"
)

// Renderer draws frames onto the ebiten screen image.
// Sprites come from an asset library; missing ones use flat placeholders.
type Renderer struct {
	lib    *assets.Library
	images map[core.SpriteID]*ebiten.Image
	face   text.Face
	lineH  float64
	target *ebiten.Image
}

// NewRenderer creates a renderer over lib. A nil library draws placeholders only.
func NewRenderer(lib *assets.Library) *Renderer {
	face := text.NewGoXFace(basicfont.Face7x13)
	m := face.Metrics()
	return &Renderer{
		lib:    lib,
		images: make(map[core.SpriteID]*ebiten.Image),
		face:   face,
		lineH:  m.HAscent + m.HDescent + m.HLineGap,
	}
}

// begin sets the image the next frame is drawn to.
func (r *Renderer) begin(screen *ebiten.Image) {
	r.target = screen
}

// image returns the GPU image for a sprite, uploading it on first use.
func (r *Renderer) image(id core.SpriteID) *ebiten.Image {
	if img, ok := r.images[id]; ok {
		return img
	}
	var img *ebiten.Image
	if src := r.lib.Image(id); src != nil {
		img = ebiten.NewImageFromImage(src)
	}
	r.images[id] = img
	return img
}

// Clear fills the frame.
func (r *Renderer) Clear(c core.Color) {
	r.target.Fill(c.RGBA())
}

// DrawImage draws a sprite stretched to its size.
func (r *Renderer) DrawImage(s core.Sprite, pos core.Vec2) {
	img := r.image(s.ID)
	if img == nil {
		if c, ok := assets.Placeholder(s.ID); ok {
			r.FillRect(core.NewBox(pos.X, pos.Y, s.W, s.H), c)
		}
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	if b.Dx() > 0 && b.Dy() > 0 {
		op.GeoM.Scale(s.W/float64(b.Dx()), s.H/float64(b.Dy()))
	}
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(img, op)
}

// DrawText draws text with its top-left corner at pos.
func (r *Renderer) DrawText(s string, pos core.Vec2, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.LineSpacing = r.lineH
	text.Draw(r.target, s, r.face, op)
}

// MeasureText returns the size of text in pixels.
func (r *Renderer) MeasureText(s string) core.Vec2 {
	w, h := text.Measure(s, r.face, r.lineH)
	return core.Vec2{X: w, Y: h}
}

// FillRect fills a box with a flat colour.
func (r *Renderer) FillRect(b core.Box, c core.Color) {
	vector.FillRect(r.target, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c.RGBA(), false)
}

// Present does nothing; ebiten shows the screen after Draw returns.
func (r *Renderer) Present() {}

var _ core.Renderer = (*Renderer)(nil)
