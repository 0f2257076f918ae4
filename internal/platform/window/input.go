package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/stardrift/internal/core"
)

// device is the slice of ebiten's input API the game polls.
type device interface {
	KeyPressed(k ebiten.Key) bool
	MousePressed() bool
	Cursor() (x, y int)
}

type ebitenDevice struct{}

func (ebitenDevice) KeyPressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenDevice) MousePressed() bool           { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }
func (ebitenDevice) Cursor() (int, int)           { return ebiten.CursorPosition() }

// held actions are active while any of their keys is down.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// edge actions fire once on the frame a key goes down.
var edgeKeys = map[core.Action][]ebiten.Key{
	core.ActionRestart: {ebiten.KeyR, ebiten.KeyEnter},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// Input polls the keyboard and mouse once per frame.
// The cursor is already in world units because Layout returns the world size.
type Input struct {
	dev       device
	prevKeys  map[ebiten.Key]bool
	prevMouse bool
}

// NewInput creates an input source reading ebiten's global input state.
func NewInput() *Input {
	return newInput(ebitenDevice{})
}

func newInput(dev device) *Input {
	return &Input{dev: dev, prevKeys: make(map[ebiten.Key]bool)}
}

// Poll returns this frame's input.
func (in *Input) Poll() core.InputFrame {
	frame := core.NewInputFrame()

	for a, keys := range heldKeys {
		for _, k := range keys {
			if in.dev.KeyPressed(k) {
				frame.Set(a)
				break
			}
		}
	}

	currentKeys := make(map[ebiten.Key]bool)
	for a, keys := range edgeKeys {
		for _, k := range keys {
			currentKeys[k] = in.dev.KeyPressed(k)
			if currentKeys[k] && !in.prevKeys[k] {
				frame.Set(a)
			}
		}
	}
	in.prevKeys = currentKeys

	mouse := in.dev.MousePressed()
	if mouse && !in.prevMouse {
		x, y := in.dev.Cursor()
		frame.SetClick(core.Vec2{X: float64(x), Y: float64(y)})
	}
	in.prevMouse = mouse

	return frame
}

var _ core.InputSource = (*Input)(nil)
