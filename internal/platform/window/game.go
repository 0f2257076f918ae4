// Package window runs Star Drift in a desktop window through Ebitengine.
// The logical screen is the world size, so world units are pixels and the
// cursor needs no conversion.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/stardrift/internal/assets"
	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
)

// maxFrameDT caps one update so dragging the window does not make the
// falling objects jump.
const maxFrameDT = 0.1

// Title is the window title.
const Title = "Star Drift"

// Options configures the window frontend.
type Options struct {
	Session *stardrift.Session
	Assets  *assets.Library // Nil draws placeholders
	Scale   float64         // Window size relative to the world; 0 means 1
	Logger  *log.Logger
}

// Game implements ebiten.Game around a session.
type Game struct {
	session  *stardrift.Session
	input    core.InputSource
	renderer *Renderer
	clock    core.Clock
	width    int
	height   int
	tps      int
	logger   *log.Logger
}

// New creates the ebiten game for opts.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := opts.Session.Size()
	return &Game{
		session:  opts.Session,
		input:    NewInput(),
		renderer: NewRenderer(opts.Assets),
		clock:    core.NewFrameClock(),
		width:    int(w),
		height:   int(h),
		logger:   logger,
	}
}

// Update advances the session by the real time since the previous update.
// The tick rate follows the session mode: 60 Hz playing, 30 Hz on game over.
func (g *Game) Update() error {
	dt := min(g.clock.Elapsed(), maxFrameDT)
	res := g.session.Step(g.input.Poll(), dt)
	if res.Quit {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	if fps := g.session.TargetFPS(); fps != g.tps {
		g.tps = fps
		ebiten.SetTPS(fps)
	}
	return nil
}

// Draw renders the session.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.begin(screen)
	g.session.Render(g.renderer)
}

// Layout returns the world size as the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the player quits or closes it.
func Run(opts Options) error {
	g := New(opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g.tps = opts.Session.TargetFPS()
	ebiten.SetTPS(g.tps)

	g.logger.Debug("window starting", "width", g.width, "height", g.height, "tps", g.tps)
	return ebiten.RunGame(g)
}
