package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
	"github.com/vovakirdan/stardrift/internal/platform/tui"
)

var (
	flagFrames    int
	flagUntilOver bool
	flagBot       string
	flagFormat    string
	flagSnapshot  bool
	flagSnapshotW int
	flagSnapshotH int
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run a bot session without a display",
	Long: `Run Star Drift without a display at a fixed time step and print a
summary. Useful for checking tuning changes and for reproducing a session
with --seed.

Bots:
  idle    - Never moves
  random  - Holds a random direction for a random number of frames
  dodge   - Steps away from the nearest enemy above the ship

Examples:
  stardrift headless --seed 42
  stardrift headless --bot dodge --until-game-over --format yaml
  stardrift headless --frames 600 --snapshot`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	f := headlessCmd.Flags()
	f.IntVar(&flagFrames, "frames", 3600, "Frames to simulate (0 = until game over)")
	f.BoolVar(&flagUntilOver, "until-game-over", false, "Stop at the first game over")
	f.StringVar(&flagBot, "bot", "random", "Bot: idle, random or dodge")
	f.StringVar(&flagFormat, "format", "text", "Report format: text or yaml")
	f.BoolVar(&flagSnapshot, "snapshot", false, "Print the last frame as text")
	f.IntVar(&flagSnapshotW, "snapshot-width", 80, "Snapshot width in cells")
	f.IntVar(&flagSnapshotH, "snapshot-height", 24, "Snapshot height in cells")
}

// report summarizes a headless run.
type report struct {
	Seed      int64   `yaml:"seed"`
	Bot       string  `yaml:"bot"`
	Frames    int     `yaml:"frames"`
	Seconds   float64 `yaml:"seconds"`
	Score     int     `yaml:"score"`
	HighScore int     `yaml:"high_score"`
	Life      int     `yaml:"life"`
	GameOver  bool    `yaml:"game_over"`
	Quit      bool    `yaml:"quit"`
}

func runHeadless(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	driver, err := newBot(flagBot, flagSeed)
	if err != nil {
		return err
	}
	if flagFormat != "text" && flagFormat != "yaml" {
		return fmt.Errorf("%w: unknown format %q (want text or yaml)", errUsage, flagFormat)
	}
	if flagSnapshotW <= 0 || flagSnapshotH <= 0 {
		return fmt.Errorf("%w: snapshot size must be positive", errUsage)
	}
	untilOver := flagUntilOver || flagFrames <= 0

	g, err := newGame(logger, false)
	if err != nil {
		return err
	}
	defer g.Close()

	session := g.newSession(g.preset)
	driver.session = session

	clock := &countingClock{Clock: core.NewFixedClock(session.TargetFPS())}
	loop := &stardrift.Loop{
		Session:        session,
		Input:          driver,
		Clock:          clock,
		MaxFrames:      flagFrames,
		StopOnGameOver: untilOver,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = loop.Run(ctx)
	quit := errors.Is(err, stardrift.ErrQuit)
	if err != nil && !quit {
		return err
	}

	st := session.State()
	r := report{
		Seed:      flagSeed,
		Bot:       flagBot,
		Frames:    clock.frames,
		Seconds:   clock.total,
		Score:     st.Score,
		HighScore: st.HighScore,
		Life:      st.Life,
		GameOver:  st.GameOver,
		Quit:      quit,
	}
	if err := writeReport(os.Stdout, r, flagFormat); err != nil {
		return err
	}

	if flagSnapshot {
		screen := core.NewScreen(flagSnapshotW, flagSnapshotH)
		w, h := session.Size()
		session.Render(tui.NewCellRenderer(screen, w, h))
		fmt.Println(screen.String())
	}
	return nil
}

func writeReport(w io.Writer, r report, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	}
	_, err := fmt.Fprintf(w,
		"frames %d (%.1fs)  score %d  high %d  life %d  game over %v\n",
		r.Frames, r.Seconds, r.Score, r.HighScore, r.Life, r.GameOver)
	return err
}

// countingClock counts frames and simulated time.
type countingClock struct {
	core.Clock
	frames int
	total  float64
}

func (c *countingClock) Elapsed() float64 {
	dt := c.Clock.Elapsed()
	c.frames++
	c.total += dt
	return dt
}

// bot is a scripted core.InputSource.
type bot struct {
	kind    string
	rng     *rand.Rand
	session *stardrift.Session
	dir     core.Action
	hold    int // Frames left on the current random direction
}

func newBot(kind string, seed int64) (*bot, error) {
	switch kind {
	case "idle", "random", "dodge":
	default:
		return nil, fmt.Errorf("%w: unknown bot %q (want idle, random or dodge)", errUsage, kind)
	}
	return &bot{kind: kind, rng: rand.New(rand.NewSource(seed))}, nil
}

var botDirections = []core.Action{
	core.ActionNone, core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown,
}

// Poll returns the bot's input. After a game over every bot restarts, so
// long runs cover several sessions unless --until-game-over is set.
func (b *bot) Poll() core.InputFrame {
	frame := core.NewInputFrame()
	if b.session != nil && b.session.State().GameOver {
		frame.Set(core.ActionRestart)
		return frame
	}

	switch b.kind {
	case "random":
		if b.hold <= 0 {
			b.dir = botDirections[b.rng.Intn(len(botDirections))]
			b.hold = 10 + b.rng.Intn(50)
		}
		b.hold--
		if b.dir != core.ActionNone {
			frame.Set(b.dir)
		}
	case "dodge":
		if a := b.dodge(); a != core.ActionNone {
			frame.Set(a)
		}
	}
	return frame
}

// dodge steps sideways away from the enemy above the ship's column that
// will reach it first.
func (b *bot) dodge() core.Action {
	if b.session == nil {
		return core.ActionNone
	}
	w, _ := b.session.Size()
	return dodgeAction(b.session.Player().Bounds(), b.session.Enemies(), w)
}

func dodgeAction(p core.Box, enemies []*stardrift.Enemy, w float64) core.Action {
	var threat *core.Box
	soonest := math.Inf(1)
	for _, e := range enemies {
		eb := e.Bounds()
		if eb.Bottom() > p.Y || eb.Right() < p.X || eb.X > p.Right() || e.Speed() <= 0 {
			continue
		}
		if eta := (p.Y - eb.Bottom()) / e.Speed(); eta < soonest {
			soonest = eta
			threat = &eb
		}
	}
	if threat == nil {
		return core.ActionNone
	}
	if (threat.Center().X >= p.Center().X && p.X > 0) || p.Right() >= w {
		return core.ActionLeft
	}
	return core.ActionRight
}
