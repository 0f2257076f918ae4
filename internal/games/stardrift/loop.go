package stardrift

import (
	"context"
	"errors"

	"github.com/vovakirdan/stardrift/internal/core"
)

// ErrQuit is returned by Loop.Run when the player asks to exit.
var ErrQuit = errors.New("stardrift: quit requested")

// Loop drives a session with a clock, an input source and a renderer.
// Frontends that own their own event loop call Session.Step directly instead.
type Loop struct {
	Session  *Session
	Input    core.InputSource
	Clock    core.Clock
	Renderer core.Renderer // Optional; nil runs without drawing

	MaxFrames      int  // Stop after this many frames; 0 runs until quit
	StopOnGameOver bool // Stop as soon as the session ends
}

// Run steps the session until the player quits, the context is cancelled
// or a configured stop condition is met. A quit returns ErrQuit; a stop
// condition returns nil.
func (l *Loop) Run(ctx context.Context) error {
	for frame := 0; l.MaxFrames <= 0 || frame < l.MaxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		dt := l.Clock.Elapsed()
		res := l.Session.Step(l.Input.Poll(), dt)
		if res.Quit {
			return ErrQuit
		}

		if l.Renderer != nil {
			l.Session.Render(l.Renderer)
		}
		if l.StopOnGameOver && res.State.GameOver {
			return nil
		}

		l.Clock.CapFrameRate(l.Session.TargetFPS())
	}
	return nil
}
