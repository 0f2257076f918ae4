package stardrift

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/stardrift/internal/core"
)

type countingClock struct {
	core.FixedClock
	caps []int
}

func (c *countingClock) CapFrameRate(hz int) { c.caps = append(c.caps, hz) }

func TestLoopMaxFrames(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	clock := &countingClock{FixedClock: core.FixedClock{Step: 1.0 / 60}}
	r := &fakeRenderer{}

	l := &Loop{Session: s, Input: &scriptedInput{}, Clock: clock, Renderer: r, MaxFrames: 30}
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r.presents != 30 {
		t.Errorf("rendered %d frames, expected 30", r.presents)
	}
	if len(clock.caps) != 30 || clock.caps[0] != 60 {
		t.Errorf("frame caps = %v", clock.caps)
	}
}

func TestLoopQuit(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	in := &scriptedInput{frames: []core.InputFrame{core.NewInputFrame(), quit}}

	l := &Loop{Session: s, Input: in, Clock: core.NewFixedClock(60)}
	if err := l.Run(context.Background()); !errors.Is(err, ErrQuit) {
		t.Errorf("Run() = %v, expected ErrQuit", err)
	}
}

func TestLoopStopOnGameOver(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	s.life = 1
	s.invincible = 0
	s.enemies = append(s.enemies, onPlayer(s))

	l := &Loop{Session: s, Input: &scriptedInput{}, Clock: core.NewFixedClock(60), StopOnGameOver: true}
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !s.State().GameOver {
		t.Error("loop stopped before the game ended")
	}
}

func TestLoopContextCancel(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &Loop{Session: s, Input: &scriptedInput{}, Clock: core.NewFixedClock(60)}
	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
}
