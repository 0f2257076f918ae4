package core

import (
	"testing"
	"time"
)

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Vec2
	}{
		{"none", nil, Vec2{0, 0}},
		{"left", []Action{ActionLeft}, Vec2{-1, 0}},
		{"down right", []Action{ActionDown, ActionRight}, Vec2{1, 1}},
		{"opposites cancel", []Action{ActionLeft, ActionRight, ActionUp}, Vec2{0, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.want {
				t.Errorf("Direction() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestFrameClock(t *testing.T) {
	now := time.Unix(0, 0)
	var slept time.Duration
	c := &FrameClock{
		now:   func() time.Time { return now },
		sleep: func(d time.Duration) { slept += d; now = now.Add(d) },
	}
	c.lastFrame, c.lastTick = now, now

	now = now.Add(4 * time.Millisecond)
	c.CapFrameRate(50) // 20ms frame
	if slept != 16*time.Millisecond {
		t.Errorf("CapFrameRate slept %v, expected 16ms", slept)
	}
	if dt := c.Elapsed(); dt < 0.0199 || dt > 0.0201 {
		t.Errorf("Elapsed() = %v, expected 0.02", dt)
	}

	// A slow frame is not delayed further
	slept = 0
	now = now.Add(50 * time.Millisecond)
	c.CapFrameRate(50)
	if slept != 0 {
		t.Errorf("slow frame should not sleep, slept %v", slept)
	}

	if got := NewFixedClock(0).Elapsed(); got != 1.0/60 {
		t.Errorf("NewFixedClock(0) step = %v, expected 1/60", got)
	}
}
