package tui

import (
	"time"

	"github.com/vovakirdan/stardrift/internal/core"
)

// Terminals report key presses and auto-repeats but no releases, so a
// direction counts as held until its latch expires. The first press waits
// out the typical auto-repeat delay; repeats only need to bridge the gap
// to the next repeat.
const (
	InitialHold = 300 * time.Millisecond
	RepeatHold  = 100 * time.Millisecond
)

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// KeyLatch turns terminal key events into per-frame input.
// Directions are held for a short window after each press; restart, quit
// and clicks fire once on the next poll.
type KeyLatch struct {
	now     func() time.Time
	held    map[core.Action]time.Time // Expiry of each held direction
	pending map[core.Action]bool
	click   *core.Vec2
}

// NewKeyLatch creates an empty latch using the wall clock.
func NewKeyLatch() *KeyLatch {
	return newKeyLatch(time.Now)
}

func newKeyLatch(now func() time.Time) *KeyLatch {
	return &KeyLatch{
		now:     now,
		held:    make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// Press records a key press for an action.
func (l *KeyLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	opp, directional := opposite[a]
	if !directional {
		l.pending[a] = true
		return
	}

	t := l.now()
	hold := InitialHold
	if until, ok := l.held[a]; ok && until.After(t) {
		hold = RepeatHold
	}
	l.held[a] = t.Add(hold)
	delete(l.held, opp)
}

// Click records a mouse click at a world position.
func (l *KeyLatch) Click(p core.Vec2) {
	l.click = &p
}

// Release drops every held direction and pending event.
func (l *KeyLatch) Release() {
	clear(l.held)
	clear(l.pending)
	l.click = nil
}

// Poll returns the input for the current frame and consumes one-shot events.
func (l *KeyLatch) Poll() core.InputFrame {
	frame := core.NewInputFrame()
	t := l.now()
	for a, until := range l.held {
		if !until.After(t) {
			delete(l.held, a)
			continue
		}
		frame.Set(a)
	}
	for a := range l.pending {
		frame.Set(a)
	}
	clear(l.pending)
	if l.click != nil {
		frame.SetClick(*l.click)
		l.click = nil
	}
	return frame
}

var _ core.InputSource = (*KeyLatch)(nil)
