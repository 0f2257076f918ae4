package core

import "time"

// FrameClock is a wall-clock Clock.
type FrameClock struct {
	now       func() time.Time
	sleep     func(time.Duration)
	lastFrame time.Time // Start of the previous capped frame
	lastTick  time.Time // Time of the previous Elapsed call
}

// NewFrameClock creates a clock starting now.
func NewFrameClock() *FrameClock {
	c := &FrameClock{now: time.Now, sleep: time.Sleep}
	c.lastFrame = c.now()
	c.lastTick = c.lastFrame
	return c
}

// Elapsed returns the seconds since the previous call (or since creation).
func (c *FrameClock) Elapsed() float64 {
	t := c.now()
	dt := t.Sub(c.lastTick).Seconds()
	c.lastTick = t
	if dt < 0 {
		return 0
	}
	return dt
}

// CapFrameRate sleeps so that frames start at most hz times per second.
func (c *FrameClock) CapFrameRate(hz int) {
	if hz > 0 {
		frame := time.Second / time.Duration(hz)
		if wait := frame - c.now().Sub(c.lastFrame); wait > 0 {
			c.sleep(wait)
		}
	}
	c.lastFrame = c.now()
}

// FixedClock reports a constant frame time and never sleeps.
// Used for headless runs and tests.
type FixedClock struct {
	Step float64
}

// NewFixedClock returns a clock advancing 1/hz seconds per frame.
func NewFixedClock(hz int) *FixedClock {
	if hz <= 0 {
		hz = 60
	}
	return &FixedClock{Step: 1 / float64(hz)}
}

// Elapsed returns the fixed step.
func (c *FixedClock) Elapsed() float64 {
	return c.Step
}

// CapFrameRate does nothing.
func (c *FixedClock) CapFrameRate(int) {}
