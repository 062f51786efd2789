package core

import "time"

// Clock measures time since it was started. It relies on the monotonic
// reading carried by time.Time so wall clock jumps do not affect it.
type Clock struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

func NewClock() *Clock {
	return &Clock{}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.running {
		c.elapsed = time.Since(c.start)
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.start = time.Now()
	c.elapsed = 0
	c.running = true
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.Update()
	c.running = false
}

// Elapsed returns the duration recorded by the last Update.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Seconds returns the live time since Start, in seconds.
func (c *Clock) Seconds() float32 {
	if !c.running {
		return float32(c.elapsed.Seconds())
	}
	return float32(time.Since(c.start).Seconds())
}
