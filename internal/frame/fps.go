package frame

import "time"

// Counter measures frames per second over one-second windows.
type Counter struct {
	windowStart time.Time
	frames      int
	fps         int
}

// Reset starts a fresh window at now.
func (c *Counter) Reset(now time.Time) {
	c.windowStart = now
	c.frames = 0
	c.fps = 0
}

// Tick counts one frame and returns the last completed window's rate.
func (c *Counter) Tick(now time.Time) int {
	if c.windowStart.IsZero() {
		c.Reset(now)
	}
	c.frames++
	d := now.Sub(c.windowStart)
	if d >= time.Second {
		c.fps = int(float64(c.frames) / d.Seconds())
		c.windowStart = now
		c.frames = 0
	}
	return c.fps
}

// FPS returns the last measured rate.
func (c *Counter) FPS() int { return c.fps }
