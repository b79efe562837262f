package main

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// frameClock caps the tick rate by sleeping out the rest of each frame
// budget. now reports seconds on a monotonic clock.
type frameClock struct {
	now   func() float64
	sleep func(time.Duration)
	last  float64
}

func newFrameClock(now func() float64, sleep func(time.Duration)) *frameClock {
	return &frameClock{now: now, sleep: sleep, last: now()}
}

// newGLFWClock must be called after glfw.Init.
func newGLFWClock() *frameClock {
	return newFrameClock(glfw.GetTime, time.Sleep)
}

func (c *frameClock) Tick(fps int) time.Duration {
	if fps > 0 {
		budget := 1 / float64(fps)
		if wait := c.last + budget - c.now(); wait > 0 {
			c.sleep(time.Duration(wait * float64(time.Second)))
		}
	}

	now := c.now()
	elapsed := now - c.last
	c.last = now
	return time.Duration(elapsed * float64(time.Second))
}
