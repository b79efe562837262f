package main

import "time"

const (
	targetFPS   = 60
	textX       = 5
	textY       = 5
	textSpacing = 30
)

// Surface is the window the loop draws into and reads input from.
type Surface interface {
	PollEvents()
	ShouldClose() bool
	Keys() KeyState
	Clear()
	// DrawSprite draws the point sprite centered on (x, y).
	DrawSprite(x, y float64)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(x, y int, s string)
	Present() error
}

// Clock reports the time since its previous tick, waiting first so that
// ticks happen at most fps times per second.
type Clock interface {
	Tick(fps int) time.Duration
}

type Loop struct {
	surface Surface
	clock   Clock
	sim     *Simulation
	points  []Vector3
}

func NewLoop(surface Surface, clock Clock, sim *Simulation, points []Vector3) *Loop {
	return &Loop{
		surface: surface,
		clock:   clock,
		sim:     sim,
		points:  points,
	}
}

// Run ticks until the window is asked to close.
func (l *Loop) Run() error {
	for {
		running, err := l.Tick()
		if err != nil || !running {
			return err
		}
	}
}

// Tick runs a single frame. It returns false once a close request has been
// seen; nothing is drawn on that tick.
func (l *Loop) Tick() (bool, error) {
	l.surface.PollEvents()
	if l.surface.ShouldClose() {
		return false, nil
	}

	l.surface.Clear()

	elapsed := l.clock.Tick(targetFPS)
	l.sim.Step(l.surface.Keys(), elapsed)

	l.sim.Visible(l.points, l.surface.DrawSprite)

	for i, line := range l.sim.DebugLines() {
		l.surface.DrawText(textX, textY+i*textSpacing, line)
	}

	return true, l.surface.Present()
}
