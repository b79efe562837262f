package main

import (
	"fmt"
	"time"
)

const (
	cameraSpeed = 300.0 // units per second
	startFOV    = 90.0
)

var cameraStart = Vector3{X: 0, Y: 0, Z: -700}

// KeyState is the set of control keys held during a tick.
type KeyState struct {
	Left, Right   bool
	Up, Down      bool
	Forward, Back bool
	FOVUp         bool
	FOVDown       bool
}

// Simulation holds the camera and field of view. Only the frame loop
// mutates it.
type Simulation struct {
	Camera          Vector3
	FOV             float64 // degrees
	ViewingDistance float64

	screenWidth  float64
	screenHeight float64
}

func NewSimulation(screenWidth, screenHeight int) *Simulation {
	s := &Simulation{
		Camera:       cameraStart,
		screenWidth:  float64(screenWidth),
		screenHeight: float64(screenHeight),
	}
	s.setFOV(startFOV)
	return s
}

func (s *Simulation) setFOV(fov float64) {
	s.FOV = clampFOV(fov)
	s.ViewingDistance = viewingDistanceDeg(s.FOV, s.screenWidth)
}

// Direction maps held keys to a movement direction. Each axis starts at
// zero and every held key overwrites it, so when both keys of an axis are
// held the one checked last wins.
func (k KeyState) Direction() Vector3 {
	var d Vector3
	if k.Left {
		d.X = -1
	}
	if k.Right {
		d.X = 1
	}
	if k.Up {
		d.Y = 1
	}
	if k.Down {
		d.Y = -1
	}
	if k.Forward {
		d.Z = 1
	}
	if k.Back {
		d.Z = -1
	}
	return d
}

// Step advances the simulation by one tick. The field of view changes by
// one degree per tick regardless of elapsed time; camera movement is
// scaled by elapsed.
func (s *Simulation) Step(keys KeyState, elapsed time.Duration) {
	direction := keys.Direction()

	if keys.FOVUp {
		s.setFOV(s.FOV + 1)
	}
	if keys.FOVDown {
		s.setFOV(s.FOV - 1)
	}

	s.Camera = s.Camera.Add(direction.Scale(cameraSpeed * elapsed.Seconds()))
}

// Visible calls fn with the screen position of every point in front of the
// camera, in the order the points are stored.
func (s *Simulation) Visible(points []Vector3, fn func(x, y float64)) {
	cx, cy := s.screenWidth/2, s.screenHeight/2
	for _, p := range points {
		x, y, ok := ProjectPoint(p.Sub(s.Camera), s.ViewingDistance)
		if !ok {
			continue
		}
		fn(x+cx, y+cy)
	}
}

func (s *Simulation) DebugLines() [3]string {
	return [3]string{
		fmt.Sprintf("Camera = %v", s.Camera),
		fmt.Sprintf("FOV = %d", int(s.FOV)),
		fmt.Sprintf("Viewing Distance = %.3f", s.ViewingDistance),
	}
}
