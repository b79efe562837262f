package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	nearPlane = 20.0
	minFOV    = 1.0
	maxFOV    = 179.0
)

// ViewingDistance returns the distance from the eye to the projection plane
// for a horizontal field of view in radians. fov must stay inside (0, pi).
func ViewingDistance(fov, screenWidth float64) float64 {
	return (screenWidth / 2) / math.Tan(fov/2)
}

// viewingDistanceDeg is ViewingDistance with the field of view in degrees.
func viewingDistanceDeg(fov, screenWidth float64) float64 {
	return ViewingDistance(mgl64.DegToRad(fov), screenWidth)
}

// ProjectPoint projects a camera relative point onto the screen plane.
// The result is an offset from the screen center, y grows downwards.
// Points at or behind the near plane are rejected with ok == false.
func ProjectPoint(rel Vector3, viewingDistance float64) (x, y float64, ok bool) {
	if rel.Z <= nearPlane {
		return 0, 0, false
	}
	x = rel.X * viewingDistance / rel.Z
	y = -rel.Y * viewingDistance / rel.Z
	return x, y, true
}

func clampFOV(fov float64) float64 {
	return mgl64.Clamp(fov, minFOV, maxFOV)
}
