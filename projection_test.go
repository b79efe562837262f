package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewingDistance(t *testing.T) {
	assert.InDelta(t, 320.0, ViewingDistance(math.Pi/2, 640), 1e-9)
	assert.InDelta(t, 320.0, viewingDistanceDeg(90, 640), 1e-9)

	prev := math.Inf(1)
	for fov := minFOV; fov <= maxFOV; fov++ {
		d := viewingDistanceDeg(fov, 640)
		assert.Less(t, d, prev, "fov %v", fov)
		assert.Greater(t, d, 0.0, "fov %v", fov)
		prev = d
	}
}

func TestProjectPoint(t *testing.T) {
	x, y, ok := ProjectPoint(Vector3{Z: 100}, 320)
	assert.True(t, ok)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y, ok = ProjectPoint(Vector3{X: 50, Z: 100}, 320)
	assert.True(t, ok)
	assert.Equal(t, 160.0, x)
	assert.Equal(t, 0.0, y)

	// world up is screen up
	_, y, ok = ProjectPoint(Vector3{Y: 50, Z: 100}, 320)
	assert.True(t, ok)
	assert.Equal(t, -160.0, y)
}

func TestProjectPointNearPlane(t *testing.T) {
	for _, z := range []float64{20, 0, -5, -700} {
		_, _, ok := ProjectPoint(Vector3{X: 10, Y: 10, Z: z}, 320)
		assert.False(t, ok, "z = %v", z)
	}
	_, _, ok := ProjectPoint(Vector3{Z: 20.0001}, 320)
	assert.True(t, ok)
}

func TestClampFOV(t *testing.T) {
	assert.Equal(t, 1.0, clampFOV(0))
	assert.Equal(t, 1.0, clampFOV(-30))
	assert.Equal(t, 179.0, clampFOV(180))
	assert.Equal(t, 90.0, clampFOV(90))
}
