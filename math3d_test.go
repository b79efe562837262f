package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	a := Vector3{X: 1.5, Y: -2.25, Z: 300}
	b := Vector3{X: -0.1, Y: 7, Z: 1e-3}

	got := a.Add(b).Sub(b)
	assert.InDelta(t, a.X, got.X, 1e-9)
	assert.InDelta(t, a.Y, got.Y, 1e-9)
	assert.InDelta(t, a.Z, got.Z, 1e-9)

	assert.Equal(t, a, a.Scale(1))
	assert.Equal(t, Vector3{X: 3, Y: -4.5, Z: 600}, a.Scale(2))
}

func TestVector3Magnitude(t *testing.T) {
	assert.Equal(t, 5.0, Vector3{X: 3, Y: 4}.Magnitude())
	assert.Equal(t, 0.0, Vector3{}.Magnitude())
	assert.InDelta(t, 13.0, Vector3{X: -3, Y: 4, Z: 12}.Magnitude(), 1e-12)
}

func TestVector3String(t *testing.T) {
	assert.Equal(t, "Vector3(0.00, 0.00, -700.00)", cameraStart.String())
	assert.Equal(t, "Vector3(1.23, -4.57, 0.10)", Vector3{X: 1.234, Y: -4.567, Z: 0.1}.String())
}
