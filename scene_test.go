package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCubeEdges(t *testing.T) {
	points := BuildCubeEdges(cubeSize, latticeStep)

	// 12 edges with 14 inner lattice points each, plus 8 corners
	require.Len(t, points, 12*14+8)

	half := float64(cubeSize) / 2
	onFace := func(v float64) int {
		if v == -half || v == half {
			return 1
		}
		return 0
	}
	seen := make(map[Vector3]bool)
	for _, p := range points {
		assert.GreaterOrEqual(t, onFace(p.X)+onFace(p.Y)+onFace(p.Z), 2, "%v", p)
		assert.False(t, seen[p], "duplicate %v", p)
		seen[p] = true
	}
	assert.True(t, seen[Vector3{X: -150, Y: -150, Z: -150}])
	assert.True(t, seen[Vector3{X: 150, Y: 150, Z: 150}])
	assert.False(t, seen[Vector3{X: -150, Y: -10, Z: -10}], "face interior")
	assert.False(t, seen[Vector3{X: -10, Y: -10, Z: -10}], "volume interior")
}

func TestBuildCubeEdgesSortedByDepth(t *testing.T) {
	points := BuildCubeEdges(cubeSize, latticeStep)
	require.NotEmpty(t, points)

	assert.Equal(t, 150.0, points[0].Z)
	assert.Equal(t, -150.0, points[len(points)-1].Z)
	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i-1].Z, points[i].Z)
	}
}

func TestBuildCubeEdgesSmall(t *testing.T) {
	// step equal to the size leaves only the corners
	assert.Len(t, BuildCubeEdges(10, 10), 8)
}
