package main

import "sort"

const (
	cubeSize    = 300
	latticeStep = 20
)

// BuildCubeEdges samples a cube of the given side on a lattice and keeps
// the points lying on at least two bounding faces, i.e. the cube edges.
// The cube is centered on the origin and the points are ordered far to
// near (descending Z).
func BuildCubeEdges(size, step int) []Vector3 {
	var points []Vector3
	onFace := func(v int) int {
		if v == 0 || v == size {
			return 1
		}
		return 0
	}

	half := float64(size) / 2
	for x := 0; x <= size; x += step {
		for y := 0; y <= size; y += step {
			for z := 0; z <= size; z += step {
				if onFace(x)+onFace(y)+onFace(z) < 2 {
					continue
				}
				points = append(points, Vector3{
					X: float64(x) - half,
					Y: float64(y) - half,
					Z: float64(z) - half,
				})
			}
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Z > points[j].Z
	})
	return points
}
