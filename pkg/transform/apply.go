package transform

import "github.com/philipparndt/gosensors/pkg/geometry"

// Apply maps every point through a and returns the results in the same order
func Apply(points geometry.PointList, a Affine) geometry.PointList {
	out := make(geometry.PointList, len(points))
	for i, p := range points {
		out[i] = a.Apply(p)
	}
	return out
}
