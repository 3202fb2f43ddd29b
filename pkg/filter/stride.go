package filter

import (
	"github.com/philipparndt/gosensors/pkg/errkind"
	"github.com/philipparndt/gosensors/pkg/geometry"
)

// ValidateSkip returns an errkind.Range error unless skip >= 1
func ValidateSkip(skip int) error {
	if skip < 1 {
		return errkind.New(errkind.Range, "skip must be at least 1, got %d", skip)
	}
	return nil
}

// Stride takes every skip-th point, starting with the first
func Stride(points geometry.PointList, skip int) (geometry.PointList, error) {
	if err := ValidateSkip(skip); err != nil {
		return nil, err
	}
	out := make(geometry.PointList, 0, (len(points)+skip-1)/skip)
	for i := 0; i < len(points); i += skip {
		out = append(out, points[i])
	}
	return out, nil
}
