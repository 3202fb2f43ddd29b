// Package filter selects subsets of a sensor position list. Filters never
// modify their input; they return a new list.
package filter

import (
	"math"

	"github.com/philipparndt/gosensors/pkg/errkind"
	"github.com/philipparndt/gosensors/pkg/geometry"
)

// DefaultCutFraction is the share of the z-range treated as the bottom sphere
const DefaultCutFraction = 0.33

// BottomCut is the outcome of RemoveBottom
type BottomCut struct {
	Points    geometry.PointList
	Removed   int
	Threshold float64
}

// ValidateFraction returns an errkind.Range error unless 0 <= fraction <= 1
func ValidateFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return errkind.New(errkind.Range, "cut fraction must be between 0.0 and 1.0, got %v", fraction)
	}
	return nil
}

// RemoveBottom drops the points of the "bottom sphere": every point whose z
// lies below zmin + (zmax-zmin)*fraction. Points on the threshold are kept,
// so a fraction of 0 keeps everything and a fraction of 1 keeps only the
// points at zmax.
func RemoveBottom(points geometry.PointList, fraction float64) (BottomCut, error) {
	if err := ValidateFraction(fraction); err != nil {
		return BottomCut{}, err
	}
	if len(points) == 0 {
		return BottomCut{Points: geometry.PointList{}}, nil
	}

	bbox := points.BoundingBox()
	zmin, zmax := bbox.Min.Z, bbox.Max.Z
	threshold := math.Min(zmin+(zmax-zmin)*fraction, zmax)

	kept := make(geometry.PointList, 0, len(points))
	for _, p := range points {
		if p.Z >= threshold {
			kept = append(kept, p)
		}
	}

	return BottomCut{
		Points:    kept,
		Removed:   len(points) - len(kept),
		Threshold: threshold,
	}, nil
}
