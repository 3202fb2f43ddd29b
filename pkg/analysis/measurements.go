package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gosensors/pkg/geometry"
)

// SpacingInfo is the distance from one sensor to its nearest neighbour
type SpacingInfo struct {
	Index    int
	Neighbor int
	Distance float64
}

// Summary contains measurements of a sensor layout
type Summary struct {
	Count       int
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	Centroid    geometry.Vector3
	MinSpacing  float64
	MaxSpacing  float64
	AvgSpacing  float64
	Spacings    []SpacingInfo
}

// Summarize measures a sensor layout. Spacing is the nearest neighbour
// distance of each sensor; it is zero for layouts with fewer than 2 sensors.
func Summarize(points geometry.PointList) *Summary {
	summary := &Summary{
		Count:       len(points),
		BoundingBox: points.BoundingBox(),
		Centroid:    points.Centroid(),
	}
	if len(points) == 0 {
		return summary
	}
	summary.Dimensions = summary.BoundingBox.Size()
	if len(points) < 2 {
		return summary
	}

	summary.Spacings = make([]SpacingInfo, len(points))
	minSpacing := math.MaxFloat64
	maxSpacing := 0.0
	total := 0.0

	for i, p := range points {
		nearest := SpacingInfo{Index: i, Neighbor: -1, Distance: math.MaxFloat64}
		for j, q := range points {
			if i == j {
				continue
			}
			if d := p.Distance(q); d < nearest.Distance {
				nearest.Neighbor = j
				nearest.Distance = d
			}
		}
		summary.Spacings[i] = nearest

		total += nearest.Distance
		minSpacing = math.Min(minSpacing, nearest.Distance)
		maxSpacing = math.Max(maxSpacing, nearest.Distance)
	}

	summary.MinSpacing = minSpacing
	summary.MaxSpacing = maxSpacing
	summary.AvgSpacing = total / float64(len(points))
	return summary
}

// ClosestPairs returns the count sensors with the smallest spacing
func ClosestPairs(summary *Summary, count int) []SpacingInfo {
	spacings := make([]SpacingInfo, len(summary.Spacings))
	copy(spacings, summary.Spacings)

	sort.SliceStable(spacings, func(i, j int) bool {
		return spacings[i].Distance < spacings[j].Distance
	})

	if count > len(spacings) {
		count = len(spacings)
	}
	return spacings[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
