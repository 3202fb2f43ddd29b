package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gosensors/pkg/geometry"
)

func TestSummarize(t *testing.T) {
	points := geometry.PointList{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(4, 0, 0),
	}

	summary := Summarize(points)

	if summary.Count != 3 {
		t.Errorf("Count failed: expected 3, got %d", summary.Count)
	}
	if expected := geometry.NewVector3(4, 0, 0); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
	if math.Abs(summary.MinSpacing-1) > 1e-10 {
		t.Errorf("MinSpacing failed: expected 1, got %v", summary.MinSpacing)
	}
	if math.Abs(summary.MaxSpacing-3) > 1e-10 {
		t.Errorf("MaxSpacing failed: expected 3, got %v", summary.MaxSpacing)
	}
	if math.Abs(summary.AvgSpacing-5.0/3.0) > 1e-10 {
		t.Errorf("AvgSpacing failed: expected %v, got %v", 5.0/3.0, summary.AvgSpacing)
	}
	if summary.Spacings[2].Neighbor != 1 {
		t.Errorf("Neighbor failed: expected 1, got %d", summary.Spacings[2].Neighbor)
	}
}

func TestSummarizeSmallLayouts(t *testing.T) {
	empty := Summarize(nil)
	if empty.Count != 0 || empty.Spacings != nil {
		t.Errorf("Empty summary failed: got %+v", empty)
	}

	single := Summarize(geometry.PointList{geometry.NewVector3(1, 2, 3)})
	if single.Count != 1 || single.MinSpacing != 0 {
		t.Errorf("Single summary failed: got %+v", single)
	}
	if single.Centroid != geometry.NewVector3(1, 2, 3) {
		t.Errorf("Centroid failed: got %v", single.Centroid)
	}
}

func TestClosestPairs(t *testing.T) {
	points := geometry.PointList{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(10.5, 0, 0),
	}

	closest := ClosestPairs(Summarize(points), 5)
	if len(closest) != 3 {
		t.Fatalf("ClosestPairs failed: expected 3 entries, got %d", len(closest))
	}
	if closest[0].Index != 1 || closest[1].Index != 2 {
		t.Errorf("ClosestPairs order failed: got %+v", closest)
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(1, -0.5, 0.001))
	expected := "(1.000000, -0.500000, 0.001000)"
	if got != expected {
		t.Errorf("FormatVector failed: expected %s, got %s", expected, got)
	}
}
