package geometry

import "testing"

func TestPointListBoundingBox(t *testing.T) {
	points := PointList{
		NewVector3(0, 0, -1),
		NewVector3(2, 1, 0.5),
		NewVector3(-1, 3, 4),
	}

	bbox := points.BoundingBox()
	if expected := NewVector3(-1, 0, -1); bbox.Min != expected {
		t.Errorf("BoundingBox min failed: expected %v, got %v", expected, bbox.Min)
	}
	if expected := NewVector3(2, 3, 4); bbox.Max != expected {
		t.Errorf("BoundingBox max failed: expected %v, got %v", expected, bbox.Max)
	}
}

func TestPointListCentroid(t *testing.T) {
	points := PointList{
		NewVector3(0, 0, 0),
		NewVector3(2, 4, 6),
	}

	if centroid, expected := points.Centroid(), NewVector3(1, 2, 3); centroid != expected {
		t.Errorf("Centroid failed: expected %v, got %v", expected, centroid)
	}
	if centroid := (PointList{}).Centroid(); centroid != (Vector3{}) {
		t.Errorf("Centroid of empty list failed: expected zero vector, got %v", centroid)
	}
}

func TestPointListClone(t *testing.T) {
	points := PointList{NewVector3(1, 2, 3)}
	clone := points.Clone()
	clone[0] = NewVector3(9, 9, 9)

	if points[0] != NewVector3(1, 2, 3) {
		t.Errorf("Clone failed: original modified to %v", points[0])
	}
}
