package geometry

// PointList is an ordered list of sensor positions. The index of a point is
// the index of the channel it becomes.
type PointList []Vector3

// BoundingBox calculates the bounding box of all points
func (p PointList) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, point := range p {
		bbox.Extend(point)
	}
	return bbox
}

// Centroid returns the mean position, or the zero vector for an empty list
func (p PointList) Centroid() Vector3 {
	if len(p) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, point := range p {
		sum = sum.Add(point)
	}
	return sum.Mul(1.0 / float64(len(p)))
}

// Clone returns a copy that shares no storage with p
func (p PointList) Clone() PointList {
	if p == nil {
		return nil
	}
	out := make(PointList, len(p))
	copy(out, p)
	return out
}
