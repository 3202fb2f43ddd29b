package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/philipparndt/gosensors/pkg/geometry"
)

// SphereFit is the head sphere that best matches a sensor layout
type SphereFit struct {
	Center geometry.Vector3
	Radius float64
	StdDev float64 // RMS distance of the sensors from the sphere surface
}

// FitSphere fits a sphere to the points by linear least squares on
//
//	x²+y²+z² = 2ax + 2by + 2cz + d
//
// with center (a, b, c) and radius² = d + a²+b²+c².
func FitSphere(points geometry.PointList) (*SphereFit, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("need at least 4 points to fit a sphere, got %d", len(points))
	}

	a := mat.NewDense(len(points), 4, nil)
	b := mat.NewVecDense(len(points), nil)
	for i, p := range points {
		a.SetRow(i, []float64{2 * p.X, 2 * p.Y, 2 * p.Z, 1})
		b.SetVec(i, p.X*p.X+p.Y*p.Y+p.Z*p.Z)
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("points do not span a sphere: %w", err)
	}

	center := geometry.NewVector3(x.AtVec(0), x.AtVec(1), x.AtVec(2))
	r2 := x.AtVec(3) + center.X*center.X + center.Y*center.Y + center.Z*center.Z
	if !(r2 > 0) {
		return nil, fmt.Errorf("points do not span a sphere")
	}
	radius := math.Sqrt(r2)

	var sumError float64
	for _, p := range points {
		d := p.Distance(center) - radius
		sumError += d * d
	}

	return &SphereFit{
		Center: center,
		Radius: radius,
		StdDev: math.Sqrt(sumError / float64(len(points))),
	}, nil
}
