// Package transform reads 4x4 homogeneous transformation matrices and
// applies them to sensor positions.
package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/philipparndt/gosensors/pkg/geometry"
)

// Affine is a 4x4 row-major homogeneous transform. Rows 0-2 hold the linear
// part and the translation; row 3 is expected to be [0 0 0 1] but is not
// checked.
type Affine struct {
	m *mat.Dense
}

// NewAffine creates a transform from its rows
func NewAffine(rows [4][4]float64) Affine {
	data := make([]float64, 0, 16)
	for _, row := range rows {
		data = append(data, row[:]...)
	}
	return Affine{m: mat.NewDense(4, 4, data)}
}

// Identity returns the transform that leaves every point unchanged
func Identity() Affine {
	return NewAffine([4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Rows returns the matrix as rows
func (a Affine) Rows() [4][4]float64 {
	var rows [4][4]float64
	if a.m == nil {
		return Identity().Rows()
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			rows[i][j] = a.m.At(i, j)
		}
	}
	return rows
}

// Matrix returns a copy of the underlying matrix
func (a Affine) Matrix() *mat.Dense {
	if a.m == nil {
		return Identity().Matrix()
	}
	return mat.DenseCopyOf(a.m)
}

// Apply maps a single point, using 1 as its homogeneous coordinate
func (a Affine) Apply(p geometry.Vector3) geometry.Vector3 {
	if a.m == nil {
		return p
	}
	var out mat.VecDense
	out.MulVec(a.m, mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1}))
	return geometry.NewVector3(out.AtVec(0), out.AtVec(1), out.AtVec(2))
}

// Mul returns the transform that applies b first and then a
func (a Affine) Mul(b Affine) Affine {
	var out mat.Dense
	out.Mul(a.Matrix(), b.Matrix())
	return Affine{m: &out}
}

func (a Affine) String() string {
	return fmt.Sprintf("%v", mat.Formatted(a.Matrix(), mat.Squeeze()))
}
