package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func Cross(a, b r3.Vec) r3.Vec {
	return r3.Cross(a, b)
}

// Normalize returns x/|x|. The zero vector has no direction and yields NaN
// components, callers are expected to supply non-degenerate input.
func Normalize(x r3.Vec) r3.Vec {
	return r3.Unit(x)
}

// SkewMatrix returns W such that W*y = v x y for all y
//
//	    ⎡ 0 -z  y⎤
//	W = ⎢ z  0 -x⎥
//	    ⎣-y  x  0⎦
func SkewMatrix(v r3.Vec) (W *r3.Mat) {
	W = r3.NewMat([]float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
	return
}

func SkewMatrixFromSlice(v []float64) (W *r3.Mat, err error) {
	if len(v) != 3 {
		err = fmt.Errorf("skew matrix needs a vector of length 3, have %d", len(v))
		return
	}
	W = SkewMatrix(NewVec(v))
	return
}

func NewVec(x []float64) (v r3.Vec) {
	if len(x) != 3 {
		panic(fmt.Errorf("unable to build 3-vector from %d values", len(x)))
	}
	v = r3.Vec{X: x[0], Y: x[1], Z: x[2]}
	return
}

func VecGetF64(v r3.Vec) (r []float64) {
	r = []float64{v.X, v.Y, v.Z}
	return
}

// VecConcat stacks 3-vectors into a single column, e.g. four vertex
// gradients into one 12 component gradient
func VecConcat(vs ...r3.Vec) (r *mat.VecDense) {
	var (
		N  = 3 * len(vs)
		rD = make([]float64, N)
	)
	for i, v := range vs {
		rD[3*i] = v.X
		rD[3*i+1] = v.Y
		rD[3*i+2] = v.Z
	}
	r = mat.NewVecDense(N, rD)
	return
}

// VecSplit is the inverse of VecConcat
func VecSplit(v mat.Vector) (vs []r3.Vec) {
	var (
		N = v.Len()
	)
	if N%3 != 0 {
		panic(fmt.Errorf("vector length %d is not a multiple of 3", N))
	}
	vs = make([]r3.Vec, N/3)
	for i := range vs {
		vs[i] = r3.Vec{X: v.AtVec(3 * i), Y: v.AtVec(3*i + 1), Z: v.AtVec(3*i + 2)}
	}
	return
}

// VecOuter returns alpha * A * Bᵀ
func VecOuter(alpha float64, A, B r3.Vec) (R *r3.Mat) {
	R = r3.NewMat(nil)
	R.Outer(alpha, A, B)
	return
}
