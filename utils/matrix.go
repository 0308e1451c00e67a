package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MatMaxAbs returns the largest absolute element of M
func MatMaxAbs(M mat.Matrix) (max float64) {
	var (
		nr, nc = M.Dims()
	)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			if val := math.Abs(M.At(i, j)); val > max {
				max = val
			}
		}
	}
	return
}

func MatMaxAbsDiff(A, B mat.Matrix) (max float64) {
	var (
		nr, nc   = A.Dims()
		nrB, ncB = B.Dims()
	)
	if nr != nrB || nc != ncB {
		panic(mat.ErrShape)
	}
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			if val := math.Abs(A.At(i, j) - B.At(i, j)); val > max {
				max = val
			}
		}
	}
	return
}

// IsSymmetric checks M == Mᵀ element wise within tol, absolute or relative
func IsSymmetric(M mat.Matrix, tol float64) bool {
	var (
		nr, nc = M.Dims()
	)
	if nr != nc {
		return false
	}
	return mat.EqualApprox(M, M.T(), tol)
}

// IsSkewSymmetric checks |M + Mᵀ| < tol in the Frobenius norm
func IsSkewSymmetric(M mat.Matrix, tol float64) bool {
	var (
		nr, nc = M.Dims()
		sum    mat.Dense
	)
	if nr != nc {
		return false
	}
	sum.Add(M, M.T())
	return mat.Norm(&sum, 2) < tol
}
