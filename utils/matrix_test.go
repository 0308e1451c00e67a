package utils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	M := mat.NewDense(2, 3, []float64{
		1, -2, 3,
		4, 5, -6,
	})
	assert.Equal(t, 6., MatMaxAbs(M))
	// MaxAbsDiff
	{
		N := mat.NewDense(2, 3, []float64{
			1, -2, 3,
			4, 5.5, -6,
		})
		assert.Equal(t, 0.5, MatMaxAbsDiff(M, N))
		assert.Panics(t, func() { MatMaxAbsDiff(M, M.T()) })
	}
	// Symmetry
	{
		assert.False(t, IsSymmetric(M, 1))
		assert.True(t, IsSymmetric(r3.Eye(), 0))
		S := mat.NewDense(3, 3, []float64{
			1, 2, 3,
			2, 4, 5,
			3, 5, 6,
		})
		assert.True(t, IsSymmetric(S, 0))
		S.Set(0, 2, 3+1e-3)
		assert.False(t, IsSymmetric(S, 1e-4))
		assert.True(t, IsSymmetric(S, 1e-2))
		// Large entries are compared relative to their size
		S.Scale(1e6, S)
		S.Set(0, 2, 3e6+1e-3)
		assert.True(t, IsSymmetric(S, 1e-6))
		assert.False(t, IsSymmetric(S, 1e-12))
	}
	// Skew symmetry
	{
		assert.False(t, IsSkewSymmetric(M, 1))
		A := mat.NewDense(3, 3, []float64{
			0, 1, -2,
			-1, 0, 3,
			2, -3, 0,
		})
		assert.True(t, IsSkewSymmetric(A, 1e-12))
	}
}

func TestMath(t *testing.T) {
	assert.Equal(t, 1., Sign(0))
	assert.Equal(t, 1., Sign(math.Copysign(0, -1)))
	assert.Equal(t, -1., Sign(-1e-300))
	assert.Equal(t, 1., Sign(2))
	// Relative error against the reference a
	assert.InDelta(t, 0.1, RelErr(10, 11, RELFLOOR), 1e-15)
	assert.InDelta(t, 0.1, RelErr(-10, -11, RELFLOOR), 1e-15)
	// Small references are measured against the floor, symmetric in sign
	assert.InDelta(t, RelErr(1e-12, 1e-10, 1e-9), RelErr(-1e-12, -1e-10, 1e-9), 1e-15)
	assert.InDelta(t, 0.099, RelErr(1e-12, 1e-10, 1e-9), 1e-12)
	assert.Equal(t, 0., RelErr(0, 0, RELFLOOR))
	// Vector form
	assert.InDelta(t, 0.2, VecRelErr([]float64{3, 4}, []float64{3, 5}, RELFLOOR), 1e-15)
	assert.Panics(t, func() { VecRelErr([]float64{1}, []float64{1, 2}, RELFLOOR) })
	// A zero reference is measured against the floor
	assert.InDelta(t, 5e9, VecRelErr([]float64{0, 0}, []float64{3, 4}, RELFLOOR), 1e-3)
}

func TestNan(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	assert.False(t, IsNan(1.))
	assert.True(t, IsNan(nan))
	assert.False(t, IsNan(inf))
	assert.True(t, NotFinite(inf))
	assert.True(t, NotFinite([]float64{0, 1, -inf}))
	assert.False(t, NotFinite([]float64{0, 1, 2}))
	assert.True(t, IsNan(r3.Vec{Y: nan}))
	assert.True(t, IsNan([4]r3.Vec{{}, {}, {}, {Z: nan}}))
	assert.False(t, NotFinite([]r3.Vec{{X: 1}, {Y: 1}}))
	M := r3.Eye()
	assert.False(t, NotFinite(M))
	M.Set(1, 2, inf)
	assert.True(t, NotFinite(M))
	assert.True(t, IsNan(mat.NewVecDense(2, []float64{1, nan})))
	assert.Panics(t, func() { IsNan("string") })
	assert.NotEmpty(t, GetMemUsage())
}
