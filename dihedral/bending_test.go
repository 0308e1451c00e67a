package dihedral

import (
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/dihedral/utils"
)

func deformedHinge() (h Hinge) {
	h = referenceHinge()
	h.V[3] = r3.Add(h.V[3], r3.Vec{X: 0.05, Y: -0.03, Z: 0.02})
	return
}

func TestBendingElement(t *testing.T) {
	rest := referenceHinge()
	be, err := NewBendingElement(rest, 1.5)
	require.NoError(t, err)
	{
		a0, a1 := rest.Areas()
		l := r3.Norm(rest.Edge())
		assert.InDelta(t, l*l/(2*(a0+a1)), be.Shape, 1.e-15)
		assert.Equal(t, rest.Angle(), be.ThetaIdeal)
	}
	// At rest
	assert.Zero(t, be.Energy(rest))
	assert.Zero(t, utils.MatMaxAbs(be.Gradient(rest)))

	h := deformedHinge()
	dTheta := h.Angle() - be.ThetaIdeal
	require.NotZero(t, dTheta)
	assert.InDelta(t, 1.5*be.Shape*dTheta*dTheta/4, be.Energy(h), 1.e-15)
	// Energy is even in θ - θ̄
	assert.Greater(t, be.Energy(h), 0.)

	var (
		ana    = be.Gradient(h).RawVector().Data
		energy = func(x []float64) float64 { return be.Energy(HingeFromCoords(x)) }
	)
	num := ForwardGradient(energy, h.Coords(), 1.e-6)
	assert.Less(t, utils.VecRelErr(ana, num, utils.RELFLOOR), 1.e-2)
	central := CentralGradient(energy, h.Coords(), 1.e-5)
	assert.Less(t, utils.VecRelErr(ana, central, utils.RELFLOOR), 1.e-5)

	force := be.Force(h).RawVector().Data
	for i := range ana {
		assert.Equal(t, -ana[i], force[i])
	}
}

func TestBendingHessian(t *testing.T) {
	var (
		rest = referenceHinge()
		h    = deformedHinge()
	)
	be, err := NewBendingElement(rest, 2)
	require.NoError(t, err)
	H := be.Hessian(h)
	require.Equal(t, 12, H.SymmetricDim())
	{
		// Rank one along ∂θ/∂x
		g := h.GradientVector().RawVector().Data
		for i := 0; i < 12; i++ {
			for j := 0; j < 12; j++ {
				assert.InDelta(t, 2*be.Shape/2*g[i]*g[j], H.At(i, j), 1.e-12)
			}
		}
		var es mat.EigenSym
		require.True(t, es.Factorize(H, false))
		vals := es.Values(nil)
		top := vals[len(vals)-1]
		assert.InDelta(t, be.Shape*floats.Dot(g, g), top, 1.e-10*top)
		for _, v := range vals[:len(vals)-1] {
			assert.InDelta(t, 0., v, 1.e-10*top)
		}
	}
	// At rest the curvature of θ drops out and the approximation is exact
	{
		var (
			x   = rest.Coords()
			jac = mat.NewDense(12, 12, nil)
		)
		fd.Jacobian(jac, func(y, x []float64) {
			copy(y, be.Gradient(HingeFromCoords(x)).RawVector().Data)
		}, x, &fd.JacobianSettings{
			Formula: fd.Central,
			Step:    1.e-6,
		})
		H = be.Hessian(rest)
		assert.Less(t, utils.MatMaxAbsDiff(H, jac), 1.e-5*utils.MatMaxAbs(H))
	}
}

func TestBendingDegenerateRest(t *testing.T) {
	h := referenceHinge()
	h.V[2] = h.V[1]
	_, err := NewBendingElement(h, 1)
	assert.Error(t, err)

	// Flat sliver, all four points on a line
	h = NewHinge(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 2}, r3.Vec{X: 3})
	_, err = NewBendingElement(h, 1)
	assert.Error(t, err)
}
