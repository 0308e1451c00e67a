package dihedral

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

/*
BendingElement is the dihedral bending energy of a cloth hinge

	E = k · shape · (θ - θ̄)² / 4,    shape = l² / (2a)

with l the rest length of the shared edge, a the summed rest area of both
faces and θ̄ the rest angle. shape is frozen at the rest configuration, so the
gradient only flows through θ.
*/
type BendingElement struct {
	Stiffness  float64
	ThetaIdeal float64
	Shape      float64
}

func NewBendingElement(rest Hinge, stiffness float64) (be *BendingElement, err error) {
	var (
		a0, a1 = rest.Areas()
		l      = r3.Norm(rest.Edge())
	)
	if a0+a1 == 0 || l == 0 {
		err = fmt.Errorf("degenerate rest hinge: edge length %g, area %g", l, a0+a1)
		return
	}
	be = &BendingElement{
		Stiffness:  stiffness,
		ThetaIdeal: rest.Angle(),
		Shape:      l * l / (2 * (a0 + a1)),
	}
	return
}

func (be *BendingElement) Energy(h Hinge) float64 {
	dTheta := h.Angle() - be.ThetaIdeal
	return be.Stiffness * be.Shape * dTheta * dTheta / 4
}

// Gradient is ∂E/∂x = k · shape · (θ - θ̄)/2 · ∂θ/∂x, ordered like Hinge.Coords
func (be *BendingElement) Gradient(h Hinge) (g *mat.VecDense) {
	dTheta := h.Angle() - be.ThetaIdeal
	g = h.GradientVector()
	g.ScaleVec(be.Stiffness*be.Shape*dTheta/2, g)
	return
}

func (be *BendingElement) Force(h Hinge) (f *mat.VecDense) {
	f = be.Gradient(h)
	f.ScaleVec(-1, f)
	return
}

// Hessian is the Gauss-Newton approximation k · shape/2 · (∂θ/∂x)(∂θ/∂x)ᵀ,
// dropping the curvature of θ itself so the result stays positive semidefinite
func (be *BendingElement) Hessian(h Hinge) (H *mat.SymDense) {
	g := h.GradientVector()
	H = mat.NewSymDense(g.Len(), nil)
	H.SymRankOne(H, be.Stiffness*be.Shape/2, g)
	return
}
