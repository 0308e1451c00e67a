package dihedral

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/dihedral/utils"
)

// DThetaDN0 is ∂θ/∂n0 = ∂θ/∂cos · J(n0)ᵀ n̂1
func DThetaDN0(n0, n1, e r3.Vec) r3.Vec {
	cos, sin := AngleComponents(n0, n1, e)
	g := NormalizeJacobian(n0).MulVecTrans(utils.Normalize(n1))
	return r3.Scale(DThetaDCos(cos, sin), g)
}

// DThetaDN1 is ∂θ/∂n1 = ∂θ/∂cos · J(n1)ᵀ n̂0
func DThetaDN1(n0, n1, e r3.Vec) r3.Vec {
	cos, sin := AngleComponents(n0, n1, e)
	g := NormalizeJacobian(n1).MulVecTrans(utils.Normalize(n0))
	return r3.Scale(DThetaDCos(cos, sin), g)
}

// DThetaDE is ∂θ/∂e = ∂θ/∂sin · J(e)ᵀ (n̂0 x n̂1). For normals of a real hinge
// n̂0 x n̂1 is parallel to e and this vanishes.
func DThetaDE(n0, n1, e r3.Vec) r3.Vec {
	cos, sin := AngleComponents(n0, n1, e)
	g := NormalizeJacobian(e).MulVecTrans(
		utils.Cross(utils.Normalize(n0), utils.Normalize(n1)))
	return r3.Scale(DThetaDSin(cos, sin), g)
}

// DThetaDV0 maps ∂θ/∂n0 back to the vertex v0. Moving v0 by dv changes
// n0 = (v1-v0) x (v2-v1) by (v2-v1) x dv, so ∂n0/∂v0 = skew(v2-v1).
func (h Hinge) DThetaDV0() r3.Vec {
	n0, n1, e := h.EdgeAndNormals()
	return utils.SkewMatrix(e).MulVecTrans(DThetaDN0(n0, n1, e))
}

/*
Gradient returns ∂θ/∂vk for all four vertices. With a0 = v1-v0, b0 = v3-v1,
b1 = v2-v3 and d(p x q) = -skew(q) dp + skew(p) dq:

	∂n0/∂v0 = skew(v2-v1)   ∂n0/∂v1 = skew(v0-v2)   ∂n0/∂v2 = skew(v1-v0)
	∂n1/∂v1 = skew(v2-v3)   ∂n1/∂v2 = skew(v3-v1)   ∂n1/∂v3 = skew(v1-v2)
	∂e/∂v1 = -I             ∂e/∂v2 = I

The four gradients sum to zero since θ is unchanged by translation.
*/
func (h Hinge) Gradient() (g [4]r3.Vec) {
	var (
		v0, v1, v2, v3 = h.V[0], h.V[1], h.V[2], h.V[3]
		n0, n1, e      = h.EdgeAndNormals()
		gn0            = DThetaDN0(n0, n1, e)
		gn1            = DThetaDN1(n0, n1, e)
		ge             = DThetaDE(n0, n1, e)
		pull           = func(d, gn r3.Vec) r3.Vec {
			return utils.SkewMatrix(d).MulVecTrans(gn)
		}
	)
	g[0] = pull(e, gn0)
	g[1] = r3.Sub(r3.Add(pull(r3.Sub(v0, v2), gn0), pull(r3.Sub(v2, v3), gn1)), ge)
	g[2] = r3.Add(r3.Add(pull(r3.Sub(v1, v0), gn0), pull(r3.Sub(v3, v1), gn1)), ge)
	g[3] = pull(r3.Sub(v1, v2), gn1)
	return
}

// GradientVector packs Gradient into 12 components ordered like Coords
func (h Hinge) GradientVector() *mat.VecDense {
	g := h.Gradient()
	return utils.VecConcat(g[:]...)
}
