package dihedral

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/dihedral/utils"
)

/*
Derivatives of θ = atan2(sin, cos) along the unit circle, where the other
argument follows as ±sqrt(1 - x²) with its sign held fixed:

	∂θ/∂cos = -sign(sin) / sqrt(1 - cos²)
	∂θ/∂sin =  sign(cos) / sqrt(1 - sin²)

Both are singular as |cos| → 1 (resp. |sin| → 1), near θ = 0, ±π (resp. ±π/2).
*/
func DThetaDCos(cos, sin float64) float64 {
	return -utils.Sign(sin) / math.Sqrt(1-cos*cos)
}

func DThetaDSin(cos, sin float64) float64 {
	return utils.Sign(cos) / math.Sqrt(1-sin*sin)
}

// NormalizeJacobian is d(x/|x|)/dx = (I - x̂x̂ᵀ)/|x|. It is symmetric and x̂ lies
// in its null space.
func NormalizeJacobian(x r3.Vec) (J *r3.Mat) {
	var (
		xNorm = r3.Norm(x)
		xHat  = utils.Normalize(x)
	)
	J = r3.NewMat(nil)
	J.Sub(r3.Eye(), utils.VecOuter(1, xHat, xHat))
	J.Scale(1/xNorm, J)
	return
}
