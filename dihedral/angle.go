package dihedral

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/dihedral/utils"
)

// AngleComponents returns cos = n̂0·n̂1 and sin = ê·(n̂0 x n̂1). None of the
// inputs need to be normalized, but all must be non-zero.
func AngleComponents(n0, n1, e r3.Vec) (cos, sin float64) {
	var (
		bn0 = utils.Normalize(n0)
		bn1 = utils.Normalize(n1)
		be  = utils.Normalize(e)
	)
	cos = r3.Dot(bn0, bn1)
	sin = r3.Dot(be, utils.Cross(bn0, bn1))
	return
}

// DihedralAngle is the signed bending angle in (-π, π]. It is invariant under
// positive scaling of any of n0, n1 and e.
func DihedralAngle(n0, n1, e r3.Vec) float64 {
	return Atan2(AngleComponents(n0, n1, e))
}

// Atan2 takes its arguments in (cos, sin) order
func Atan2(cos, sin float64) float64 {
	return math.Atan2(sin, cos)
}
