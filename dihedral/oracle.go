package dihedral

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/dihedral/utils"
)

// Step sizes of the forward difference oracles. The atan2 terms are evaluated
// right at the singular functions and take the smallest step.
const (
	Atan2Step     = 1.e-9
	NormalizeStep = 1.e-6
	AngleStep     = 1.e-5
	VertexStep    = 1.e-5
)

// perturbed evaluates f with x[i] shifted by step. x[i] is restored to its
// original bits before returning, including when f panics.
func perturbed[T any](x []float64, i int, step float64, f func() T) T {
	orig := x[i]
	defer func() { x[i] = orig }()
	x[i] += step
	return f()
}

// ForwardGradient estimates ∂f/∂x by forward differences, one coordinate at a
// time, perturbing x in place
func ForwardGradient(f func(x []float64) float64, x []float64, step float64) (g []float64) {
	var (
		f0 = f(x)
	)
	g = make([]float64, len(x))
	for i := range x {
		fi := perturbed(x, i, step, func() float64 { return f(x) })
		g[i] = (fi - f0) / step
	}
	return
}

// ForwardDThetaDCos moves cos by step and keeps the point on the unit circle
// on the same side: sin' = sign(sin)·sqrt(1 - cos'²)
func ForwardDThetaDCos(cos, sin, step float64) float64 {
	var (
		theta0 = Atan2(cos, sin)
		newCos = cos + step
		newSin = utils.Sign(sin) * math.Sqrt(1-newCos*newCos)
	)
	return (Atan2(newCos, newSin) - theta0) / step
}

func ForwardDThetaDSin(cos, sin, step float64) float64 {
	var (
		theta0 = Atan2(cos, sin)
		newSin = sin + step
		newCos = utils.Sign(cos) * math.Sqrt(1-newSin*newSin)
	)
	return (Atan2(newCos, newSin) - theta0) / step
}

// ForwardNormalizeJacobian estimates d(x/|x|)/dx column by column
func ForwardNormalizeJacobian(x []float64, step float64) (J *r3.Mat) {
	var (
		xHat0 = utils.Normalize(utils.NewVec(x))
	)
	J = r3.NewMat(nil)
	for j := range x {
		col := perturbed(x, j, step, func() r3.Vec {
			return r3.Scale(1/step, r3.Sub(utils.Normalize(utils.NewVec(x)), xHat0))
		})
		J.Set(0, j, col.X)
		J.Set(1, j, col.Y)
		J.Set(2, j, col.Z)
	}
	return
}

// Which input of DihedralAngle to differentiate
type AngleInput uint8

const (
	InputN0 AngleInput = iota
	InputN1
	InputE
)

func (ai AngleInput) String() string {
	return [...]string{"n0", "n1", "e"}[ai]
}

// ForwardDThetaDInput estimates ∂θ/∂n0, ∂θ/∂n1 or ∂θ/∂e
func ForwardDThetaDInput(n0, n1, e r3.Vec, which AngleInput, step float64) r3.Vec {
	var (
		args = [3][]float64{utils.VecGetF64(n0), utils.VecGetF64(n1), utils.VecGetF64(e)}
		x    = args[which]
	)
	g := ForwardGradient(func(_ []float64) float64 {
		return DihedralAngle(utils.NewVec(args[0]), utils.NewVec(args[1]), utils.NewVec(args[2]))
	}, x, step)
	return utils.NewVec(g)
}

// ForwardDThetaDVertex estimates ∂θ/∂vk by perturbing the vertex in place
func ForwardDThetaDVertex(h Hinge, k int, step float64) r3.Vec {
	x := h.Coords()
	g := ForwardGradient(func(_ []float64) float64 {
		return HingeFromCoords(x).Angle()
	}, x[3*k:3*k+3], step)
	return utils.NewVec(g)
}

func ForwardHingeGradient(h Hinge, step float64) *mat.VecDense {
	g := ForwardGradient(func(x []float64) float64 {
		return HingeFromCoords(x).Angle()
	}, h.Coords(), step)
	return mat.NewVecDense(len(g), g)
}

// CentralGradient is a second order accurate cross check using gonum's
// finite difference package
func CentralGradient(f func(x []float64) float64, x []float64, step float64) []float64 {
	return fd.Gradient(nil, f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
}

func CentralHingeGradient(h Hinge, step float64) *mat.VecDense {
	g := CentralGradient(func(x []float64) float64 {
		return HingeFromCoords(x).Angle()
	}, h.Coords(), step)
	return mat.NewVecDense(len(g), g)
}

// CentralNormalizeJacobian estimates d(x/|x|)/dx with gonum's fd.Jacobian
func CentralNormalizeJacobian(x r3.Vec, step float64) *mat.Dense {
	J := mat.NewDense(3, 3, nil)
	fd.Jacobian(J, func(y, x []float64) {
		copy(y, utils.VecGetF64(utils.Normalize(utils.NewVec(x))))
	}, utils.VecGetF64(x), &fd.JacobianSettings{
		Formula: fd.Central,
		Step:    step,
	})
	return J
}
