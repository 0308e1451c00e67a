package dihedral

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/notargets/dihedral/utils"
)

// MismatchError is an analytic derivative disagreeing with its numerical estimate
type MismatchError struct {
	Check    string
	Sample   int
	Analytic []float64
	Numeric  []float64
	Err, Tol float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s sample %d: analytic %v numeric %v, error %g exceeds %g",
		e.Check, e.Sample, e.Analytic, e.Numeric, e.Err, e.Tol)
}

// DomainError is degenerate input surfacing as a non finite value
type DomainError struct {
	Check    string
	Sample   int
	Quantity string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s sample %d: %s is not finite, degenerate input", e.Check, e.Sample, e.Quantity)
}

type Report struct {
	Check   string
	Samples int
	Skipped int
	MaxErr  float64
	Tol     float64
}

func (r Report) String() string {
	return fmt.Sprintf("[%s] %d samples (%d skipped), max error %.3e < %.1e",
		r.Check, r.Samples, r.Skipped, r.MaxErr, r.Tol)
}

func (r *Report) record(err float64) {
	if err > r.MaxErr || math.IsNaN(err) {
		r.MaxErr = err
	}
}

// Conditioning bounds the random hinges sampled by Checker.Hinges
type Conditioning struct {
	MinEdge, MinHeight, MaxAbsCos float64
}

var DefaultConditioning = Conditioning{MinEdge: 0.1, MinHeight: 0.1, MaxAbsCos: 0.99}

// RedrawsPerSample caps the rejected draws of a sampled check at
// RedrawsPerSample times the requested samples
const RedrawsPerSample = 1000

// Checker runs the analytic against numerical comparisons and prints one
// diagnostic line per comparison
type Checker struct {
	Out            io.Writer
	Quiet          bool
	ParallelDegree int // goroutines for the random hinge check, zero uses every CPU
	src            rand.Source
}

func NewChecker(out io.Writer, seed uint64, quiet bool) (c *Checker) {
	if out == nil {
		out = os.Stdout
	}
	c = &Checker{
		Out:   out,
		Quiet: quiet,
		src:   rand.NewPCG(seed, seed),
	}
	return
}

func (c *Checker) printf(format string, args ...any) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Out, format, args...)
}

// Atan2 compares ∂θ/∂cos and ∂θ/∂sin against forward differences on random
// points of the unit circle. Points within margin of the singularities at
// |cos| = 1 or |sin| = 1 are redrawn.
func (c *Checker) Atan2(samples int, step, tol, margin float64) (r Report, err error) {
	var (
		cosDist  = distuv.Uniform{Min: -1, Max: 1, Src: c.src}
		signDist = distuv.Uniform{Min: -1, Max: 1, Src: c.src}
	)
	r = Report{Check: "atan2", Tol: tol}
	for n := 0; n < samples; {
		cos := cosDist.Rand()
		sin := math.Sqrt(1-cos*cos) * utils.Sign(signDist.Rand())
		if math.Abs(cos) > 1-margin || math.Abs(sin) > 1-margin {
			if r.Skipped++; r.Skipped > RedrawsPerSample*samples {
				err = fmt.Errorf("atan2: %d draws rejected, no point of the unit circle is outside margin %g",
					r.Skipped, margin)
				return
			}
			continue
		}
		for _, d := range []struct {
			name     string
			ana, num float64
		}{
			{"cos", DThetaDCos(cos, sin), ForwardDThetaDCos(cos, sin, step)},
			{"sin", DThetaDSin(cos, sin), ForwardDThetaDSin(cos, sin, step)},
		} {
			c.printf("%s %v %v\n", d.name, d.ana, d.num)
			relErr := utils.RelErr(d.ana, d.num, utils.RELFLOOR)
			if err = c.compare(&r, n, []float64{d.ana}, []float64{d.num}, relErr, tol); err != nil {
				return
			}
		}
		n++
		r.Samples = n
	}
	return
}

// Normalize compares the normalization Jacobian at x against forward differences
func (c *Checker) Normalize(x r3.Vec, step, tol float64) (r Report, err error) {
	var (
		ana = NormalizeJacobian(x)
		num = ForwardNormalizeJacobian(utils.VecGetF64(x), step)
	)
	r = Report{Check: "normalize", Tol: tol}
	c.printf("x %v\nana = \n%v\nnum = \n%v\n", utils.VecGetF64(x),
		mat.Formatted(ana, mat.Prefix("      ")), mat.Formatted(num, mat.Prefix("      ")))
	if utils.NotFinite(ana) {
		err = &DomainError{Check: r.Check, Quantity: "normalization Jacobian"}
		return
	}
	relErr := utils.MatMaxAbsDiff(ana, num) / math.Max(utils.MatMaxAbs(ana), utils.RELFLOOR)
	r.Samples = 1
	err = c.compare(&r, 0, ana.RawMatrix().Data, num.RawMatrix().Data, relErr, tol)
	return
}

// AngleInputs compares ∂θ/∂n0, ∂θ/∂n1 and ∂θ/∂e of a hinge by Euclidean distance
func (c *Checker) AngleInputs(h Hinge, step, tol float64) (r Report, err error) {
	var (
		n0, n1, e = h.EdgeAndNormals()
	)
	r = Report{Check: "angle inputs", Tol: tol}
	for _, which := range []AngleInput{InputN0, InputN1, InputE} {
		var ana r3.Vec
		switch which {
		case InputN0:
			ana = DThetaDN0(n0, n1, e)
		case InputN1:
			ana = DThetaDN1(n0, n1, e)
		case InputE:
			ana = DThetaDE(n0, n1, e)
		}
		num := ForwardDThetaDInput(n0, n1, e, which, step)
		c.printf("deriv_ana %s %v\nderiv_num %s %v\n", which, utils.VecGetF64(ana), which, utils.VecGetF64(num))
		if utils.NotFinite(ana) {
			err = &DomainError{Check: r.Check, Sample: int(which), Quantity: "∂θ/∂" + which.String()}
			return
		}
		a, b := utils.VecGetF64(ana), utils.VecGetF64(num)
		r.Samples++
		if err = c.compare(&r, int(which), a, b, floats.Distance(a, b, 2), tol); err != nil {
			return
		}
	}
	return
}

// Vertex compares ∂θ/∂v0 against forward differences by Euclidean distance
func (c *Checker) Vertex(h Hinge, step, tol float64) (r Report, err error) {
	r = Report{Check: "vertex", Tol: tol}
	c.printf("%v\nangle %v\n", h, h.Angle())
	var (
		ana     = h.DThetaDV0()
		num     = ForwardDThetaDVertex(h, 0, step)
		central = CentralHingeGradient(h, step)
	)
	c.printf("ana %v\nnum %v\ncentral %v\n", utils.VecGetF64(ana), utils.VecGetF64(num),
		central.RawVector().Data[0:3])
	if utils.NotFinite(ana) {
		err = &DomainError{Check: r.Check, Quantity: "∂θ/∂v0"}
		return
	}
	a, b := utils.VecGetF64(ana), utils.VecGetF64(num)
	r.Samples = 1
	err = c.compare(&r, 0, a, b, floats.Distance(a, b, 2), tol)
	return
}

func (c *Checker) RandomHinge() Hinge {
	var (
		dist = distuv.Uniform{Min: 0, Max: 1, Src: c.src}
		x    = make([]float64, 12)
	)
	for i := range x {
		x[i] = dist.Rand()
	}
	return HingeFromCoords(x)
}

// Hinges compares the full 12 component gradient of random hinges, skipping
// those outside of cond. Hinges are drawn in order from the checker's source,
// the gradients are evaluated over ParallelDegree goroutines.
func (c *Checker) Hinges(samples int, step, tol float64, cond Conditioning) (r Report, err error) {
	var (
		hinges   = make([]Hinge, 0, samples)
		ana, num = make([]*mat.VecDense, samples), make([]*mat.VecDense, samples)
		wg       sync.WaitGroup
	)
	r = Report{Check: "hinge", Tol: tol}
	for len(hinges) < samples {
		h := c.RandomHinge()
		if !h.WellConditioned(cond.MinEdge, cond.MinHeight, cond.MaxAbsCos) {
			if r.Skipped++; r.Skipped > RedrawsPerSample*samples {
				err = fmt.Errorf("hinge: %d draws rejected, %+v is unreachable in the unit cube",
					r.Skipped, cond)
				return
			}
			continue
		}
		hinges = append(hinges, h)
	}
	pm := utils.NewPartitionMap(utils.ParallelDegree(c.ParallelDegree, samples), samples)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for n := kMin; n < kMax; n++ {
				ana[n] = hinges[n].GradientVector()
				num[n] = ForwardHingeGradient(hinges[n], step)
			}
		}(np)
	}
	wg.Wait()
	for n := range hinges {
		if utils.NotFinite(ana[n]) {
			err = &DomainError{Check: r.Check, Sample: n, Quantity: "hinge gradient"}
			return
		}
		for k, g := range utils.VecSplit(ana[n]) {
			a, b := utils.VecGetF64(g), num[n].RawVector().Data[3*k:3*k+3]
			c.printf("sample %d v%d ana %v num %v\n", n, k, a, b)
			if err = c.compare(&r, n, a, b, floats.Distance(a, b, 2), tol); err != nil {
				return
			}
		}
		r.Samples = n + 1
	}
	return
}

// Bending compares the bending force of a deformed hinge against forward
// differences of the bending energy
func (c *Checker) Bending(rest, deformed Hinge, stiffness, step, tol float64) (r Report, err error) {
	var (
		be *BendingElement
	)
	r = Report{Check: "bending", Tol: tol}
	if be, err = NewBendingElement(rest, stiffness); err != nil {
		return
	}
	var (
		ana = be.Gradient(deformed)
		num = ForwardGradient(func(x []float64) float64 {
			return be.Energy(HingeFromCoords(x))
		}, deformed.Coords(), step)
	)
	c.printf("theta_ideal %v theta %v energy %v\n", be.ThetaIdeal, deformed.Angle(), be.Energy(deformed))
	c.printf("ana %v\nnum %v\n", ana.RawVector().Data, num)
	if utils.NotFinite(ana) {
		err = &DomainError{Check: r.Check, Quantity: "bending gradient"}
		return
	}
	a := ana.RawVector().Data
	r.Samples = 1
	err = c.compare(&r, 0, a, num, utils.VecRelErr(a, num, utils.RELFLOOR), tol)
	return
}

func (c *Checker) compare(r *Report, sample int, ana, num []float64, measured, tol float64) error {
	r.record(measured)
	if !(measured < tol) {
		// mismatches are printed even when quiet
		fmt.Fprintf(c.Out, "%s mismatch: %v %v\n", r.Check, ana, num)
		return &MismatchError{
			Check:    r.Check,
			Sample:   sample,
			Analytic: ana,
			Numeric:  num,
			Err:      measured,
			Tol:      tol,
		}
	}
	return nil
}
