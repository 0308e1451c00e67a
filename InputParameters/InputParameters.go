package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"

	"github.com/notargets/dihedral/dihedral"
)

// Parameters obtained from the YAML input file. ghodss/yaml converts to JSON
// before unmarshaling, so the field names are set with json tags.
type CheckParameters struct {
	Title             string       `json:"Title"`
	Seed              uint64       `json:"Seed"`
	Samples           int          `json:"Samples"`      // atan2 samples
	HingeSamples      int          `json:"HingeSamples"` // random hinge samples
	Atan2Step         float64      `json:"Atan2Step"`
	NormalizeStep     float64      `json:"NormalizeStep"`
	AngleStep         float64      `json:"AngleStep"`
	VertexStep        float64      `json:"VertexStep"`
	BendingStep       float64      `json:"BendingStep"`
	Atan2Tolerance    float64      `json:"Atan2Tolerance"`
	NormalizeTol      float64      `json:"NormalizeTolerance"`
	VertexTolerance   float64      `json:"VertexTolerance"`
	BendingTolerance  float64      `json:"BendingTolerance"`
	SingularityMargin float64      `json:"SingularityMargin"`
	NormalizePoint    []float64    `json:"NormalizePoint"`
	Vertices          [][]float64  `json:"Vertices"`    // v0, v1, v2, v3 of the fixed hinge
	Deformation       []float64    `json:"Deformation"` // displacement of v3 for the bending check
	Stiffness         float64      `json:"Stiffness"`
	Conditioning      Conditioning `json:"Conditioning"`
	ParallelDegree    int          `json:"ParallelDegree"` // zero uses every CPU
}

type Conditioning struct {
	MinEdge   float64 `json:"MinEdge"`
	MinHeight float64 `json:"MinHeight"`
	MaxAbsCos float64 `json:"MaxAbsCos"`
}

func NewCheckParameters() (cp *CheckParameters) {
	dc := dihedral.DefaultConditioning
	cp = &CheckParameters{
		Title:             "Dihedral angle derivative check",
		Seed:              0,
		Samples:           1000,
		HingeSamples:      100,
		Atan2Step:         dihedral.Atan2Step,
		NormalizeStep:     dihedral.NormalizeStep,
		AngleStep:         dihedral.AngleStep,
		VertexStep:        dihedral.VertexStep,
		BendingStep:       1.e-6,
		Atan2Tolerance:    1.e-2,
		NormalizeTol:      1.e-2,
		VertexTolerance:   1.e-1,
		BendingTolerance:  1.e-2,
		SingularityMargin: 1.e-3,
		NormalizePoint:    []float64{2, 3.4, 4},
		Vertices: [][]float64{
			{0.5488, 0.7152, 0.6028},
			{0.5449, 0.4237, 0.6459},
			{0.4376, 0.8918, 0.9637},
			{0.3834, 0.7917, 0.5289},
		},
		Deformation: []float64{0.05, -0.03, 0.02},
		Stiffness:   1,
		Conditioning: Conditioning{
			MinEdge:   dc.MinEdge,
			MinHeight: dc.MinHeight,
			MaxAbsCos: dc.MaxAbsCos,
		},
	}
	return
}

// Parse overlays the YAML in data onto the current values, keys absent from
// the file keep their defaults
func (cp *CheckParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, cp); err != nil {
		return
	}
	err = cp.Validate()
	return
}

func (cp *CheckParameters) Validate() (err error) {
	switch {
	case cp.Samples < 1 || cp.HingeSamples < 1:
		err = fmt.Errorf("sample counts must be positive, have %d and %d", cp.Samples, cp.HingeSamples)
	case cp.Atan2Step <= 0 || cp.NormalizeStep <= 0 || cp.AngleStep <= 0 ||
		cp.VertexStep <= 0 || cp.BendingStep <= 0:
		err = fmt.Errorf("finite difference steps must be positive")
	case cp.SingularityMargin < 0 || cp.SingularityMargin >= 1-math.Sqrt2/2:
		// past 1 - 1/√2 every point of the unit circle is within the margin
		err = fmt.Errorf("singularity margin %g outside of [0,%.4f)", cp.SingularityMargin, 1-math.Sqrt2/2)
	case cp.Conditioning.MinEdge < 0 || cp.Conditioning.MinEdge >= math.Sqrt(3):
		// no edge in the unit cube is longer than its diagonal
		err = fmt.Errorf("Conditioning.MinEdge %g outside of [0,√3)", cp.Conditioning.MinEdge)
	case cp.Conditioning.MinHeight < 0 || cp.Conditioning.MinHeight >= math.Sqrt(3):
		err = fmt.Errorf("Conditioning.MinHeight %g outside of [0,√3)", cp.Conditioning.MinHeight)
	case cp.Conditioning.MaxAbsCos <= 0 || cp.Conditioning.MaxAbsCos > 1:
		err = fmt.Errorf("Conditioning.MaxAbsCos %g outside of (0,1]", cp.Conditioning.MaxAbsCos)
	case cp.ParallelDegree < 0:
		err = fmt.Errorf("ParallelDegree must not be negative, have %d", cp.ParallelDegree)
	case len(cp.NormalizePoint) != 3:
		err = fmt.Errorf("NormalizePoint needs 3 coordinates, have %d", len(cp.NormalizePoint))
	case len(cp.Deformation) != 3:
		err = fmt.Errorf("Deformation needs 3 coordinates, have %d", len(cp.Deformation))
	default:
		_, err = dihedral.NewHingeFromF64(cp.Vertices)
	}
	return
}

func (cp *CheckParameters) Hinge() (h dihedral.Hinge) {
	var err error
	if h, err = dihedral.NewHingeFromF64(cp.Vertices); err != nil {
		panic(err)
	}
	return
}

func (cp *CheckParameters) GetConditioning() dihedral.Conditioning {
	return dihedral.Conditioning{
		MinEdge:   cp.Conditioning.MinEdge,
		MinHeight: cp.Conditioning.MinHeight,
		MaxAbsCos: cp.Conditioning.MaxAbsCos,
	}
}

func (cp *CheckParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%d]\t\t\t\t= Seed\n", cp.Seed)
	fmt.Printf("[%d, %d]\t\t\t= Samples, Hinge Samples\n", cp.Samples, cp.HingeSamples)
	fmt.Printf("%8.1e\t\t= Atan2 Step\n", cp.Atan2Step)
	fmt.Printf("%8.1e\t\t= Normalize Step\n", cp.NormalizeStep)
	fmt.Printf("%8.1e\t\t= Angle Step\n", cp.AngleStep)
	fmt.Printf("%8.1e\t\t= Vertex Step\n", cp.VertexStep)
	fmt.Printf("%8.1e\t\t= Bending Step\n", cp.BendingStep)
	fmt.Printf("%8.1e\t\t= Atan2 Tolerance\n", cp.Atan2Tolerance)
	fmt.Printf("%8.1e\t\t= Normalize Tolerance\n", cp.NormalizeTol)
	fmt.Printf("%8.1e\t\t= Vertex Tolerance\n", cp.VertexTolerance)
	fmt.Printf("%8.1e\t\t= Bending Tolerance\n", cp.BendingTolerance)
	fmt.Printf("%8.1e\t\t= Singularity Margin\n", cp.SingularityMargin)
	fmt.Printf("[%g, %g, %g]\t= Conditioning MinEdge, MinHeight, MaxAbsCos\n",
		cp.Conditioning.MinEdge, cp.Conditioning.MinHeight, cp.Conditioning.MaxAbsCos)
	fmt.Printf("%8.5f\t\t= Stiffness\n", cp.Stiffness)
	fmt.Printf("%v\t= Deformation of v3\n", cp.Deformation)
	fmt.Printf("%v\t\t= Normalize Point\n", cp.NormalizePoint)
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", cp.ParallelDegree)
	for i, v := range cp.Vertices {
		fmt.Printf("%v\t= v%d\n", v, i)
	}
}
