package dihedral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/dihedral/utils"
)

/*
Hinge is a pair of triangles sharing the edge (V1, V2)

	        v2
	v0       |      v3
	        v1

Face 0 is wound (v0, v1, v2) and face 1 is wound (v1, v3, v2). The winding sets
the sign of the bending angle and must not change.
*/
type Hinge struct {
	V [4]r3.Vec
}

func NewHinge(v0, v1, v2, v3 r3.Vec) (h Hinge) {
	h = Hinge{V: [4]r3.Vec{v0, v1, v2, v3}}
	return
}

func NewHingeFromF64(verts [][]float64) (h Hinge, err error) {
	if len(verts) != 4 {
		err = fmt.Errorf("a hinge has 4 vertices, have %d", len(verts))
		return
	}
	for i, v := range verts {
		if len(v) != 3 {
			err = fmt.Errorf("vertex %d has %d coordinates, need 3", i, len(v))
			return
		}
		h.V[i] = utils.NewVec(v)
	}
	return
}

// HingeFromCoords builds a hinge from 12 packed coordinates v0x,v0y,v0z,v1x...
func HingeFromCoords(x []float64) (h Hinge) {
	if len(x) != 12 {
		panic(fmt.Errorf("a hinge has 12 coordinates, have %d", len(x)))
	}
	for i := range h.V {
		h.V[i] = utils.NewVec(x[3*i : 3*i+3])
	}
	return
}

// Coords packs the vertices into a new slice of 12 coordinates
func (h Hinge) Coords() (x []float64) {
	x = make([]float64, 0, 12)
	for _, v := range h.V {
		x = append(x, v.X, v.Y, v.Z)
	}
	return
}

// FaceNormal is the unnormalized normal (b-a) x (c-b) of the triangle (a, b, c)
func FaceNormal(a, b, c r3.Vec) r3.Vec {
	return utils.Cross(r3.Sub(b, a), r3.Sub(c, b))
}

// Edge is the shared edge, directed from v1 to v2
func (h Hinge) Edge() r3.Vec {
	return r3.Sub(h.V[2], h.V[1])
}

func (h Hinge) Normals() (n0, n1 r3.Vec) {
	n0 = FaceNormal(h.V[0], h.V[1], h.V[2])
	n1 = FaceNormal(h.V[1], h.V[3], h.V[2])
	return
}

func (h Hinge) EdgeAndNormals() (n0, n1, e r3.Vec) {
	n0, n1 = h.Normals()
	e = h.Edge()
	return
}

func (h Hinge) Angle() float64 {
	return DihedralAngle(h.EdgeAndNormals())
}

// Areas returns the areas of face 0 and face 1
func (h Hinge) Areas() (a0, a1 float64) {
	n0, n1 := h.Normals()
	a0, a1 = 0.5*r3.Norm(n0), 0.5*r3.Norm(n1)
	return
}

func (h Hinge) String() string {
	return fmt.Sprintf("v0 %v\nv1 %v\nv2 %v\nv3 %v",
		utils.VecGetF64(h.V[0]), utils.VecGetF64(h.V[1]),
		utils.VecGetF64(h.V[2]), utils.VecGetF64(h.V[3]))
}

// WellConditioned rejects hinges close to the singularities of the analytic
// derivative: a short shared edge, a thin face, or a bending angle near 0 or π
func (h Hinge) WellConditioned(minEdge, minHeight, maxAbsCos float64) bool {
	var (
		n0, n1, e = h.EdgeAndNormals()
		le        = r3.Norm(e)
	)
	if le < minEdge {
		return false
	}
	// The face heights over the shared edge are |n|/|e|
	if r3.Norm(n0)/le < minHeight || r3.Norm(n1)/le < minHeight {
		return false
	}
	cos, _ := AngleComponents(n0, n1, e)
	return !(utils.NotFinite(cos) || math.Abs(cos) > maxAbsCos)
}
