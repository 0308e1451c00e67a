package dihedral

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker(t *testing.T) {
	var (
		buf bytes.Buffer
		c   = NewChecker(&buf, 0, false)
	)
	{
		r, err := c.Atan2(1000, Atan2Step, 1.e-2, 1.e-3)
		require.NoError(t, err)
		assert.Equal(t, 1000, r.Samples)
		assert.Less(t, r.MaxErr, 1.e-2)
		assert.Contains(t, buf.String(), "cos ")
		assert.Contains(t, buf.String(), "sin ")
	}
	{
		r, err := c.Normalize(r3.Vec{X: 2, Y: 3.4, Z: 4}, NormalizeStep, 1.e-2)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Samples)
	}
	{
		r, err := c.AngleInputs(referenceHinge(), AngleStep, 1.e-1)
		require.NoError(t, err)
		assert.Equal(t, 3, r.Samples)
		assert.Contains(t, buf.String(), "deriv_ana n1")
	}
	{
		buf.Reset()
		r, err := c.Vertex(referenceHinge(), VertexStep, 1.e-1)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Samples)
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "v0 [0.5488 0.7152 0.6028]"))
		assert.Contains(t, out, "angle ")
		assert.Contains(t, out, "ana ")
		assert.Contains(t, out, "num ")
	}
	{
		r, err := c.Hinges(100, VertexStep, 1.e-1, DefaultConditioning)
		require.NoError(t, err)
		assert.Equal(t, 100, r.Samples)
		assert.Contains(t, r.String(), "[hinge] 100 samples")
	}
	{
		deformed := referenceHinge()
		deformed.V[3] = r3.Add(deformed.V[3], r3.Vec{X: 0.05, Y: -0.03, Z: 0.02})
		_, err := c.Bending(referenceHinge(), deformed, 1, 1.e-6, 1.e-2)
		require.NoError(t, err)
	}
	assert.NotContains(t, buf.String(), "mismatch")
}

func TestCheckerMismatch(t *testing.T) {
	var (
		buf bytes.Buffer
		c   = NewChecker(&buf, 0, true)
		me  *MismatchError
	)
	// An unreachable tolerance always fails, even quiet runs print the mismatch
	_, err := c.Vertex(referenceHinge(), VertexStep, 1.e-12)
	require.Error(t, err)
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "vertex", me.Check)
	assert.Len(t, me.Analytic, 3)
	assert.Len(t, me.Numeric, 3)
	assert.Greater(t, me.Err, me.Tol)
	assert.True(t, strings.HasPrefix(buf.String(), "vertex mismatch: "))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))

	_, err = c.Normalize(r3.Vec{X: 2, Y: 3.4, Z: 4}, NormalizeStep, 1.e-12)
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "normalize", me.Check)
	assert.Len(t, me.Analytic, 9)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestCheckerDomain(t *testing.T) {
	var (
		c  = NewChecker(io.Discard, 0, false)
		de *DomainError
		h  = referenceHinge()
	)
	h.V[0] = h.V[1]
	_, err := c.Vertex(h, VertexStep, 1.e-1)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "vertex", de.Check)
	_, err = c.Normalize(r3.Vec{}, NormalizeStep, 1.e-2)
	require.True(t, errors.As(err, &de))
	assert.Contains(t, err.Error(), "not finite")
	_, err = c.AngleInputs(h, AngleStep, 1.e-1)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, InputN0, AngleInput(de.Sample))
}

func TestCheckerParallelHinges(t *testing.T) {
	var (
		serial, parallel bytes.Buffer
		c1               = NewChecker(&serial, 9, false)
		c2               = NewChecker(&parallel, 9, false)
	)
	c1.ParallelDegree, c2.ParallelDegree = 1, 4
	r1, err := c1.Hinges(40, VertexStep, 1.e-1, DefaultConditioning)
	require.NoError(t, err)
	r2, err := c2.Hinges(40, VertexStep, 1.e-1, DefaultConditioning)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.Equal(t, serial.String(), parallel.String())
	// Nothing to do
	r, err := c1.Hinges(0, VertexStep, 1.e-1, DefaultConditioning)
	require.NoError(t, err)
	assert.Zero(t, r.Samples)
}

func TestCheckerUnreachableSampling(t *testing.T) {
	var (
		c   = NewChecker(io.Discard, 0, false)
		mme *MismatchError
	)
	// No unit cube hinge has an edge this long
	r, err := c.Hinges(2, VertexStep, 1.e-1, Conditioning{MinEdge: 5, MinHeight: 0.1, MaxAbsCos: 0.99})
	require.Error(t, err)
	assert.False(t, errors.As(err, &mme))
	assert.Zero(t, r.Samples)
	assert.Equal(t, 2*RedrawsPerSample+1, r.Skipped)
	_, err = c.Hinges(1, VertexStep, 1.e-1, Conditioning{MaxAbsCos: -1})
	assert.Error(t, err)
	// Every point of the unit circle has |cos| or |sin| above 1/√2
	r, err = c.Atan2(3, Atan2Step, 1.e-2, 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "atan2")
	assert.Equal(t, 3*RedrawsPerSample+1, r.Skipped)
}

func TestCheckerSeed(t *testing.T) {
	var (
		c1 = NewChecker(io.Discard, 42, false)
		c2 = NewChecker(io.Discard, 42, false)
		c3 = NewChecker(io.Discard, 43, false)
	)
	h := c1.RandomHinge()
	assert.Equal(t, h, c2.RandomHinge())
	assert.NotEqual(t, h, c3.RandomHinge())
	for _, x := range h.Coords() {
		assert.True(t, x >= 0 && x < 1)
	}
	// A nil writer falls back to stdout
	assert.NotNil(t, NewChecker(nil, 0, true).Out)
}
