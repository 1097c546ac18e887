package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxcalc/flow"
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/rule"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// line builds a graph-like path: I − z0 −H− z1 −H− ... −H− z(n-1) − O.
func line(t *testing.T, n int) (*zxgraph.Graph, []int) {
	t.Helper()
	g := zxgraph.New()
	in, err := g.AddInput(0)
	require.NoError(t, err)
	out, err := g.AddOutput(0)
	require.NoError(t, err)

	var zs []int
	prev := in.ID
	et := zxgraph.Simple
	for i := 0; i < n; i++ {
		z := g.AddVertex(zxgraph.Z, phase.Zero())
		require.NoError(t, g.AddEdge(prev, z.ID, et))
		prev, et = z.ID, zxgraph.Hadamard
		zs = append(zs, z.ID)
	}
	require.NoError(t, g.AddEdge(prev, out.ID, zxgraph.Simple))

	return g, zs
}

// TestHasCausalFlow_Line verifies that a line graph has a causal flow.
func TestHasCausalFlow_Line(t *testing.T) {
	g, _ := line(t, 4)
	assert.True(t, flow.HasCausalFlow(g))
}

// TestCalculateCausalFlow_SuccessorChain verifies the successor map
// follows the line towards the output.
func TestCalculateCausalFlow_SuccessorChain(t *testing.T) {
	g, zs := line(t, 3)
	cf := flow.CalculateCausalFlow(g)
	require.NotNil(t, cf)

	// Each spider's successor is the next vertex towards the output.
	out := g.Outputs()[0].ID
	assert.Equal(t, out, cf.Successor[zs[2]], "last spider succeeds into the output's corrector")
	assert.Equal(t, zs[2], cf.Successor[zs[1]])
	assert.Equal(t, zs[1], cf.Successor[zs[0]])
	assert.Greater(t, cf.Depth, 1)

	// Every non-output vertex got a successor.
	for _, z := range zs {
		_, ok := cf.Successor[z]
		assert.True(t, ok, "spider %d needs a successor", z)
	}
}

// TestHasCausalFlow_NoFlow verifies a diagram without flow is rejected:
// two inputs feeding one output spider cannot be causally ordered.
func TestHasCausalFlow_NoFlow(t *testing.T) {
	g := zxgraph.New()
	in0, _ := g.AddInput(0)
	in1, _ := g.AddInput(1)
	out, _ := g.AddOutput(0)

	z := g.AddVertex(zxgraph.Z, phase.Zero())
	require.NoError(t, g.AddEdge(in0.ID, z.ID, zxgraph.Simple))
	require.NoError(t, g.AddEdge(in1.ID, z.ID, zxgraph.Simple))
	require.NoError(t, g.AddEdge(z.ID, out.ID, zxgraph.Simple))

	assert.False(t, flow.HasCausalFlow(g), "a 2-in 1-out funnel has no causal flow")
	assert.Nil(t, flow.CalculateCausalFlow(g))
}

// TestCausalFlow_PreservedUnderIdentityFusion is the preservation
// scenario: fusing internal phase-0 spiders keeps the flow alive.
func TestCausalFlow_PreservedUnderIdentityFusion(t *testing.T) {
	g, zs := line(t, 5)
	require.True(t, flow.HasCausalFlow(g))

	for _, z := range zs {
		r := rule.NewIdentityFusion(z)
		if !r.IsApplicable(g) {
			continue
		}
		require.True(t, r.Apply(g))
		g.RemoveIsolatedVertices()
		assert.True(t, flow.HasCausalFlow(g), "identity fusion on %d must preserve causal flow", z)
	}
}

// TestGFlow_Line verifies the plain g-flow on a line graph.
func TestGFlow_Line(t *testing.T) {
	g, zs := line(t, 3)

	gf := flow.NewGFlow(g)
	assert.True(t, gf.Calculate())
	assert.True(t, gf.IsValid())

	// Level 0 is the output set.
	require.NotEmpty(t, gf.Levels())
	assert.Equal(t, []int{g.Outputs()[0].ID}, gf.Levels()[0])

	// Every spider carries a nonempty X-correction set and sits on some
	// level.
	for _, z := range zs {
		assert.NotEmpty(t, gf.XCorrectionSet(z), "correction set of %d", z)
		_, ok := gf.Level(z)
		assert.True(t, ok)
		assert.Equal(t, flow.PlaneXY, gf.Plane(z), "plain mode is all-XY")
	}
}

// TestGFlow_NoFlow verifies rejection mirrors the causal detector on the
// funnel.
func TestGFlow_NoFlow(t *testing.T) {
	g := zxgraph.New()
	in0, _ := g.AddInput(0)
	in1, _ := g.AddInput(1)
	out, _ := g.AddOutput(0)
	z := g.AddVertex(zxgraph.Z, phase.Zero())
	require.NoError(t, g.AddEdge(in0.ID, z.ID, zxgraph.Simple))
	require.NoError(t, g.AddEdge(in1.ID, z.ID, zxgraph.Simple))
	require.NoError(t, g.AddEdge(z.ID, out.ID, zxgraph.Simple))

	gf := flow.NewGFlow(g)
	assert.False(t, gf.Calculate())
	assert.False(t, gf.IsValid())
}

// TestGFlow_ExtendedPlanes verifies gadget structure induces YZ planes
// and leaves drop out of the qubit set.
func TestGFlow_ExtendedPlanes(t *testing.T) {
	g, zs := line(t, 3)
	axel, leaf := g.AddGadget(phase.New(1, 4), []int{zs[0], zs[1]})
	require.NotNil(t, axel)

	gf := flow.NewGFlow(g)
	gf.SetExtended(true)
	gf.Calculate()

	assert.Equal(t, flow.PlaneYZ, gf.Plane(axel.ID), "phase-0 axel measures in YZ")
	assert.Equal(t, flow.PlaneNone, gf.Plane(leaf.ID), "leaf is not a qubit")
	assert.Equal(t, flow.PlaneXY, gf.Plane(zs[2]))
}
