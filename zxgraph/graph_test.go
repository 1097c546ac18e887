package zxgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// TestAddRemoveVertex verifies the vertex lifecycle: allocation, lookup,
// removal, and the monotonic id allocator.
func TestAddRemoveVertex(t *testing.T) {
	g := zxgraph.New()

	v0 := g.AddVertex(zxgraph.Z, phase.Zero())
	v1 := g.AddVertex(zxgraph.X, phase.Pi())
	assert.Equal(t, 0, v0.ID, "first id is 0")
	assert.Equal(t, 1, v1.ID, "ids ascend")
	assert.Equal(t, 2, g.NumVertices())

	require.NoError(t, g.RemoveVertex(v0.ID))
	assert.False(t, g.HasVertex(v0.ID), "removed vertex is gone")
	assert.ErrorIs(t, g.RemoveVertex(v0.ID), zxgraph.ErrVertexNotFound, "double removal errors")

	// Ids are never reused.
	v2 := g.AddVertex(zxgraph.Z, phase.Zero())
	assert.Equal(t, 2, v2.ID, "allocator does not reuse removed ids")

	// Explicit ids bump the allocator past themselves.
	v9, err := g.AddVertexWithID(9, zxgraph.Z, phase.Zero(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, v9.ID)
	assert.Equal(t, 10, g.NextVertexID(), "allocator jumps past explicit ids")
	_, err = g.AddVertexWithID(9, zxgraph.Z, phase.Zero(), 0, 0)
	assert.ErrorIs(t, err, zxgraph.ErrDuplicateID)
}

// TestBoundaryBookkeeping verifies input/output registration, qubit maps,
// and unregistration on removal.
func TestBoundaryBookkeeping(t *testing.T) {
	g := zxgraph.New()

	in, err := g.AddInput(0)
	require.NoError(t, err)
	out, err := g.AddOutput(0)
	require.NoError(t, err)

	assert.True(t, g.IsInput(in))
	assert.True(t, g.IsOutput(out))
	assert.Same(t, in, g.InputByQubit(0))
	assert.Same(t, out, g.OutputByQubit(0))

	// The same qubit id may exist as input and output, but not twice as
	// either.
	_, err = g.AddInput(0)
	assert.ErrorIs(t, err, zxgraph.ErrQubitTaken)

	require.NoError(t, g.RemoveVertex(in.ID))
	assert.Nil(t, g.InputByQubit(0), "removal unbinds the qubit")
	assert.Equal(t, 0, g.NumInputs())
	assert.Equal(t, 1, g.NumOutputs())
}

// TestRemoveVertexErasesIncidentEdges verifies that vertex removal erases
// the symmetric adjacency records of every neighbor.
func TestRemoveVertexErasesIncidentEdges(t *testing.T) {
	g := zxgraph.New()
	a := g.AddVertex(zxgraph.Z, phase.Zero())
	b := g.AddVertex(zxgraph.Z, phase.Zero())
	c := g.AddVertex(zxgraph.Z, phase.Zero())
	require.NoError(t, g.AddEdge(a.ID, b.ID, zxgraph.Hadamard))
	require.NoError(t, g.AddEdge(a.ID, c.ID, zxgraph.Hadamard))

	require.NoError(t, g.RemoveVertex(a.ID))
	assert.Equal(t, 0, g.NumNeighbors(b.ID), "b lost its record of a")
	assert.Equal(t, 0, g.NumNeighbors(c.ID), "c lost its record of a")
	assert.Equal(t, 0, g.NumEdges())
	assert.True(t, g.IsValid())
}

// TestRemoveIsolatedVertices verifies isolated-vertex sweeping.
func TestRemoveIsolatedVertices(t *testing.T) {
	g := zxgraph.New()
	a := g.AddVertex(zxgraph.Z, phase.Zero())
	b := g.AddVertex(zxgraph.Z, phase.Zero())
	g.AddVertex(zxgraph.X, phase.Zero()) // isolated
	g.AddVertex(zxgraph.Z, phase.Pi())   // isolated
	require.NoError(t, g.AddEdge(a.ID, b.ID, zxgraph.Simple))

	assert.Equal(t, 2, g.RemoveIsolatedVertices())
	assert.Equal(t, 2, g.NumVertices())
}

// TestDeterministicEnumeration verifies that Vertices, Neighbors, and
// ForEachEdge report in ascending-id order.
func TestDeterministicEnumeration(t *testing.T) {
	g := zxgraph.New()
	ids := make([]int, 5)
	for i := range ids {
		ids[i] = g.AddVertex(zxgraph.Z, phase.Zero()).ID
	}
	// Star centered at the last vertex.
	center := ids[4]
	for _, id := range ids[:4] {
		require.NoError(t, g.AddEdge(center, id, zxgraph.Hadamard))
	}

	got := make([]int, 0, 5)
	for _, v := range g.Vertices() {
		got = append(got, v.ID)
	}
	assert.Equal(t, ids, got, "Vertices ascend by id")

	nbs := g.Neighbors(center)
	for i := 1; i < len(nbs); i++ {
		assert.Less(t, nbs[i-1].ID, nbs[i].ID, "Neighbors ascend by id")
	}

	var edges []zxgraph.Edge
	g.ForEachEdge(func(e zxgraph.Edge) { edges = append(edges, e) })
	assert.Len(t, edges, 4)
	for _, e := range edges {
		assert.Less(t, e.U, e.V, "edges report with U < V")
	}
}

// TestNumEdgesMatchesDegreeSum locks the handshake invariant
// NumEdges == Σ NumNeighbors / 2.
func TestNumEdgesMatchesDegreeSum(t *testing.T) {
	g := zxgraph.New()
	var vs []*zxgraph.Vertex
	for i := 0; i < 6; i++ {
		vs = append(vs, g.AddVertex(zxgraph.Z, phase.Zero()))
	}
	require.NoError(t, g.AddEdge(vs[0].ID, vs[1].ID, zxgraph.Hadamard))
	require.NoError(t, g.AddEdge(vs[1].ID, vs[2].ID, zxgraph.Hadamard))
	require.NoError(t, g.AddEdge(vs[2].ID, vs[3].ID, zxgraph.Hadamard))
	require.NoError(t, g.AddEdge(vs[4].ID, vs[5].ID, zxgraph.Hadamard))

	sum := 0
	for _, v := range g.Vertices() {
		sum += g.NumNeighbors(v.ID)
	}
	assert.Equal(t, g.NumEdges(), sum/2)
}

// TestCloneAndEqual verifies deep cloning and the equality contract
// (ids, types, phases, adjacency, qubit bindings; coordinates ignored).
func TestCloneAndEqual(t *testing.T) {
	g := zxgraph.New()
	in, _ := g.AddInput(0)
	out, _ := g.AddOutput(0)
	s := g.AddVertex(zxgraph.Z, phase.New(1, 4))
	require.NoError(t, g.AddEdge(in.ID, s.ID, zxgraph.Simple))
	require.NoError(t, g.AddEdge(s.ID, out.ID, zxgraph.Simple))

	c := g.Clone()
	assert.True(t, g.Equal(c), "clone equals original")
	assert.True(t, c.Equal(g), "equality is symmetric")

	// Coordinates do not participate.
	c.Vertex(s.ID).Row = 42
	assert.True(t, g.Equal(c), "coordinates are ignored")

	// Phases do.
	c.Vertex(s.ID).Phase = phase.Pi()
	assert.False(t, g.Equal(c), "phase change breaks equality")

	// Mutating the clone never touches the original.
	require.NoError(t, c.RemoveVertex(s.ID))
	assert.True(t, g.HasVertex(s.ID), "clone is deep")
}

// TestAdjoint verifies input/output swap and phase negation.
func TestAdjoint(t *testing.T) {
	g := zxgraph.New()
	in, _ := g.AddInput(0)
	out, _ := g.AddOutput(0)
	s := g.AddVertex(zxgraph.Z, phase.New(1, 4))
	require.NoError(t, g.AddEdge(in.ID, s.ID, zxgraph.Simple))
	require.NoError(t, g.AddEdge(s.ID, out.ID, zxgraph.Simple))

	g.Adjoint()
	assert.True(t, g.IsOutput(in), "former input is now an output")
	assert.True(t, g.IsInput(out), "former output is now an input")
	assert.True(t, g.Vertex(s.ID).Phase.Equal(phase.New(-1, 4)), "phase negated")
}

// TestGadgetPredicates verifies leaf/axel recognition and gadget removal.
func TestGadgetPredicates(t *testing.T) {
	g := zxgraph.New()
	a := g.AddVertex(zxgraph.Z, phase.Zero())
	b := g.AddVertex(zxgraph.Z, phase.Zero())
	require.NoError(t, g.AddEdge(a.ID, b.ID, zxgraph.Hadamard))

	axel, leaf := g.AddGadget(phase.New(1, 4), []int{a.ID, b.ID})
	require.NotNil(t, axel)
	require.NotNil(t, leaf)

	assert.True(t, g.IsGadgetLeaf(leaf.ID))
	assert.True(t, g.IsGadgetAxel(axel.ID))
	assert.False(t, g.IsGadgetLeaf(axel.ID))
	assert.True(t, g.HasDanglingNeighbors(axel.ID))
	assert.Equal(t, 1, g.NumGadgets())

	g.RemoveGadget(leaf.ID)
	assert.False(t, g.HasVertex(axel.ID))
	assert.False(t, g.HasVertex(leaf.ID))
	assert.True(t, g.IsValid())
}
