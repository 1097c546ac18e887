package action

import (
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// NeighborUnfusion splits a spider in two: v keeps KeptPhase and the
// neighbors not listed, while a fresh spider of the same color takes
// phase(v) − KeptPhase and the listed neighbors (each keeping its original
// wire type). A phase-0 Z-spider buffer joins the halves over two Hadamard
// wires, so the split composes to the identity.
//
// An empty NeighborsToUnfuse still performs the phase split through the
// buffer.
type NeighborUnfusion struct {
	V                 zxgraph.VertexID
	KeptPhase         phase.Phase
	NeighborsToUnfuse []zxgraph.VertexID

	buffer  zxgraph.VertexID
	unfused zxgraph.VertexID
	snap    *zxgraph.Snapshot
}

// NewNeighborUnfusion builds the action.
func NewNeighborUnfusion(v zxgraph.VertexID, kept phase.Phase, neighbors []zxgraph.VertexID) *NeighborUnfusion {
	return &NeighborUnfusion{V: v, KeptPhase: kept, NeighborsToUnfuse: neighbors}
}

// BufferID returns the buffer spider the last Apply created.
func (a *NeighborUnfusion) BufferID() zxgraph.VertexID { return a.buffer }

// UnfusedID returns the split-off spider the last Apply created.
func (a *NeighborUnfusion) UnfusedID() zxgraph.VertexID { return a.unfused }

// Applicable reports whether v is a spider and every listed neighbor is
// currently adjacent to it.
func (a *NeighborUnfusion) Applicable(g *zxgraph.Graph) bool {
	v := g.Vertex(a.V)
	if v == nil || !v.IsZX() {
		return false
	}
	for _, id := range a.NeighborsToUnfuse {
		if !g.IsNeighbor(a.V, id) {
			return false
		}
	}

	return true
}

// Apply performs the split.
func (a *NeighborUnfusion) Apply(g *zxgraph.Graph) bool {
	if !a.Applicable(g) {
		return false
	}

	v := g.Vertex(a.V)
	a.snap = capture(g, append([]zxgraph.VertexID{a.V}, a.NeighborsToUnfuse...)...)

	unfused := g.AddVertexAt(v.Type, v.Phase.Sub(a.KeptPhase), v.Row, v.Col+1)
	buffer := g.AddVertexAt(zxgraph.Z, phase.Zero(), v.Row, v.Col+0.5)
	a.unfused, a.buffer = unfused.ID, buffer.ID

	v.Phase = a.KeptPhase
	_ = g.AddEdge(a.V, buffer.ID, zxgraph.Hadamard)
	_ = g.AddEdge(buffer.ID, unfused.ID, zxgraph.Hadamard)

	// Move the listed neighbors across, wire types intact.
	for _, id := range a.NeighborsToUnfuse {
		et, _ := g.EdgeTypeBetween(a.V, id)
		_ = g.RemoveEdge(a.V, id, et)
		_ = g.AddEdge(unfused.ID, id, et)
	}

	return true
}

// Undo merges the split back into v.
func (a *NeighborUnfusion) Undo(g *zxgraph.Graph) bool {
	if a.snap == nil {
		return false
	}

	return a.snap.Restore(g)
}
