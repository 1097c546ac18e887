package rule

import (
	"github.com/katalvlaran/zxcalc/action"
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// PivotUnfusion makes the pivot applicable to an arbitrary Hadamard edge
// by unfusing each endpoint first: the listed neighbors and any non-n·π
// phase move onto split-off spiders, then the plain pivot runs on the
// retained pair. With empty sets and n·π phases on both endpoints it
// reduces to plain Pivot.
type PivotUnfusion struct {
	V0 zxgraph.VertexID
	V1 zxgraph.VertexID

	// NeighborsToUnfuseV0/V1 are the neighbors split away from each
	// endpoint before pivoting.
	NeighborsToUnfuseV0 []zxgraph.VertexID
	NeighborsToUnfuseV1 []zxgraph.VertexID

	undoState
}

// NewPivotUnfusion builds the rule.
func NewPivotUnfusion(v0, v1 zxgraph.VertexID, s0, s1 []zxgraph.VertexID) *PivotUnfusion {
	return &PivotUnfusion{
		V0:                  v0,
		V1:                  v1,
		NeighborsToUnfuseV0: sortedIDs(s0),
		NeighborsToUnfuseV1: sortedIDs(s1),
	}
}

// endpointReady checks one endpoint: every listed neighbor is adjacent
// (and not the opposite pivot endpoint), and every retained neighbor
// besides the opposite endpoint is an interior Z-spider over a Hadamard
// wire.
func endpointReady(g *zxgraph.Graph, v, other zxgraph.VertexID, s []zxgraph.VertexID) bool {
	unfuse := make(map[zxgraph.VertexID]struct{}, len(s))
	for _, id := range s {
		if id == other || !g.IsNeighbor(v, id) {
			return false
		}
		unfuse[id] = struct{}{}
	}
	for _, nb := range g.Neighbors(v) {
		if nb.ID == other {
			continue
		}
		if _, gone := unfuse[nb.ID]; gone {
			continue
		}
		w := g.Vertex(nb.ID)
		if w.IsBoundary() || !w.IsZ() || nb.Type != zxgraph.Hadamard {
			return false
		}
	}

	return true
}

// IsApplicable reports whether (V0, V1) is a Hadamard edge between
// Z-spiders and both endpoints are ready per endpointReady.
func (r *PivotUnfusion) IsApplicable(g *zxgraph.Graph) bool {
	v0, v1 := g.Vertex(r.V0), g.Vertex(r.V1)
	if v0 == nil || v1 == nil || !v0.IsZ() || !v1.IsZ() {
		return false
	}
	if !g.IsNeighborOfType(r.V0, r.V1, zxgraph.Hadamard) {
		return false
	}

	return endpointReady(g, r.V0, r.V1, r.NeighborsToUnfuseV0) &&
		endpointReady(g, r.V1, r.V0, r.NeighborsToUnfuseV1)
}

// unfuseEndpoint splits one endpoint when its set is nonempty or its
// phase is not n·π; the retained phase is the n·π part (the whole phase
// when already n·π, zero otherwise).
func unfuseEndpoint(g *zxgraph.Graph, v zxgraph.VertexID, s []zxgraph.VertexID) bool {
	vert := g.Vertex(v)
	if len(s) == 0 && vert.HasNPiPhase() {
		return true
	}
	kept := phase.Zero()
	if vert.HasNPiPhase() {
		kept = vert.Phase
	}

	return action.NewNeighborUnfusion(v, kept, s).Apply(g)
}

// Apply unfuses both endpoints as needed and pivots.
func (r *PivotUnfusion) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	if !unfuseEndpoint(g, r.V0, r.NeighborsToUnfuseV0) ||
		!unfuseEndpoint(g, r.V1, r.NeighborsToUnfuseV1) {
		r.snap.Restore(g)
		r.abort()

		return false
	}

	pv := NewPivot(r.V0, r.V1)
	if !pv.Apply(g) {
		r.snap.Restore(g)
		r.abort()

		return false
	}

	return true
}

// CoreVertices returns both endpoints and every unfused neighbor.
func (r *PivotUnfusion) CoreVertices() []zxgraph.VertexID {
	out := []zxgraph.VertexID{r.V0, r.V1}
	out = append(out, r.NeighborsToUnfuseV0...)
	out = append(out, r.NeighborsToUnfuseV1...)

	return sortedIDs(out)
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *PivotUnfusion) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *PivotUnfusion) Radius() int { return 2 }
