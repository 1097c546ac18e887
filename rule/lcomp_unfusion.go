package rule

import (
	"github.com/katalvlaran/zxcalc/action"
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// LCompUnfusion makes local complementation applicable to an arbitrary
// Z-spider by unfusing first: the listed neighbors (plus any phase excess
// beyond π/2) move onto a split-off spider, then LocalComplement runs on
// the retained half. With an empty set and a ±π/2 phase it reduces to
// plain LocalComplement.
type LCompUnfusion struct {
	V                 zxgraph.VertexID
	NeighborsToUnfuse []zxgraph.VertexID

	undoState
}

// NewLCompUnfusion builds the rule.
func NewLCompUnfusion(v zxgraph.VertexID, neighbors []zxgraph.VertexID) *LCompUnfusion {
	return &LCompUnfusion{V: v, NeighborsToUnfuse: sortedIDs(neighbors)}
}

// needsUnfusion reports whether the rewrite has to split v at all.
func (r *LCompUnfusion) needsUnfusion(g *zxgraph.Graph) bool {
	return len(r.NeighborsToUnfuse) > 0 || g.Vertex(r.V).Phase.Denominator() != 2
}

// IsApplicable reports whether V is a Z-spider, every listed neighbor is
// adjacent to it, and every retained neighbor is an interior Z-spider
// over a Hadamard wire (so the complementation is legal after the split).
func (r *LCompUnfusion) IsApplicable(g *zxgraph.Graph) bool {
	v := g.Vertex(r.V)
	if v == nil || !v.IsZ() {
		return false
	}

	unfuse := make(map[zxgraph.VertexID]struct{}, len(r.NeighborsToUnfuse))
	for _, id := range r.NeighborsToUnfuse {
		if !g.IsNeighbor(r.V, id) {
			return false
		}
		unfuse[id] = struct{}{}
	}

	for _, nb := range g.Neighbors(r.V) {
		if _, gone := unfuse[nb.ID]; gone {
			continue
		}
		w := g.Vertex(nb.ID)
		if w.IsBoundary() || !w.IsZ() || nb.Type != zxgraph.Hadamard {
			return false
		}
	}

	// Without an unfusion the phase is already ±π/2 (denominator 2), so
	// the complementation is directly legal.
	return true
}

// Apply unfuses (when needed) and complements.
func (r *LCompUnfusion) Apply(g *zxgraph.Graph) bool {
	if !r.IsApplicable(g) {
		return false
	}

	r.begin(g, r.CoreVertices())

	if r.needsUnfusion(g) {
		split := action.NewNeighborUnfusion(r.V, phase.PiHalf(), r.NeighborsToUnfuse)
		if !split.Apply(g) {
			r.abort()

			return false
		}
	}

	lc := NewLocalComplement(r.V)
	if !lc.Apply(g) {
		r.snap.Restore(g)
		r.abort()

		return false
	}

	return true
}

// CoreVertices returns V and the unfused neighbors.
func (r *LCompUnfusion) CoreVertices() []zxgraph.VertexID {
	return sortedIDs(append([]zxgraph.VertexID{r.V}, r.NeighborsToUnfuse...))
}

// AffectedVertices returns the surviving vertices of the rewrite region.
func (r *LCompUnfusion) AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID {
	return r.affected(g, r.CoreVertices())
}

// Radius bounds how far the rewrite can change match eligibility.
func (r *LCompUnfusion) Radius() int { return 2 }
