package rule

import (
	"sort"

	"github.com/katalvlaran/zxcalc/zxgraph"
)

// Rule is one rewrite instance over a graph. See the package comment for
// the contract of each method.
type Rule interface {
	IsApplicable(g *zxgraph.Graph) bool
	Apply(g *zxgraph.Graph) bool
	Undo(g *zxgraph.Graph) bool
	CoreVertices() []zxgraph.VertexID
	AffectedVertices(g *zxgraph.Graph) []zxgraph.VertexID
	Radius() int
}

// captureRadius is the snapshot ball every rule captures around its core
// before rewriting. Two steps cover the farthest edit any rule performs
// (identity fusion rewires the far side's neighbors).
const captureRadius = 2

// undoState is the shared Apply/Undo bookkeeping embedded in every rule.
type undoState struct {
	snap    *zxgraph.Snapshot
	touched []zxgraph.VertexID
}

// begin captures the rewrite region and remembers it for
// AffectedVertices.
func (u *undoState) begin(g *zxgraph.Graph, core []zxgraph.VertexID) {
	u.touched = g.ClosedNeighborhood(core, captureRadius)
	u.snap = g.Capture(u.touched)
}

// abort forgets a capture after a failed Apply.
func (u *undoState) abort() {
	u.snap = nil
	u.touched = nil
}

// Undo restores the pre-image of the last successful Apply.
func (u *undoState) Undo(g *zxgraph.Graph) bool {
	if u.snap == nil {
		return false
	}

	return u.snap.Restore(g)
}

// affected reports the rewrite region vertices still present in g, plus
// any vertices the rewrite created inside it. Before a successful Apply
// it falls back to the current ball around `core`.
func (u *undoState) affected(g *zxgraph.Graph, core []zxgraph.VertexID) []zxgraph.VertexID {
	ids := u.touched
	if ids == nil {
		ids = g.ClosedNeighborhood(core, captureRadius)
	}
	out := make([]zxgraph.VertexID, 0, len(ids))
	for _, id := range ids {
		if g.HasVertex(id) {
			out = append(out, id)
		}
	}

	return out
}

// intersect returns the sorted intersection of two sorted id slices.
func intersect(a, b []zxgraph.VertexID) []zxgraph.VertexID {
	var out []zxgraph.VertexID
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// subtract returns the sorted difference a \ b of two sorted id slices.
func subtract(a, b []zxgraph.VertexID) []zxgraph.VertexID {
	var out []zxgraph.VertexID
	j := 0
	for _, x := range a {
		for j < len(b) && b[j] < x {
			j++
		}
		if j < len(b) && b[j] == x {
			continue
		}
		out = append(out, x)
	}

	return out
}

// sortedIDs returns a sorted copy of ids.
func sortedIDs(ids []zxgraph.VertexID) []zxgraph.VertexID {
	out := append([]zxgraph.VertexID(nil), ids...)
	sort.Ints(out)

	return out
}
