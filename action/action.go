package action

import (
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// Action is one reversible local edit. Apply reports success; a false
// return means a precondition failed and the graph is unchanged. Undo
// restores the pre-image of the last successful Apply and reports whether
// there was anything to restore.
type Action interface {
	Apply(g *zxgraph.Graph) bool
	Undo(g *zxgraph.Graph) bool
}

// capture snapshots the closed neighborhood of the action's core vertices.
// Every action's edits stay within one step of its core, so radius 1 is
// sufficient for exact restoration.
func capture(g *zxgraph.Graph, core ...zxgraph.VertexID) *zxgraph.Snapshot {
	return g.Capture(g.ClosedNeighborhood(core, 1))
}
