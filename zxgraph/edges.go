package zxgraph

import (
	"sort"

	"github.com/katalvlaran/zxcalc/phase"
)

// record writes the symmetric adjacency entries for an edge (u, et, v).
// Callers have already run the algebra; this is the raw insertion.
func record(u, v *Vertex, et EdgeType) {
	u.adj[Neighbor{ID: v.ID, Type: et}] = struct{}{}
	v.adj[Neighbor{ID: u.ID, Type: et}] = struct{}{}
}

// erase drops the symmetric adjacency entries for an edge (u, et, v).
func erase(u, v *Vertex, et EdgeType) {
	delete(u.adj, Neighbor{ID: v.ID, Type: et})
	delete(v.adj, Neighbor{ID: u.ID, Type: et})
}

// AddEdge connects u and v with an edge of type et, running the ZX edge
// algebra:
//
//   - a self-loop folds into the endpoint's phase (Hadamard loop adds π,
//     simple loop adds nothing) and stores no edge;
//   - between opposite-color spiders, a parallel simple pair cancels
//     (Hopf), simple+Hadamard collapses to a Hadamard edge with π induced
//     on the lower-id endpoint, and a Hadamard edge absorbs further edges;
//   - between same-color spiders, a Hadamard added over a simple edge
//     induces π on the lower-id endpoint and is dropped, a Hadamard pair
//     cancels, and a simple added over a Hadamard leaves a simple edge;
//   - a parallel edge that an H-box endpoint cannot absorb is subdivided:
//     a fresh spider is spliced in so no collision remains;
//   - a second edge between two boundaries is ErrBoundaryEdge.
//
// Everything else records the edge as given.
// Complexity: O(1).
func (g *Graph) AddEdge(uID, vID VertexID, et EdgeType) error {
	u, ok := g.vertices[uID]
	if !ok {
		return ErrVertexNotFound
	}
	v, ok := g.vertices[vID]
	if !ok {
		return ErrVertexNotFound
	}

	// Self-loop: fold into the phase, store nothing.
	if u == v {
		if et == Hadamard {
			u.Phase = u.Phase.Add(phase.Pi())
		}

		return nil
	}

	// Deterministic orientation: π induction always lands on the lower id.
	if u.ID > v.ID {
		u, v = v, u
	}

	hasSimple := g.IsNeighborOfType(u.ID, v.ID, Simple)
	hasHadamard := g.IsNeighborOfType(u.ID, v.ID, Hadamard)

	// Spider–spider pairs run the collapse table.
	if u.IsZX() && v.IsZX() {
		g.addSpiderEdge(u, v, et, hasSimple, hasHadamard)

		return nil
	}

	if u.IsBoundary() && v.IsBoundary() {
		if hasSimple || hasHadamard {
			return ErrBoundaryEdge
		}
		record(u, v, et)

		return nil
	}

	// Mixed pairs (H-box or boundary endpoint): parallel edges of
	// different types coexist; a same-type duplicate either subdivides
	// (H-box) or is dropped.
	sameTypeExists := (et == Simple && hasSimple) || (et == Hadamard && hasHadamard)
	if !sameTypeExists {
		record(u, v, et)

		return nil
	}
	if u.IsHBox() || v.IsHBox() {
		g.subdivide(u, v, et)
	}

	return nil
}

// addSpiderEdge applies the spider–spider collapse table. u.ID < v.ID.
func (g *Graph) addSpiderEdge(u, v *Vertex, et EdgeType, hasSimple, hasHadamard bool) {
	if !hasSimple && !hasHadamard {
		record(u, v, et)

		return
	}

	sameColor := u.Type == v.Type

	switch {
	case !sameColor && hasSimple && et == Simple:
		// Hopf: the pair cancels entirely.
		erase(u, v, Simple)
	case !sameColor && hasSimple && et == Hadamard:
		// Collapse to a Hadamard edge; the crossing induces π.
		erase(u, v, Simple)
		record(u, v, Hadamard)
		u.Phase = u.Phase.Add(phase.Pi())
	case !sameColor && hasHadamard:
		// A Hadamard edge between opposite colors absorbs further edges.
	case sameColor && hasSimple && et == Simple:
		// Parallel plain wires between same-color spiders are idempotent.
	case sameColor && hasSimple && et == Hadamard:
		// The Hadamard becomes a self-loop after fusing along the simple
		// edge: π on one endpoint, edge dropped.
		u.Phase = u.Phase.Add(phase.Pi())
	case sameColor && hasHadamard && et == Hadamard:
		// Two Hadamards cancel.
		erase(u, v, Hadamard)
	case sameColor && hasHadamard && et == Simple:
		erase(u, v, Hadamard)
		record(u, v, Simple)
	}
}

// subdivide splices a fresh vertex onto a would-be parallel edge touching
// an H-box: the new vertex is an H-box with phase π for a Hadamard edge and
// a plain Z-spider otherwise, connected to both endpoints by simple wires.
func (g *Graph) subdivide(u, v *Vertex, et EdgeType) {
	vt, ph := Z, phase.Zero()
	if et == Hadamard {
		vt, ph = HBox, phase.Pi()
	}
	mid := g.AddVertexAt(vt, ph, (u.Row+v.Row)/2, (u.Col+v.Col)/2)
	record(u, mid, Simple)
	record(mid, v, Simple)
}

// RemoveEdge deletes the edge (u, et, v).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(uID, vID VertexID, et EdgeType) error {
	u, ok := g.vertices[uID]
	if !ok {
		return ErrVertexNotFound
	}
	v, ok := g.vertices[vID]
	if !ok {
		return ErrVertexNotFound
	}
	if u == v || !g.IsNeighborOfType(uID, vID, et) {
		return ErrEdgeNotFound
	}
	erase(u, v, et)

	return nil
}

// RemoveAllEdgesBetween deletes every edge between u and v and returns the
// count removed.
func (g *Graph) RemoveAllEdgesBetween(uID, vID VertexID) int {
	removed := 0
	for _, et := range []EdgeType{Simple, Hadamard} {
		if g.RemoveEdge(uID, vID, et) == nil {
			removed++
		}
	}

	return removed
}

// IsNeighbor reports whether any edge connects u and v.
func (g *Graph) IsNeighbor(uID, vID VertexID) bool {
	return g.IsNeighborOfType(uID, vID, Simple) || g.IsNeighborOfType(uID, vID, Hadamard)
}

// IsNeighborOfType reports whether an edge of type et connects u and v.
func (g *Graph) IsNeighborOfType(uID, vID VertexID, et EdgeType) bool {
	u, ok := g.vertices[uID]
	if !ok {
		return false
	}
	_, ok = u.adj[Neighbor{ID: vID, Type: et}]

	return ok
}

// EdgeTypeBetween returns the type of the edge between u and v, simple
// first if both exist, and false when the vertices are not connected.
func (g *Graph) EdgeTypeBetween(uID, vID VertexID) (EdgeType, bool) {
	if g.IsNeighborOfType(uID, vID, Simple) {
		return Simple, true
	}
	if g.IsNeighborOfType(uID, vID, Hadamard) {
		return Hadamard, true
	}

	return Simple, false
}

// Neighbors returns v's adjacency records sorted by (id, edge type).
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id VertexID) []Neighbor {
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}
	out := make([]Neighbor, 0, len(v.adj))
	for nb := range v.adj {
		out = append(out, nb)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}

		return out[i].Type < out[j].Type
	})

	return out
}

// NeighborIDs returns the distinct neighbor ids of v in ascending order.
func (g *Graph) NeighborIDs(id VertexID) []VertexID {
	nbs := g.Neighbors(id)
	out := make([]VertexID, 0, len(nbs))
	for _, nb := range nbs {
		if len(out) == 0 || out[len(out)-1] != nb.ID {
			out = append(out, nb.ID)
		}
	}

	return out
}

// NumNeighbors returns the number of adjacency records at v (parallel
// edges of different types count separately, matching the boundary
// degree-1 invariant).
func (g *Graph) NumNeighbors(id VertexID) int {
	v, ok := g.vertices[id]
	if !ok {
		return 0
	}

	return len(v.adj)
}

// FirstNeighbor returns v's first adjacency record in sorted order.
func (g *Graph) FirstNeighbor(id VertexID) (Neighbor, bool) {
	nbs := g.Neighbors(id)
	if len(nbs) == 0 {
		return Neighbor{}, false
	}

	return nbs[0], true
}

// SecondNeighbor returns v's second adjacency record in sorted order.
func (g *Graph) SecondNeighbor(id VertexID) (Neighbor, bool) {
	nbs := g.Neighbors(id)
	if len(nbs) < 2 {
		return Neighbor{}, false
	}

	return nbs[1], true
}

// NumEdges returns the edge count (sum of degrees over two).
// Complexity: O(V).
func (g *Graph) NumEdges() int {
	sum := 0
	for _, v := range g.vertices {
		sum += len(v.adj)
	}

	return sum / 2
}

// ForEachEdge visits every edge exactly once in ascending (U, V, type)
// order, reporting each with U < V.
// Complexity: O(V log V + E log E).
func (g *Graph) ForEachEdge(fn func(Edge)) {
	for _, v := range g.Vertices() {
		for _, nb := range g.Neighbors(v.ID) {
			if nb.ID > v.ID {
				fn(Edge{U: v.ID, V: nb.ID, Type: nb.Type})
			}
		}
	}
}
