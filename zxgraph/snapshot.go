package zxgraph

import (
	"sort"

	"github.com/katalvlaran/zxcalc/phase"
)

// vertexState is the restorable attribute set of one vertex.
type vertexState struct {
	typ    VertexType
	ph     phase.Phase
	qubit  int
	row    float64
	col    float64
	input  bool
	output bool
}

// Snapshot captures an induced local region of a graph — vertex attributes
// plus every edge incident to the region — precisely enough to restore it.
//
// It is the uniform undo mechanism for actions and rules: capture the
// closed neighborhood of a rewrite's core before applying, and Restore
// reverts the rewrite exactly. Restoration relies on two store guarantees:
// ids are never reused (so a vertex created by the rewrite has an id at or
// above the captured watermark), and a removed id may be re-minted.
//
// A rewrite must confine its edits (vertex removals, attribute changes,
// edge changes) to the captured region; edits outside it are not reverted.
type Snapshot struct {
	watermark VertexID
	verts     map[VertexID]vertexState
	edges     map[Edge]struct{}
}

// Capture records the state of the given region ids (unknown ids are
// skipped) and all their incident edges.
// Complexity: O(|region| · deg).
func (g *Graph) Capture(region []VertexID) *Snapshot {
	s := &Snapshot{
		watermark: g.nextID,
		verts:     make(map[VertexID]vertexState, len(region)),
		edges:     make(map[Edge]struct{}),
	}

	for _, id := range region {
		v, ok := g.vertices[id]
		if !ok {
			continue
		}
		s.verts[id] = vertexState{
			typ:    v.Type,
			ph:     v.Phase,
			qubit:  v.Qubit,
			row:    v.Row,
			col:    v.Col,
			input:  g.IsInput(v),
			output: g.IsOutput(v),
		}
		for nb := range v.adj {
			s.edges[normalizeEdge(id, nb.ID, nb.Type)] = struct{}{}
		}
	}

	return s
}

func normalizeEdge(u, v VertexID, et EdgeType) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v, Type: et}
}

// Restore reverts the captured region: vertices created since the capture
// are removed, captured vertices are re-minted or reset, and the incident
// edge set is reconciled record-for-record. Always returns true once the
// graph is back in the captured state.
// Complexity: O(created + |region| · deg).
func (s *Snapshot) Restore(g *Graph) bool {
	// Drop everything the rewrite created.
	for _, id := range g.VertexIDs() {
		if id >= s.watermark {
			_ = g.RemoveVertex(id)
		}
	}

	// Re-mint removed vertices and reset surviving ones, ascending by id
	// so boundary re-registration is deterministic.
	ids := make([]VertexID, 0, len(s.verts))
	for id := range s.verts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		st := s.verts[id]
		v, exists := g.vertices[id]
		if !exists {
			v = g.newVertex(id, st.typ, st.ph, st.qubit, st.row, st.col)
			if st.input {
				g.inputs = append(g.inputs, v)
				g.inputList[st.qubit] = v
			}
			if st.output {
				g.outputs = append(g.outputs, v)
				g.outputList[st.qubit] = v
			}

			continue
		}
		v.Type = st.typ
		v.Phase = st.ph
		v.Qubit = st.qubit
		v.Row = st.row
		v.Col = st.col
	}

	// Reconcile edges: erase records the rewrite added, re-add records it
	// removed. Raw record/erase bypass the edge algebra on purpose — the
	// captured state is already algebra-consistent.
	for _, id := range ids {
		v := g.vertices[id]
		current := make([]Neighbor, 0, len(v.adj))
		for nb := range v.adj {
			current = append(current, nb)
		}
		for _, nb := range current {
			if _, keep := s.edges[normalizeEdge(id, nb.ID, nb.Type)]; !keep {
				erase(v, g.vertices[nb.ID], nb.Type)
			}
		}
	}
	for e := range s.edges {
		u, w := g.vertices[e.U], g.vertices[e.V]
		if u == nil || w == nil {
			return false // endpoint outside the captured region vanished
		}
		if !g.IsNeighborOfType(e.U, e.V, e.Type) {
			record(u, w, e.Type)
		}
	}

	return true
}
