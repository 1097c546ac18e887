package rule

import (
	"fmt"

	"github.com/katalvlaran/zxcalc/zxgraph"
)

// MatchOptions controls a matcher pass.
type MatchOptions struct {
	// Candidates restricts the search to the given vertex ids; nil means
	// every vertex of the graph.
	Candidates []zxgraph.VertexID

	// AllowOverlapping returns every match found. When false (the
	// default), vertices touched by an accepted match leave the candidate
	// pool, so the returned instances have pairwise-disjoint core
	// vertices and a driver can apply the whole batch without
	// re-matching.
	AllowOverlapping bool
}

// Matcher enumerates instances of one rule over a graph.
type Matcher interface {
	Name() string
	FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule
}

// pool is the shrinking candidate set of a greedy non-overlap pass.
type pool struct {
	ids map[zxgraph.VertexID]struct{}
}

// newPool seeds the pool from opts.Candidates, defaulting to all
// vertices.
func newPool(g *zxgraph.Graph, opts MatchOptions) *pool {
	ids := opts.Candidates
	if ids == nil {
		ids = g.VertexIDs()
	}
	p := &pool{ids: make(map[zxgraph.VertexID]struct{}, len(ids))}
	for _, id := range ids {
		if g.HasVertex(id) {
			p.ids[id] = struct{}{}
		}
	}

	return p
}

func (p *pool) has(id zxgraph.VertexID) bool {
	_, ok := p.ids[id]

	return ok
}

func (p *pool) hasAll(ids ...zxgraph.VertexID) bool {
	for _, id := range ids {
		if !p.has(id) {
			return false
		}
	}

	return true
}

func (p *pool) drop(ids ...zxgraph.VertexID) {
	for _, id := range ids {
		delete(p.ids, id)
	}
}

// dropWithNeighbors removes the ids and all their current neighbors.
func (p *pool) dropWithNeighbors(g *zxgraph.Graph, ids ...zxgraph.VertexID) {
	for _, id := range ids {
		p.drop(id)
		p.drop(g.NeighborIDs(id)...)
	}
}

// IdentityRemovalMatcher finds phase-0 spiders of degree two.
type IdentityRemovalMatcher struct{}

// Name identifies the matcher in driver reports.
func (IdentityRemovalMatcher) Name() string { return "Identity Removal" }

// FindMatches enumerates matches in ascending-id order.
func (IdentityRemovalMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	for _, v := range g.Vertices() {
		if !p.has(v.ID) {
			continue
		}
		r := NewIdentityRemoval(v.ID)
		if !r.IsApplicable(g) {
			continue
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			continue
		}
		p.drop(v.ID)
		p.drop(g.NeighborIDs(v.ID)...)
	}

	return matches
}

// SpiderFusionMatcher finds same-color spider pairs over simple edges.
type SpiderFusionMatcher struct{}

// Name identifies the matcher in driver reports.
func (SpiderFusionMatcher) Name() string { return "Spider Fusion" }

// FindMatches enumerates matches edge by edge.
func (SpiderFusionMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	g.ForEachEdge(func(e zxgraph.Edge) {
		if e.Type != zxgraph.Simple || !p.hasAll(e.U, e.V) {
			return
		}
		r := NewSpiderFusion(e.U, e.V)
		if !r.IsApplicable(g) {
			return
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			return
		}
		p.drop(e.U, e.V)
		// The merged vertex inherits V's edges, so V's neighborhood is
		// off-limits for further matches this pass.
		p.drop(g.NeighborIDs(e.V)...)
	})

	return matches
}

// HadamardRuleMatcher finds arity-2 H-boxes for graph-like
// normalization.
type HadamardRuleMatcher struct{}

// Name identifies the matcher in driver reports.
func (HadamardRuleMatcher) Name() string { return "Hadamard Rule" }

// FindMatches enumerates matches in ascending-id order.
func (HadamardRuleMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	for _, v := range g.Vertices() {
		r := NewHadamardRule(v.ID)
		if !r.IsApplicable(g) {
			continue
		}
		nbs := g.NeighborIDs(v.ID)
		if !p.hasAll(append([]zxgraph.VertexID{v.ID}, nbs...)...) {
			continue
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			continue
		}
		p.drop(v.ID)
		p.drop(nbs...)
	}

	return matches
}

// HadamardFusionMatcher finds H-boxes cancellable back into edges: an
// arity-2 H-box reached over simple wires, a simple-connected pair of
// arity-2 H-boxes, or an arity-2 H-box on a Hadamard wire.
type HadamardFusionMatcher struct{}

// Name identifies the matcher in driver reports.
func (HadamardFusionMatcher) Name() string { return "Hadamard Fusion" }

// FindMatches enumerates matches edge by edge.
func (HadamardFusionMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	accept := func(h zxgraph.VertexID) {
		r := NewHadamardFusion(h)
		if !r.IsApplicable(g) {
			return
		}
		nbs := g.NeighborIDs(h)
		if !p.hasAll(append([]zxgraph.VertexID{h}, nbs...)...) {
			return
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			return
		}
		p.drop(h)
		p.drop(nbs...)
	}

	g.ForEachEdge(func(e zxgraph.Edge) {
		u, v := g.Vertex(e.U), g.Vertex(e.V)
		switch e.Type {
		case zxgraph.Simple:
			if u.IsHBox() && v.IsHBox() {
				accept(e.U)
				accept(e.V)

				return
			}
			if u.IsHBox() && allSimpleEdges(g, e.U) {
				accept(e.U)
			}
			if v.IsHBox() && allSimpleEdges(g, e.V) {
				accept(e.V)
			}
		case zxgraph.Hadamard:
			if u.IsHBox() {
				accept(e.U)
			} else if v.IsHBox() {
				accept(e.V)
			}
		}
	})

	return matches
}

// allSimpleEdges reports whether every wire at v is simple.
func allSimpleEdges(g *zxgraph.Graph, v zxgraph.VertexID) bool {
	for _, nb := range g.Neighbors(v) {
		if nb.Type != zxgraph.Simple {
			return false
		}
	}

	return true
}

// BialgebraMatcher finds simple Z–X edges in bialgebra position.
type BialgebraMatcher struct{}

// Name identifies the matcher in driver reports.
func (BialgebraMatcher) Name() string { return "Bialgebra" }

// FindMatches enumerates matches edge by edge.
func (BialgebraMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	g.ForEachEdge(func(e zxgraph.Edge) {
		if e.Type != zxgraph.Simple || !p.hasAll(e.U, e.V) {
			return
		}
		r := NewBialgebra(e.U, e.V)
		if !r.IsApplicable(g) {
			return
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			return
		}
		p.dropWithNeighbors(g, e.U, e.V)
	})

	return matches
}

// LocalComplementMatcher finds ±π/2 spiders with interior Hadamard
// neighborhoods.
type LocalComplementMatcher struct{}

// Name identifies the matcher in driver reports.
func (LocalComplementMatcher) Name() string { return "Local Complementation" }

// FindMatches enumerates matches in ascending-id order.
func (LocalComplementMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	for _, v := range g.Vertices() {
		if !p.has(v.ID) {
			continue
		}
		r := NewLocalComplement(v.ID)
		if !r.IsApplicable(g) {
			continue
		}
		nbs := g.NeighborIDs(v.ID)
		if !p.hasAll(nbs...) {
			continue
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			continue
		}
		p.drop(v.ID)
		p.drop(nbs...)
	}

	return matches
}

// PivotMatcher finds Hadamard edges between n·π spiders.
type PivotMatcher struct{}

// Name identifies the matcher in driver reports.
func (PivotMatcher) Name() string { return "Pivot" }

// FindMatches enumerates matches edge by edge.
func (PivotMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	g.ForEachEdge(func(e zxgraph.Edge) {
		if e.Type != zxgraph.Hadamard || !p.hasAll(e.U, e.V) {
			return
		}
		r := NewPivot(e.U, e.V)
		if !r.IsApplicable(g) {
			return
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			return
		}
		p.dropWithNeighbors(g, e.U, e.V)
	})

	return matches
}

// PivotGadgetMatcher finds Hadamard edges with exactly one n·π endpoint.
type PivotGadgetMatcher struct{}

// Name identifies the matcher in driver reports.
func (PivotGadgetMatcher) Name() string { return "Pivot Gadget" }

// FindMatches enumerates matches edge by edge.
func (PivotGadgetMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	g.ForEachEdge(func(e zxgraph.Edge) {
		if e.Type != zxgraph.Hadamard || !p.hasAll(e.U, e.V) {
			return
		}
		v0, v1 := e.U, e.V
		if !g.Vertex(v0).HasNPiPhase() {
			v0, v1 = v1, v0
		}
		r := NewPivotGadget(v0, v1)
		if !r.IsApplicable(g) {
			return
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			return
		}
		p.dropWithNeighbors(g, v0, v1)
	})

	return matches
}

// PivotBoundaryMatcher finds boundary-adjacent spiders pivotable against
// an interior n·π neighbor.
type PivotBoundaryMatcher struct{}

// Name identifies the matcher in driver reports.
func (PivotBoundaryMatcher) Name() string { return "Pivot Boundary" }

// FindMatches walks the boundaries (inputs, then outputs).
func (PivotBoundaryMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	tryBoundary := func(b *zxgraph.Vertex) {
		nb, ok := g.FirstNeighbor(b.ID)
		if !ok || !p.has(nb.ID) {
			return
		}
		vs := nb.ID
		for _, cand := range g.Neighbors(vs) {
			if !p.has(cand.ID) {
				continue
			}
			r := NewPivotBoundary(vs, cand.ID)
			if !r.IsApplicable(g) {
				continue
			}
			matches = append(matches, r)
			if !opts.AllowOverlapping {
				p.dropWithNeighbors(g, vs, cand.ID)
			}

			return
		}
	}

	for _, b := range g.Inputs() {
		tryBoundary(b)
	}
	for _, b := range g.Outputs() {
		tryBoundary(b)
	}

	return matches
}

// StateCopyMatcher finds degree-1 spiders carrying 0 or π next to a
// Z-spider.
type StateCopyMatcher struct{}

// Name identifies the matcher in driver reports.
func (StateCopyMatcher) Name() string { return "State Copy" }

// FindMatches enumerates matches in ascending-id order.
func (StateCopyMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	for _, v := range g.Vertices() {
		if !p.has(v.ID) {
			continue
		}
		nb, ok := g.FirstNeighbor(v.ID)
		if !ok {
			continue
		}
		r := NewStateCopy(v.ID, nb.ID)
		if !r.IsApplicable(g) {
			continue
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			continue
		}
		p.drop(v.ID)
		p.dropWithNeighbors(g, nb.ID)
	}

	return matches
}

// PhaseGadgetMatcher groups gadgets whose axels hang off identical
// neighbor sets.
type PhaseGadgetMatcher struct{}

// Name identifies the matcher in driver reports.
func (PhaseGadgetMatcher) Name() string { return "Phase Gadget" }

// FindMatches groups gadget leaves by their axels' neighbor sets.
func (PhaseGadgetMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)

	axelToLeaf := make(map[zxgraph.VertexID]zxgraph.VertexID)
	var groupOrder []string
	groups := make(map[string][]zxgraph.VertexID) // key → axels

	for _, v := range g.Vertices() {
		if !p.has(v.ID) {
			continue
		}
		if v.Phase.Denominator() <= 2 || g.NumNeighbors(v.ID) != 1 {
			continue
		}
		nb, _ := g.FirstNeighbor(v.ID)
		axel := g.Vertex(nb.ID)
		if !axel.HasNPiPhase() || axel.IsBoundary() {
			continue
		}
		if _, dup := axelToLeaf[axel.ID]; dup {
			continue
		}
		grp := gadgetGroup(g, axel.ID, v.ID)
		if len(grp) == 0 {
			continue
		}
		axelToLeaf[axel.ID] = v.ID

		key := idKey(grp)
		if _, seen := groups[key]; !seen {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], axel.ID)
	}

	var matches []Rule
	for _, key := range groupOrder {
		axels := groups[key]
		leaves := make([]zxgraph.VertexID, len(axels))
		for i, a := range axels {
			leaves[i] = axelToLeaf[a]
		}
		r := NewPhaseGadget(axels, leaves)
		if !r.IsApplicable(g) {
			continue
		}
		matches = append(matches, r)
		if !opts.AllowOverlapping {
			p.drop(axels...)
			p.drop(leaves...)
		}
	}

	return matches
}

// idKey renders a sorted id slice as a map key.
func idKey(ids []zxgraph.VertexID) string {
	return fmt.Sprint(ids)
}
