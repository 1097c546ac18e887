package rule

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/zxcalc/zxgraph"
)

// IdentityFusionMatcher finds interior phase-0 degree-2 spiders in
// graph-like form.
type IdentityFusionMatcher struct{}

// Name identifies the matcher in driver reports.
func (IdentityFusionMatcher) Name() string { return "Identity Fusion" }

// FindMatches enumerates matches in ascending-id order.
func (IdentityFusionMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	for _, v := range g.Vertices() {
		if !p.has(v.ID) {
			continue
		}
		r := NewIdentityFusion(v.ID)
		if !r.IsApplicable(g) {
			continue
		}
		matches = append(matches, r)
		if opts.AllowOverlapping {
			continue
		}
		left, _ := g.FirstNeighbor(v.ID)
		right, _ := g.SecondNeighbor(v.ID)
		p.drop(v.ID)
		p.dropWithNeighbors(g, left.ID, right.ID)
	}

	return matches
}

// splitUnfusable partitions a spider's neighbors (minus `exclude`, the
// opposite pivot endpoint if any) into the ones that MUST be unfused for
// the downstream rewrite to be legal — boundaries and non-Hadamard or
// non-Z neighbors — and the ones that may be unfused freely.
func splitUnfusable(g *zxgraph.Graph, v zxgraph.VertexID, exclude zxgraph.VertexID) (must, may []zxgraph.VertexID) {
	for _, nb := range g.Neighbors(v) {
		if nb.ID == exclude {
			continue
		}
		w := g.Vertex(nb.ID)
		if w.IsBoundary() || !w.IsZ() || nb.Type != zxgraph.Hadamard {
			must = append(must, nb.ID)

			continue
		}
		may = append(may, nb.ID)
	}

	return must, may
}

// unfusionSets enumerates the candidate unfusion sets for one spider: the
// mandatory neighbors plus every subset of the optional ones, bounded so
// the total never exceeds maxUnfusions. Sets come out in ascending size,
// subsets in ascending-id order.
func unfusionSets(must, may []zxgraph.VertexID, maxUnfusions int) [][]zxgraph.VertexID {
	if len(must) > maxUnfusions {
		return nil
	}

	var sets [][]zxgraph.VertexID
	for extra := 0; extra <= maxUnfusions-len(must); extra++ {
		if extra == 0 {
			sets = append(sets, append([]zxgraph.VertexID(nil), must...))

			continue
		}
		if extra > len(may) {
			break
		}
		for _, idx := range combin.Combinations(len(may), extra) {
			set := append([]zxgraph.VertexID(nil), must...)
			for _, i := range idx {
				set = append(set, may[i])
			}
			sets = append(sets, set)
		}
	}

	return sets
}

// LCompUnfusionMatcher finds LComp-unfusion instances, bounding how many
// neighbors a single match may unfuse.
type LCompUnfusionMatcher struct {
	NumMaxUnfusions int
}

// Name identifies the matcher in driver reports.
func (LCompUnfusionMatcher) Name() string { return "LComp Unfusion" }

// FindMatches enumerates matches in ascending-id order, one instance per
// admissible unfusion set.
func (m LCompUnfusionMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	for _, v := range g.Vertices() {
		if !p.has(v.ID) || !v.IsZ() {
			continue
		}

		must, may := splitUnfusable(g, v.ID, -1)
		accepted := false
		for _, set := range unfusionSets(must, may, m.NumMaxUnfusions) {
			r := NewLCompUnfusion(v.ID, set)
			if !r.IsApplicable(g) {
				continue
			}
			matches = append(matches, r)
			accepted = true
			if opts.AllowOverlapping {
				continue
			}

			break // one instance per spider in greedy mode
		}
		if accepted && !opts.AllowOverlapping {
			p.drop(v.ID)
			p.drop(g.NeighborIDs(v.ID)...)
		}
	}

	return matches
}

// PivotUnfusionMatcher finds pivot-unfusion instances over Hadamard
// edges, bounding how many neighbors each endpoint may unfuse.
type PivotUnfusionMatcher struct {
	NumMaxUnfusions int
}

// Name identifies the matcher in driver reports.
func (PivotUnfusionMatcher) Name() string { return "Pivot Unfusion" }

// FindMatches enumerates matches edge by edge, crossing the two
// endpoints' admissible unfusion sets.
func (m PivotUnfusionMatcher) FindMatches(g *zxgraph.Graph, opts MatchOptions) []Rule {
	p := newPool(g, opts)
	var matches []Rule

	g.ForEachEdge(func(e zxgraph.Edge) {
		if e.Type != zxgraph.Hadamard || !p.hasAll(e.U, e.V) {
			return
		}
		if !g.Vertex(e.U).IsZ() || !g.Vertex(e.V).IsZ() {
			return
		}

		must0, may0 := splitUnfusable(g, e.U, e.V)
		must1, may1 := splitUnfusable(g, e.V, e.U)

		accepted := false
		for _, s0 := range unfusionSets(must0, may0, m.NumMaxUnfusions) {
			for _, s1 := range unfusionSets(must1, may1, m.NumMaxUnfusions) {
				r := NewPivotUnfusion(e.U, e.V, s0, s1)
				if !r.IsApplicable(g) {
					continue
				}
				matches = append(matches, r)
				accepted = true
				if !opts.AllowOverlapping {
					break
				}
			}
			if accepted && !opts.AllowOverlapping {
				break
			}
		}
		if accepted && !opts.AllowOverlapping {
			p.dropWithNeighbors(g, e.U, e.V)
		}
	})

	return matches
}
