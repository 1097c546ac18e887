package simplify

import (
	"github.com/katalvlaran/zxcalc/action"
	"github.com/katalvlaran/zxcalc/rule"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// Simplify batch-applies non-overlapping matches of one matcher until a
// pass finds none, sweeping isolated vertices after each batch. Returns
// the number of passes that found matches.
func Simplify(g *zxgraph.Graph, m rule.Matcher, opts Options) int {
	opts.normalize()

	var matchCounts []int
	for !opts.stopped() {
		matches := m.FindMatches(g, rule.MatchOptions{})
		if len(matches) == 0 {
			break
		}
		matchCounts = append(matchCounts, len(matches))

		for _, r := range matches {
			if opts.stopped() {
				break
			}
			_ = r.Apply(g)
		}
		g.RemoveIsolatedVertices()
	}
	report(opts.Logger, m.Name(), matchCounts)

	return len(matchCounts)
}

// HadamardSimplify is Simplify with a shrink guard: H-box conversion can
// re-match its own output, so the loop also stops when a pass fails to
// reduce the vertex count.
func HadamardSimplify(g *zxgraph.Graph, m rule.Matcher, opts Options) int {
	opts.normalize()

	var matchCounts []int
	for !opts.stopped() {
		before := g.NumVertices()

		matches := m.FindMatches(g, rule.MatchOptions{})
		if len(matches) == 0 {
			break
		}
		matchCounts = append(matchCounts, len(matches))

		for _, r := range matches {
			if opts.stopped() {
				break
			}
			_ = r.Apply(g)
		}
		g.RemoveIsolatedVertices()

		if g.NumVertices() >= before {
			break
		}
	}
	report(opts.Logger, m.Name(), matchCounts)

	return len(matchCounts)
}

// BialgebraSimp runs the bialgebra rule to a fixed point.
func BialgebraSimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.BialgebraMatcher{}, opts)
}

// StateCopySimp runs the state-copy rule to a fixed point.
func StateCopySimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.StateCopyMatcher{}, opts)
}

// PhaseGadgetSimp runs phase-gadget fusion to a fixed point.
func PhaseGadgetSimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.PhaseGadgetMatcher{}, opts)
}

// HadamardFusionSimp runs Hadamard fusion to a fixed point.
func HadamardFusionSimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.HadamardFusionMatcher{}, opts)
}

// HadamardRuleSimp converts arity-2 H-boxes into Hadamard edges.
func HadamardRuleSimp(g *zxgraph.Graph, opts Options) int {
	return HadamardSimplify(g, rule.HadamardRuleMatcher{}, opts)
}

// IdentityRemovalSimp runs identity removal to a fixed point.
func IdentityRemovalSimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.IdentityRemovalMatcher{}, opts)
}

// LocalComplementSimp runs local complementation to a fixed point.
func LocalComplementSimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.LocalComplementMatcher{}, opts)
}

// PivotSimp runs the plain pivot to a fixed point.
func PivotSimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.PivotMatcher{}, opts)
}

// PivotBoundarySimp runs the boundary pivot to a fixed point.
func PivotBoundarySimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.PivotBoundaryMatcher{}, opts)
}

// PivotGadgetSimp runs the gadget pivot to a fixed point.
func PivotGadgetSimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.PivotGadgetMatcher{}, opts)
}

// SpiderFusionSimp runs spider fusion to a fixed point.
func SpiderFusionSimp(g *zxgraph.Graph, opts Options) int {
	return Simplify(g, rule.SpiderFusionMatcher{}, opts)
}

// ToZGraph toggles every X-spider so only Z-spiders remain.
func ToZGraph(g *zxgraph.Graph) {
	for _, v := range g.Vertices() {
		if v.IsX() {
			action.NewToggleVertex(v.ID).Apply(g)
		}
	}
}

// ToXGraph toggles every Z-spider so only X-spiders remain.
func ToXGraph(g *zxgraph.Graph) {
	for _, v := range g.Vertices() {
		if v.IsZ() {
			action.NewToggleVertex(v.ID).Apply(g)
		}
	}
}

// ToGraphLike normalizes towards graph-like form: fuse spiders along
// simple edges, then turn every X-spider green.
func ToGraphLike(g *zxgraph.Graph, opts Options) {
	SpiderFusionSimp(g, opts)
	ToZGraph(g)
}
