package simplify

import (
	"sort"

	"github.com/katalvlaran/zxcalc/flow"
	"github.com/katalvlaran/zxcalc/heuristic"
	"github.com/katalvlaran/zxcalc/rule"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// scoredMatch pairs a candidate rewrite with its predicted 2Q-cost drop.
type scoredMatch struct {
	r     rule.Rule
	score int
}

// optStats tallies tried/applied counts per rule kind.
type optStats struct {
	tried   map[string]int
	applied map[string]int
}

func newOptStats() *optStats {
	return &optStats{tried: make(map[string]int), applied: make(map[string]int)}
}

func kindOf(r rule.Rule) string {
	switch r.(type) {
	case *rule.IdentityFusion:
		return "identity_fusion"
	case *rule.LCompUnfusion:
		return "lcomp_unfusion"
	case *rule.PivotUnfusion:
		return "pivot_unfusion"
	default:
		return "other"
	}
}

// collectMatches gathers every positive-score candidate of the three
// flow-preserving rules over the candidate set, sorted ascending by
// score so the best match pops off the back in O(1).
func collectMatches(
	g *zxgraph.Graph,
	candidates []zxgraph.VertexID,
	maxLCompUnfusions, maxPivotUnfusions int,
) []scoredMatch {
	matchOpts := rule.MatchOptions{Candidates: candidates, AllowOverlapping: true}

	matchers := []rule.Matcher{
		rule.IdentityFusionMatcher{},
		rule.LCompUnfusionMatcher{NumMaxUnfusions: maxLCompUnfusions},
		rule.PivotUnfusionMatcher{NumMaxUnfusions: maxPivotUnfusions},
	}

	var matches []scoredMatch
	for _, m := range matchers {
		for _, r := range m.FindMatches(g, matchOpts) {
			score, ok := heuristic.TwoQubitDecrease(r, g)
			if ok && score > 0 {
				matches = append(matches, scoredMatch{r: r, score: score})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	return matches
}

// maxRadius is the widest rematch radius over the optimizer's rule set.
func maxRadius() int {
	radii := []int{
		rule.NewIdentityFusion(0).Radius(),
		rule.NewLCompUnfusion(0, nil).Radius(),
		rule.NewPivotUnfusion(0, 0, nil, nil).Radius(),
	}
	max := radii[0]
	for _, r := range radii[1:] {
		if r > max {
			max = r
		}
	}

	return max
}

// updateAffectedMatches drops every match whose core intersects the
// applied rewrite's affected ball, re-matches on that ball, and restores
// the ascending score order.
func updateAffectedMatches(
	g *zxgraph.Graph,
	matches []scoredMatch,
	applied rule.Rule,
	maxLCompUnfusions, maxPivotUnfusions int,
) []scoredMatch {
	affected := applied.AffectedVertices(g)
	space := g.ClosedNeighborhood(affected, maxRadius())

	inSpace := make(map[zxgraph.VertexID]struct{}, len(space))
	for _, id := range space {
		inSpace[id] = struct{}{}
	}

	kept := matches[:0]
	for _, m := range matches {
		stale := false
		for _, id := range m.r.CoreVertices() {
			if _, hit := inSpace[id]; hit {
				stale = true

				break
			}
		}
		if !stale {
			kept = append(kept, m)
		}
	}

	kept = append(kept, collectMatches(g, space, maxLCompUnfusions, maxPivotUnfusions)...)
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score < kept[j].score })

	return kept
}

// CausalFlowOpt is the causal-flow-preserving optimizer: normalize to
// graph-like form, verify the diagram admits a causal flow, then
// greedily apply the best-scoring flow-preserving rewrite, keeping it
// only if the flow survives and reverting it otherwise. Matches are
// re-scored locally around each accepted rewrite.
//
// maxLCompUnfusions and maxPivotUnfusions bound how many neighbors a
// single LComp-unfusion or pivot-unfusion match may split off.
//
// Returns ErrNoCausalFlow when the input diagram has no causal flow; a
// rewrite whose application breaks the flow is silently rejected.
func CausalFlowOpt(g *zxgraph.Graph, maxLCompUnfusions, maxPivotUnfusions int, opts Options) error {
	opts.normalize()

	HadamardRuleSimp(g, opts)
	ToGraphLike(g, opts)

	if !flow.HasCausalFlow(g) {
		return ErrNoCausalFlow
	}

	matches := collectMatches(g, nil, maxLCompUnfusions, maxPivotUnfusions)
	stats := newOptStats()

	for len(matches) > 0 && !opts.stopped() {
		best := matches[len(matches)-1]
		matches = matches[:len(matches)-1]

		kind := kindOf(best.r)
		if !best.r.Apply(g) {
			// Stale instance whose region was re-matched away.
			continue
		}
		stats.tried[kind]++

		if !flow.HasCausalFlow(g) {
			best.r.Undo(g)

			continue
		}

		stats.applied[kind]++
		g.RemoveIsolatedVertices()
		matches = updateAffectedMatches(g, matches, best.r,
			maxLCompUnfusions, maxPivotUnfusions)
	}

	for _, kind := range []string{"identity_fusion", "lcomp_unfusion", "pivot_unfusion"} {
		opts.Logger.Debug("causal flow optimizer",
			"rule", kind,
			"applied", stats.applied[kind],
			"tried", stats.tried[kind],
		)
	}

	return nil
}
