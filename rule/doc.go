// Package rule implements the rewrite rules of the engine and their
// matchers.
//
// Every rule instance is a small struct of core vertex ids plus
// parameters, implementing
//
//	IsApplicable(g) bool          // do the preconditions still hold?
//	Apply(g) bool                 // rewrite; false leaves g unchanged
//	Undo(g) bool                  // exact revert of the last Apply
//	CoreVertices() []VertexID     // ids the match directly consumes
//	AffectedVertices(g) []VertexID// ids whose adjacency may have changed
//	Radius() int                  // how far the effect can propagate
//
// Instances hold ids only, never vertex handles, so they survive
// arbitrary graph edits and re-validate themselves through IsApplicable
// before each Apply. Undo restores the exact pre-image via a
// zxgraph.Snapshot captured on Apply.
//
// Matchers enumerate rule instances over a graph (or a candidate vertex
// subset) in ascending-id order. By default a matcher returns greedy
// non-overlapping matches — vertices touched by an accepted match leave
// the candidate pool — so a driver can apply a whole batch without
// re-matching; with AllowOverlapping every match is returned. The
// unfusion matchers additionally bound how many neighbors one match may
// unfuse.
//
// The flow-preserving trio — IdentityFusion, LCompUnfusion,
// PivotUnfusion — is what the causal-flow optimizer draws from; the rest
// serve the classic reduction drivers.
package rule
