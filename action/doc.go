// Package action implements the composable, reversible local edits that
// rewrite rules are built from: vertex toggling, identity insertion and
// removal, boundary detachment, phase gadgetization, and neighbor
// unfusion.
//
// Every action is a small struct exposing
//
//	Apply(g *zxgraph.Graph) bool
//	Undo(g *zxgraph.Graph) bool
//
// Apply returns false — leaving the graph untouched — when its
// preconditions no longer hold; callers treat that as "rejected", not as
// an error. A successful Apply captures a zxgraph.Snapshot of the edited
// region first, so Undo restores the exact pre-image (same ids, same
// attributes, same adjacency). Undo∘Apply is idempotent.
//
// Actions hold vertex ids only, never handles, so an action instance
// stays meaningful across unrelated graph edits and re-validates itself
// on each Apply.
package action
