// Package simplify implements the reduction drivers: fixed-point loops
// that batch-apply non-overlapping matches of the basic rules, the
// classic full/dynamic/symbolic reduction recipes, and the
// causal-flow-preserving optimizer.
//
// Every driver takes an Options carrying a context.Context and a
// *slog.Logger. The context is the cooperative stop flag: drivers check
// it between matcher passes, between rule applications inside a pass,
// and between optimizer iterations, and return with the graph in the
// state of the last completed atomic rewrite — never mid-rewrite. The
// logger receives per-rule iteration and match counts at Debug level.
//
// The classic drivers never undo: they apply disjoint batches until a
// full pass changes nothing. The causal-flow optimizer works one match
// at a time: apply, check HasCausalFlow, and either keep the rewrite
// (re-scoring matches around the affected region) or revert it through
// the rule's Undo. A failed flow check is a rejection, not an error; only
// an input graph with no causal flow at all aborts the optimizer.
package simplify
