// Package zxcalc is a rewrite engine over ZX-calculus diagrams:
// a labelled multigraph representation of linear maps used to simplify
// quantum circuits.
//
// 🚀 What is zxcalc?
//
//	A deterministic, allocation-conscious library that brings together:
//
//	  • A graph store with the ZX edge algebra built into its mutators
//	  • Reversible local edits (actions) and rewrite rules with full
//	    apply/undo support
//	  • Rule matchers with greedy non-overlap or exhaustive enumeration
//	  • Causal-flow and g-flow detectors
//	  • Fixed-point simplification drivers and a causal-flow-preserving
//	    optimizer driven by a 2Q-cost heuristic
//
// Under the hood, everything is organized leaves-first:
//
//	phase/     — rational multiples of π with mod-2π normalization
//	zxgraph/   — vertices, typed edges, edge algebra, queries, snapshots
//	boolmat/   — GF(2) matrices and Gaussian elimination
//	action/    — composable, reversible local graph edits
//	rule/      — rewrite rules and their matchers
//	flow/      — causal-flow and g-flow analysis
//	heuristic/ — 2Q-cost decrease scoring
//	simplify/  — reduction drivers and the causal-flow optimizer
//
// Dependencies flow upward only: rules depend on actions and the graph;
// matchers depend on rules; drivers depend on matchers, rules, and flow
// analysis. A graph is single-owner and single-threaded; drivers accept
// a context for cooperative cancellation.
package zxcalc
