// Package phase implements rational multiples of π as used on ZX-calculus
// spiders.
//
// A Phase is a value type holding a reduced fraction num/den in units of π,
// normalized so that:
//
//   - den > 0 and gcd(|num|, den) == 1;
//   - the represented angle lies in (−π, π], i.e. num ∈ (−den, den].
//
// Normalization is modular: phases are always reduced modulo 2π, so
// Phase(3, 1) == Phase(1, 1) and Phase(7, 4) == Phase(-1, 4).
//
// Terminology used throughout the module:
//
//   - an "n·π phase" has denominator 1 (the angle is 0 or π);
//   - a "Clifford phase" has denominator ≤ 2 (multiples of π/2);
//   - a "T-like phase" has denominator exactly 4 (odd multiples of π/4).
//
// All operations are O(1) and allocation-free.
package phase
