// Package boolmat implements dense boolean matrices over GF(2) and the
// Gaussian-elimination routines the g-flow calculator solves correction
// sets with.
//
// A Row is a vector of 0/1 cells; addition is XOR. A Matrix is a list of
// equal-length rows and records, when asked, the row operations performed
// during elimination so callers can replay them.
//
// The augmented solver treats the last column as the right-hand side: a
// system is solvable iff after forward elimination no zero row carries a
// one in that column.
package boolmat
