// SPDX-License-Identifier: MIT

// Package grid builds symmetric Euclidean distance grids from city points.
//
// What:
//
//   - Grid is a dense, row-major n×n matrix of pairwise distances,
//     immutable after construction.
//   - New computes each unordered pair exactly once (one square root per
//     pair) and mirrors the value into (i,j) and (j,i); the diagonal is
//     exactly zero by construction.
//   - Validate re-checks the structural invariants (shape, zero diagonal,
//     symmetry, finiteness, non-negativity) the way downstream solvers
//     expect them.
//
// Why:
//
//   - The exhaustive search reads distances (n−1)!·n times; a flat float64
//     buffer with index arithmetic keeps every lookup allocation-free.
//   - Construction is idempotent: the same points always produce a
//     bit-identical grid, which makes golden tests trivial.
//
// Numeric policy:
//
//   - Coordinate differences are squared in int64; cities.MaxWidth bounds
//     the coordinates so the squares cannot overflow (documented
//     precondition, see cities package).
//
// Errors:
//
//   - ErrNoCities: empty point set (n==0); the grid is undefined.
//   - ErrIndexOutOfRange: At received an index outside [0..n-1].
//   - ErrNonZeroDiagonal, ErrAsymmetry, ErrNegativeDistance, ErrNonFinite:
//     structural violations reported by Validate.
//
// Complexity:
//
//   - New: O(n²) time, O(n²) memory (n(n−1)/2 square roots).
//   - At/Size: O(1). Validate: O(n²).
package grid
