// SPDX-License-Identifier: MIT

// Package grid defines the Grid type and sentinel errors for the
// grid subpackage of github.com/katalvlaran/salesman.
package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrNoCities indicates an empty point set; a 0×0 grid is undefined.
	ErrNoCities = errors.New("grid: point set must contain at least one city")
	// ErrIndexOutOfRange indicates an index outside [0..n-1].
	ErrIndexOutOfRange = errors.New("grid: index out of range")
	// ErrNonZeroDiagonal indicates a self-distance differs from zero.
	ErrNonZeroDiagonal = errors.New("grid: diagonal entry must be zero")
	// ErrAsymmetry indicates grid[i][j] != grid[j][i] beyond tolerance.
	ErrAsymmetry = errors.New("grid: matrix must be symmetric")
	// ErrNegativeDistance indicates a negative pairwise distance.
	ErrNegativeDistance = errors.New("grid: distances must be non-negative")
	// ErrNonFinite indicates a NaN or infinite entry.
	ErrNonFinite = errors.New("grid: distances must be finite")
)

// symTol is the structural tolerance for symmetry/diagonal checks.
// New produces exact mirrors and exact zeros; the tolerance only matters
// for grids reconstructed through Validate after external mutation.
const symTol = 1e-12

// Grid is a square, symmetric, non-negative Euclidean distance matrix.
// Entries live in a flat row-major buffer: w[i*n+j] is the distance
// from city i to city j. Immutable once built.
type Grid struct {
	n int
	w []float64
}
