// SPDX-License-Identifier: MIT

// Package grid - construction and access for distance grids.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Hot-path discipline: a single flat buffer, no hidden allocations after New.
package grid

import (
	"math"

	"github.com/katalvlaran/salesman/cities"
)

// New builds the n×n Euclidean distance grid for the given points.
//
// Each unordered pair (i,j), i<j, is computed exactly once — one square
// root per pair — and mirrored into both cells. Diagonal cells keep their
// zero value from allocation, so grid[i][i]==0 exactly.
//
// Contract:
//   - len(points) ≥ 1, otherwise ErrNoCities (n==0 is undefined; n==1
//     degenerates to the 1×1 zero grid).
//   - Coordinates obey the cities.MaxWidth precondition so that squared
//     differences cannot overflow int64.
//
// Idempotence: the same point slice always yields a bit-identical grid.
//
// Complexity: O(n²) time, O(n²) space.
func New(points []cities.Point) (*Grid, error) {
	var n = len(points)
	if n == 0 {
		return nil, ErrNoCities
	}

	var (
		g      = &Grid{n: n, w: make([]float64, n*n)}
		i, j   int
		dx, dy int64
		d      float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = int64(points[i].X) - int64(points[j].X)
			dy = int64(points[i].Y) - int64(points[j].Y)
			d = math.Sqrt(float64(dx*dx + dy*dy))
			g.w[i*n+j] = d
			g.w[j*n+i] = d
		}
	}

	return g, nil
}

// Size returns the number of cities n (the grid is n×n).
//
// Complexity: O(1).
func (g *Grid) Size() int { return g.n }

// At returns the distance from city i to city j with defensive bound checks.
//
// Complexity: O(1).
func (g *Grid) At(i, j int) (float64, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return 0, ErrIndexOutOfRange
	}
	return g.w[i*g.n+j], nil
}

// Validate re-checks the structural invariants of the grid:
//   - diagonal ≈ 0 (|a_ii| ≤ symTol),
//   - all entries finite (no NaN/±Inf),
//   - no negative distances,
//   - |a_ij − a_ji| ≤ symTol.
//
// New establishes all of these by construction; Validate exists so that
// solvers can guard their preconditions without trusting the caller.
//
// Complexity: O(n²) time, O(1) space.
func (g *Grid) Validate() error {
	if g == nil || g.n < 1 || len(g.w) != g.n*g.n {
		return ErrNoCities
	}

	var (
		n        = g.n
		i, j     int
		aij, aji float64
		abs      float64
	)

	// Diagonal: a_ii ≈ 0, finite.
	for i = 0; i < n; i++ {
		aij = g.w[i*n+i]
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return ErrNonFinite
		}
		abs = aij
		if abs < 0 {
			abs = -abs
		}
		if abs > symTol {
			return ErrNonZeroDiagonal
		}
	}

	// Off-diagonal scan: finite, non-negative, symmetric.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij = g.w[i*n+j]
			aji = g.w[j*n+i]
			if math.IsNaN(aij) || math.IsInf(aij, 0) || math.IsNaN(aji) || math.IsInf(aji, 0) {
				return ErrNonFinite
			}
			if aij < 0 || aji < 0 {
				return ErrNegativeDistance
			}
			abs = aij - aji
			if abs < 0 {
				abs = -abs
			}
			if abs > symTol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}
