// Package cities - deterministic point generation.
//
// This file centralizes all randomness used by the salesman pipeline.
//
// Goals:
//   - Determinism: same (n, width, seed) ⇒ identical points everywhere.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Generate builds a private stream
//     per call, so concurrent Generate calls never share state.
package cities

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// Generate returns n points with coordinates drawn uniformly from [0..width).
// The result is a fresh slice; callers own it and may not expect any aliasing.
//
// Contract:
//   - n ≥ 1, otherwise ErrNoCities.
//   - 1 ≤ width ≤ MaxWidth, otherwise ErrWidthOutOfRange.
//   - Duplicate coordinates are legal: two cities may share a position
//     (their pairwise distance is then zero).
//
// Complexity: O(n) time, O(n) space.
func Generate(n, width int, seed int64) ([]Point, error) {
	if n < 1 {
		return nil, ErrNoCities
	}
	if width < 1 || width > MaxWidth {
		return nil, ErrWidthOutOfRange
	}

	var (
		rng = rngFromSeed(seed)
		pts = make([]Point, n)
		i   int
	)
	for i = 0; i < n; i++ {
		pts[i].X = rng.Intn(width)
		pts[i].Y = rng.Intn(width)
	}

	return pts, nil
}
