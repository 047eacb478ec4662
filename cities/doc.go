// Package cities generates the input data for the salesman pipeline:
// labeled 2-D points with small non-negative integer coordinates.
//
// What:
//
//   - Point is an immutable (X, Y) pair; city identity is positional
//     (the index in the generated slice).
//   - Generate produces n points uniformly inside a width×width map,
//     deterministically from an explicit seed.
//
// Why:
//
//   - Benchmarks and demos need reproducible instances: the same seed must
//     yield the same map on every platform and every run.
//   - Downstream distance arithmetic squares coordinate differences; the
//     MaxWidth bound keeps those squares inside int64 by construction.
//
// Determinism:
//
//   - math/rand with an explicit Source; never time-seeded.
//   - seed==0 selects a fixed default stream (stable, documented policy).
//
// Errors:
//
//   - ErrNoCities: requested count is not positive.
//   - ErrWidthOutOfRange: map width is not in [1..MaxWidth].
package cities
