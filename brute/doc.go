// Package brute solves the Travelling Salesman Problem exactly by
// exhaustive permutation search over a distance grid.
//
// What:
//
//   - Minimize fixes city 0 as the tour anchor and walks every ordering of
//     the remaining cities depth-first, accumulating tour length edge by
//     edge and keeping a running minimum.
//   - The running minimum is monotonically non-increasing; a complete tour
//     replaces it only under strict `<` (first minimal tour wins ties).
//   - Hook points fire on every scored permutation and on every new
//     minimum, so callers can trace the search without touching the core.
//
// Why:
//
//   - Exactness without cleverness: fixing the anchor removes the n-fold
//     rotational symmetry, after which the walk scores all (n−1)! leaves.
//     Reflections are scored twice by default (the walk ranges over raw
//     orderings); Options.HalveReflections prunes the mirrored half down
//     to the (n−1)!/2 distinct undirected tours.
//   - The factorial cost is the subject under study; there is no bounding
//     smarter than the running minimum and no early termination.
//
// Determinism:
//
//   - Same grid ⇒ same cost, same tour, same leaf count, every run.
//
// Errors:
//
//   - ErrNilGrid: Minimize received a nil grid.
//   - grid.Validate sentinels are forwarded verbatim when the input grid
//     violates its structural invariants.
//
// Complexity:
//
//   - Time: O((n−1)!·n) leaf work on top of O(n²) setup.
//   - Memory: O(n²) for the prefetched weight buffer + O(n) search state.
//     Recursion depth is exactly n.
//
// Practical ceiling: n≈12. Beyond that the walk outlives your patience —
// an algorithmic limit, not an implementation artifact.
package brute
