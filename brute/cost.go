// Package brute — cost utilities shared by the search and its callers.
//
// TourCost recomputes the length of a closed tour independently of the
// search engine; tests and diagnostics use it to cross-check results.
package brute

import "github.com/katalvlaran/salesman/grid"

// TourCost sums the n cycle edges of a closed tour over the grid.
//
// Contract:
//   - g non-nil (ErrNilGrid).
//   - tour is closed: len(tour)==n+1, tour[0]==tour[n], and positions
//     [0..n-1] form a permutation of {0..n-1}; otherwise ErrBadTour.
//
// The returned cost is stabilized to 1e-9 precision, matching Result.Cost.
//
// Complexity: O(n) time, O(n) space (the permutation marker).
func TourCost(g *grid.Grid, tour []int) (float64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}

	var n = g.Size()
	if len(tour) != n+1 || tour[0] != tour[n] {
		return 0, ErrBadTour
	}

	// Permutation check over the open prefix.
	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return 0, ErrBadTour
		}
		seen[v] = true
	}

	// Accumulate the n consecutive edges, closing edge included.
	var (
		sum float64
		w   float64
		err error
	)
	for i = 0; i < n; i++ {
		w, err = g.At(tour[i], tour[i+1])
		if err != nil {
			return 0, ErrBadTour
		}
		sum += w
	}

	return round1e9(sum), nil
}
