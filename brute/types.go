// Package brute defines result/option types and sentinel errors for the
// brute subpackage of github.com/katalvlaran/salesman.
package brute

import "errors"

// Sentinel errors for the exhaustive search.
var (
	// ErrNilGrid indicates Minimize was called with a nil distance grid.
	ErrNilGrid = errors.New("brute: distance grid must be non-nil")
	// ErrBadTour indicates a tour is not a closed permutation of all cities.
	ErrBadTour = errors.New("brute: tour must be a closed permutation of all cities")
)

// Hooks are optional observers invoked from inside the search.
// Both callbacks receive a closed tour of length n+1 with tour[0]==tour[n]==0.
//
// The slice is BORROWED: it aliases the engine's working state and is only
// valid for the duration of the call. Retain a copy if you need it later.
// Nil callbacks cost nothing on the hot path.
type Hooks struct {
	// OnTour fires after every complete permutation is scored,
	// before it is compared against the running minimum.
	OnTour func(tour []int, cost float64)

	// OnNewMin fires whenever a complete tour strictly improves the
	// running minimum. The sequence of costs observed here is strictly
	// decreasing.
	OnNewMin func(tour []int, cost float64)
}

// Options govern the search. The zero value is the exhaustive default:
// score all (n−1)! orderings, no observers.
type Options struct {
	// Hooks are the diagnostic observers; see Hooks.
	Hooks Hooks

	// HalveReflections prunes mirrored tours so each undirected tour is
	// scored exactly once: the walk keeps only orderings with
	// tour[1] < tour[n-1]. Leaves then counts (n−1)!/2 for n ≥ 3.
	// The minimal cost is unaffected; the winning tour may be the
	// reverse orientation of the one found with the option off.
	HalveReflections bool
}

// DefaultOptions returns the exhaustive defaults (no halving, no hooks).
func DefaultOptions() Options {
	return Options{}
}

// Result holds the outcome of an exhaustive search.
type Result struct {
	// Tour is the first-found minimal tour: vertex indices of length n+1,
	// starting and ending at the anchor city 0.
	Tour []int

	// Cost is the total cycle length, stabilized to 1e-9 precision.
	Cost float64

	// Leaves counts complete permutations scored at the base case:
	// (n−1)! by default, (n−1)!/2 with HalveReflections for n ≥ 3,
	// and exactly 1 for n ≤ 2.
	Leaves uint64
}
