// Package brute — exhaustive depth-first permutation search.
//
// Minimize enumerates Hamiltonian cycles anchored at city 0 via recursive
// DFS with deterministic ascending branching and an incremental running
// minimum. There is no pruning beyond the running minimum and no early
// termination: every branch completes, so the leaf count is a structural
// property of n, not of the data.
//
// Rationale (succinct):
//  1. The distance grid is prefetched into a dense buffer so the hot loop
//     performs only index arithmetic (no interface calls, no bound checks
//     beyond the slice's own).
//  2. Search state is an explicit boolean mask + order array, reused across
//     all (n−1)! leaves: zero allocations after setup.
//  3. The running minimum travels down the call chain through the engine
//     and back up implicitly; each sibling subtree therefore benefits from
//     minima discovered by earlier siblings (left-to-right propagation).
//  4. Ties keep the incumbent: strict `<` means the first-found minimal
//     tour wins, which pins down the reported tour deterministically.
//
// Complexity:
//   - Per leaf: O(1) closing-edge work (edge costs accumulate on the way down).
//   - Total: O((n−1)!) leaves after O(n²) setup; recursion depth exactly n.

package brute

import (
	"math"

	"github.com/katalvlaran/salesman/grid"
)

// anchor is the fixed starting city. Tours are cyclic, so anchoring the
// walk at index 0 eliminates rotational symmetry without loss of generality.
const anchor = 0

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// engine holds all search data and policies.
// A dedicated struct (instead of anonymous closures) keeps dependencies
// explicit, testing simpler, and hot-path state predictable.
type engine struct {
	// Configuration / policy
	n     int
	halve bool // reflection elimination (only meaningful for n ≥ 3)

	// Diagnostic observers (may be nil)
	onTour   func([]int, float64)
	onNewMin func([]int, float64)

	// Graph data (dense buffer): w[u*n+v]
	w []float64

	// Current search state
	visited []bool // which cities are on the current path
	path    []int  // path[0:depth]; path[0]==anchor, path[n]==anchor preset

	// Current best complete tour (running minimum)
	bestTour []int
	best     float64

	// Statistics
	leaves uint64 // complete permutations scored at the base case
}

// at is a fast accessor into the dense weight buffer.
func (e *engine) at(u, v int) float64 { return e.w[u*e.n+v] }

// prefetch loads the grid into the dense buffer.
// Structural validity (finite, symmetric, zero diagonal) is already
// guaranteed by grid.Validate in Minimize.
func (e *engine) prefetch(g *grid.Grid) error {
	var (
		i, j int
		x    float64
		err  error
	)
	e.w = make([]float64, e.n*e.n)
	for i = 0; i < e.n; i++ {
		for j = 0; j < e.n; j++ {
			x, err = g.At(i, j)
			if err != nil {
				return err
			}
			e.w[i*e.n+j] = x
		}
	}

	return nil
}

// commit records a new running minimum. The closing anchor at path[n] is
// preset, so the whole closed tour is a straight copy. The minimum is kept
// RAW here — rounding it mid-search would let an FP-equal mirrored tour
// slip past the strict-< tie-break; stabilization happens once, in Minimize.
func (e *engine) commit(total float64) {
	copy(e.bestTour, e.path)
	e.best = total
}

// dfs walks the permutation tree: state is (visited, path[0:depth]) and the
// transition commits one pending city to position depth.
//
// Invariants at every node:
//   - visited marks exactly the cities in path[0:depth].
//   - costSoFar is the sum of the depth−1 edges already committed.
//   - e.best is non-increasing over the whole walk.
func (e *engine) dfs(last int, depth int, costSoFar float64) {
	// Base case: complete permutation — close the cycle at the anchor.
	if depth == e.n {
		var total = costSoFar + e.at(last, anchor)
		e.leaves++
		if e.onTour != nil {
			e.onTour(e.path, total)
		}
		// Strict < keeps the incumbent on ties: first minimal tour wins.
		if total < e.best {
			e.commit(total)
			if e.onNewMin != nil {
				e.onNewMin(e.path, e.best)
			}
		}

		return
	}

	// Branch: commit each pending city in ascending index order.
	var v int
	for v = 1; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		if e.halve {
			// Keep only orderings with path[1] < path[n-1]: the largest
			// index never opens the tour, and the city placed last must
			// exceed the opener. Together these score exactly one
			// orientation of every undirected tour.
			if depth == 1 && v == e.n-1 {
				continue
			}
			if depth == e.n-1 && v < e.path[1] {
				continue
			}
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, costSoFar+e.at(last, v))
		e.visited[v] = false
	}
}

// Minimize finds the minimum-length Hamiltonian cycle over the grid by
// exhaustive enumeration anchored at city 0.
//
// Contract:
//   - g must be non-nil (ErrNilGrid) and structurally valid; violations of
//     grid invariants are forwarded as the grid package's sentinels.
//   - n==1 degenerates to the trivial self-loop: Tour=[0 0], Cost=0, one leaf.
//   - On any valid grid the search always terminates with a finite minimum.
//
// Determinism: identical grids yield identical Results, including the tour
// (ascending branching + strict-< tie-break pin the winner).
//
// Complexity: O((n−1)!·n) time, O(n²) memory.
func Minimize(g *grid.Grid, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := g.Validate(); err != nil {
		return Result{}, err
	}

	// Engine initialization.
	var e engine
	e.n = g.Size()
	e.halve = opts.HalveReflections && e.n > 2 // n≤2 has a single self-mirrored tour
	e.onTour = opts.Hooks.OnTour
	e.onNewMin = opts.Hooks.OnNewMin
	if err := e.prefetch(g); err != nil {
		return Result{}, err
	}

	// Search state: anchor committed at position 0, closure preset at n.
	e.visited = make([]bool, e.n)
	e.path = make([]int, e.n+1)
	e.path[0] = anchor
	e.path[e.n] = anchor
	e.visited[anchor] = true
	e.bestTour = make([]int, e.n+1)
	e.best = math.Inf(1)

	// Run the walk. Depth 1: the anchor is placed, n−1 cities pend.
	e.dfs(anchor, 1, 0)

	return Result{Tour: e.bestTour, Cost: round1e9(e.best), Leaves: e.leaves}, nil
}
