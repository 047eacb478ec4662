package grid

// NewUnchecked assembles a Grid directly from a raw buffer, bypassing New.
// Test-only: lets the suite build structurally broken grids to exercise
// Validate's sentinels.
func NewUnchecked(n int, w []float64) *Grid {
	return &Grid{n: n, w: w}
}
