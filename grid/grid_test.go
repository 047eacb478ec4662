// Package grid_test validates distance-grid construction and invariants.
// Focus:
//  1. Strict sentinels (empty input, index bounds, structural violations).
//  2. Metric invariants: zero diagonal, symmetry, triangle inequality.
//  3. Known geometry: the 3-4-5 right triangle.
//  4. Idempotence: identical points ⇒ bit-identical grids.
package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/cities"
	"github.com/katalvlaran/salesman/grid"
)

// epsTriangle is the slack allowed on the triangle inequality: Euclidean
// metrics satisfy it exactly, so only accumulated FP error may show up.
const epsTriangle = 1e-9

// mkTriangle345 returns the 3-4-5 right triangle fixture.
func mkTriangle345() []cities.Point {
	return []cities.Point{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 4, Y: 0}}
}

func TestNew_EmptySentinel(t *testing.T) {
	_, err := grid.New(nil)
	require.ErrorIs(t, err, grid.ErrNoCities)

	_, err = grid.New([]cities.Point{})
	require.ErrorIs(t, err, grid.ErrNoCities)
}

func TestNew_SingleCity(t *testing.T) {
	g, err := grid.New([]cities.Point{{X: 7, Y: 9}})
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())

	d, err := g.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, d)
	require.NoError(t, g.Validate())
}

func TestAt_IndexSentinel(t *testing.T) {
	g, err := grid.New(mkTriangle345())
	require.NoError(t, err)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err = g.At(ij[0], ij[1])
		require.ErrorIs(t, err, grid.ErrIndexOutOfRange, "At(%d,%d)", ij[0], ij[1])
	}
}

func TestNew_Triangle345(t *testing.T) {
	g, err := grid.New(mkTriangle345())
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())

	want := [3][3]float64{
		{0, 3, 4},
		{3, 0, 5},
		{4, 5, 0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d, aerr := g.At(i, j)
			require.NoError(t, aerr)
			require.Equal(t, want[i][j], d, "distance (%d,%d)", i, j)
		}
	}
}

func TestNew_MetricInvariants(t *testing.T) {
	pts, err := cities.Generate(40, 1000, 7)
	require.NoError(t, err)
	g, err := grid.New(pts)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	n := g.Size()
	at := func(i, j int) float64 {
		d, aerr := g.At(i, j)
		require.NoError(t, aerr)
		return d
	}

	for i := 0; i < n; i++ {
		require.Zero(t, at(i, i), "diagonal (%d,%d)", i, i)
		for j := i + 1; j < n; j++ {
			require.Equal(t, at(i, j), at(j, i), "symmetry (%d,%d)", i, j)
			require.GreaterOrEqual(t, at(i, j), 0.0)
		}
	}

	// Triangle inequality within FP slack.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				require.LessOrEqual(t, at(i, k), at(i, j)+at(j, k)+epsTriangle,
					"triangle (%d,%d,%d)", i, j, k)
			}
		}
	}
}

func TestNew_Idempotent(t *testing.T) {
	pts, err := cities.Generate(25, 500, 3)
	require.NoError(t, err)

	a, err := grid.New(pts)
	require.NoError(t, err)
	b, err := grid.New(pts)
	require.NoError(t, err)

	n := a.Size()
	require.Equal(t, n, b.Size())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			da, _ := a.At(i, j)
			db, _ := b.At(i, j)
			// Bit-identical, not merely close.
			require.Equal(t, math.Float64bits(da), math.Float64bits(db), "(%d,%d)", i, j)
		}
	}
}

func TestValidate_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		g    *grid.Grid
		want error
	}{
		{
			name: "nonzero diagonal",
			g:    grid.NewUnchecked(2, []float64{1, 2, 2, 0}),
			want: grid.ErrNonZeroDiagonal,
		},
		{
			name: "asymmetry",
			g:    grid.NewUnchecked(2, []float64{0, 2, 3, 0}),
			want: grid.ErrAsymmetry,
		},
		{
			name: "negative distance",
			g:    grid.NewUnchecked(2, []float64{0, -1, -1, 0}),
			want: grid.ErrNegativeDistance,
		},
		{
			name: "NaN entry",
			g:    grid.NewUnchecked(2, []float64{0, math.NaN(), math.NaN(), 0}),
			want: grid.ErrNonFinite,
		},
		{
			name: "infinite entry",
			g:    grid.NewUnchecked(2, []float64{0, math.Inf(1), math.Inf(1), 0}),
			want: grid.ErrNonFinite,
		},
		{
			name: "shape mismatch",
			g:    grid.NewUnchecked(3, []float64{0, 1, 1, 0}),
			want: grid.ErrNoCities,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.g.Validate(), tc.want)
		})
	}
}
