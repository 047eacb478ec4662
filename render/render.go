// Package render — ASCII renderers. Pure functions over value inputs;
// the only allocation is the returned string (built once, no rescans).
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/salesman/cities"
	"github.com/katalvlaran/salesman/grid"
)

// plotCellWidth is the character width of one raster cell. Two columns per
// cell keep the plot roughly square on common terminal fonts and leave room
// for two-digit city indices.
const plotCellWidth = 2

// GridString renders the full distance table:
//
//	Grid:
//
//	         0     1     2
//	    ______________________
//	 0  |  0.0   5.0   4.0
//	 1  |  5.0   0.0   3.0
//	 2  |  4.0   3.0   0.0
//
// Distances are printed with one decimal; the table is meant for eyeballing
// small instances, not for machine parsing.
//
// Complexity: O(n²) time and output size.
func GridString(g *grid.Grid) string {
	var (
		b strings.Builder
		n = g.Size()
		i int
		j int
		w float64
	)
	b.WriteString("\nGrid:\n\n")

	// Column header.
	b.WriteString("    ")
	for j = 0; j < n; j++ {
		fmt.Fprintf(&b, " %5d", j)
	}
	b.WriteByte('\n')
	b.WriteString("    ")
	for j = 0; j < n; j++ {
		b.WriteString("______")
	}
	b.WriteByte('\n')

	// One row per city.
	for i = 0; i < n; i++ {
		fmt.Fprintf(&b, "%2d  |", i)
		for j = 0; j < n; j++ {
			w, _ = g.At(i, j) // indices are in range by construction
			fmt.Fprintf(&b, "%5.1f ", w)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	return b.String()
}

// PlotString renders a pixels×pixels character plot of the map with a legend:
//
//	City 0: (97, 12)        (48, 6)
//	...
//	Plot:
//	x----------x
//	|     3    |
//	|  0     1 |
//	x----------x
//
// Each raster cell is two characters wide; city i is drawn as its index.
// The y axis grows upward (row 0 of the raster is printed last). Cities that
// land on the same cell overwrite each other, highest index wins — the plot
// is a debugging aid, not a lossless encoding.
//
// Contract:
//   - 1 ≤ pixels ≤ width, otherwise ErrBadPlotSize.
//   - Every point must satisfy 0 ≤ X,Y < width, otherwise ErrPointOutOfRange.
//
// Complexity: O(n + pixels²) time and output size.
func PlotString(pts []cities.Point, width, pixels int) (string, error) {
	if pixels < 1 || pixels > width {
		return "", ErrBadPlotSize
	}

	// Integer downscale factor; width ≥ pixels guarantees scale ≥ 1.
	var scale = width / pixels

	var (
		b    strings.Builder
		n    = len(pts)
		cell = make([]string, pixels*pixels) // cell[ix*pixels+iy]
		i    int
		ix   int
		iy   int
	)
	for i = 0; i < pixels*pixels; i++ {
		cell[i] = strings.Repeat(" ", plotCellWidth)
	}

	// Legend + raster placement.
	for i = 0; i < n; i++ {
		if pts[i].X < 0 || pts[i].X >= width || pts[i].Y < 0 || pts[i].Y >= width {
			return "", ErrPointOutOfRange
		}
		ix = pts[i].X / scale
		iy = pts[i].Y / scale
		// width/pixels may truncate; the top band folds onto the last cell.
		if ix >= pixels {
			ix = pixels - 1
		}
		if iy >= pixels {
			iy = pixels - 1
		}
		fmt.Fprintf(&b, "City %d: (%d, %d)        (%d, %d) \n", i, pts[i].X, pts[i].Y, ix, iy)
		cell[ix*pixels+iy] = fmt.Sprintf("%*d", plotCellWidth, i)
	}

	// Frame + rows, y inverted so the origin sits bottom-left.
	b.WriteString("\nPlot:\n")
	var border = "x" + strings.Repeat("-", plotCellWidth*pixels) + "x\n"
	b.WriteString(border)

	var row int
	for row = 0; row < pixels; row++ {
		b.WriteByte('|')
		for ix = 0; ix < pixels; ix++ {
			b.WriteString(cell[ix*pixels+(pixels-1-row)])
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)

	return b.String(), nil
}

// PathString renders a closed tour as "path: 0 > 3 > 1 > 0".
// The input is used verbatim; no validation is performed (diagnostics must
// be able to print whatever the search hands them).
//
// Complexity: O(n) time and output size.
func PathString(tour []int) string {
	var (
		b strings.Builder
		i int
	)
	b.WriteString("path: ")
	for i = 0; i < len(tour); i++ {
		if i > 0 {
			b.WriteString(" > ")
		}
		fmt.Fprintf(&b, "%d", tour[i])
	}

	return b.String()
}
