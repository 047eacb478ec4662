// Package render produces ASCII diagnostics for the salesman pipeline:
// distance-grid tables, scatter plots of the city map, and tour paths.
//
// What:
//
//   - GridString: the full pairwise distance table with indexed headers.
//   - PlotString: a square character plot of the map, city indices placed
//     on a downscaled raster, y growing upward.
//   - PathString: a closed tour as "path: 0 > 3 > 1 > 0".
//
// Why:
//
//   - The search core is silent by design; everything human-readable lives
//     here, behind the hook points, and never on the hot path unless wired.
//
// All functions are pure string builders: no I/O, no color, no global
// state. Styling (if any) belongs to the caller — see cmd/salesman.
package render
