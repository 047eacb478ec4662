// Package render defines sentinel errors for the render subpackage of
// github.com/katalvlaran/salesman.
package render

import "errors"

// Sentinel errors for plot rendering.
var (
	// ErrBadPlotSize indicates pixels < 1 or pixels > width (the raster
	// must downscale the map, never upscale it).
	ErrBadPlotSize = errors.New("render: plot size must be in [1..width]")
	// ErrPointOutOfRange indicates a point outside [0..width) on either axis.
	ErrPointOutOfRange = errors.New("render: point coordinates must be in [0..width)")
)
