// Package cities defines core types and sentinel errors for the
// cities subpackage of github.com/katalvlaran/salesman.
package cities

import "errors"

// Sentinel errors for city generation.
var (
	// ErrNoCities indicates a non-positive city count was requested.
	ErrNoCities = errors.New("cities: city count must be at least 1")
	// ErrWidthOutOfRange indicates the map width is outside [1..MaxWidth].
	ErrWidthOutOfRange = errors.New("cities: map width must be in [1..MaxWidth]")
)

// MaxWidth bounds the coordinate space so that squared coordinate
// differences never overflow int64: with |dx|,|dy| < 2^30 the sum
// dx²+dy² stays below 2^61. This is a documented precondition of the
// distance arithmetic, not a runtime check performed per point.
const MaxWidth = 1 << 30

// Point is a city position on the map: non-negative integer coordinates,
// each strictly less than the generating width. Immutable once created.
type Point struct {
	X, Y int
}
