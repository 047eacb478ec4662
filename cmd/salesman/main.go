// Command salesman is a demonstration CLI for the exhaustive TSP search:
// it generates a random city map, builds the distance grid, walks every
// tour, and reports the optimal cycle length.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("salesman: "+err.Error()))
		os.Exit(1)
	}
}
