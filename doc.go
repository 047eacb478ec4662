// Package salesman is a compact playground for exact Travelling Salesman
// search over small 2-D city maps — generate cities, build the distance
// grid, and walk every single tour.
//
// 🚀 What is salesman?
//
//	A deterministic demonstration of exhaustive combinatorial search
//	that brings together:
//		• cities/ — bounded 2-D point generation with seeded, reproducible RNG
//		• grid/   — symmetric Euclidean distance grids (dense, immutable)
//		• brute/  — exhaustive (n−1)! permutation search with a running minimum
//		• render/ — ASCII diagnostics: grid tables, scatter plots, tour paths
//
// ✨ Why choose salesman?
//
//   - Exact by construction – every distinct tour is visited, no heuristics
//   - Rock-solid guarantees – strict sentinels, no panics on user input
//   - Deterministic – fixed seed in, identical tour out, on every platform
//   - Observable – hook points fire on each scored tour and each new minimum
//
// The factorial wall is the point, not a defect: the search benchmarks
// exhaustive enumeration and stays practical only up to n≈12. If you need
// production routing, reach for Held–Karp, Christofides, or local search.
//
// Quick start:
//
//	pts, _ := cities.Generate(6, 100, 42)
//	g, _ := grid.New(pts)
//	res, _ := brute.Minimize(g, brute.DefaultOptions())
//	fmt.Println(res.Cost, res.Tour)
//
// A demo CLI lives in cmd/salesman; `salesman --cities 6 --debug` reproduces
// a full diagnostic session (plot, grid, per-minimum traces, timing).
package salesman
