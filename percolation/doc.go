// Package percolation models an n×n grid of sites that are opened one at a
// time until a path of open sites spans top to bottom.
//
// What:
//
//   - Grid wraps an n×n boolean site matrix; all sites start blocked.
//   - Open(row, col) opens a site and links it to its open orthogonal
//     neighbors.
//   - IsFull(row, col) reports whether water entering the top row reaches
//     the site.
//   - Percolates reports whether the grid has a top-to-bottom open path.
//
// Why:
//
//   - Phase-transition studies: the fraction of open sites at which an
//     n×n grid first percolates concentrates sharply as n grows.
//   - Building block for the montecarlo driver, which estimates that
//     threshold by repeated randomized trials.
//
// How:
//
// Connectivity is delegated to two unionfind.UnionFind instances over the
// site universe plus virtual sentinel nodes. The full structure carries
// both a virtual top and a virtual bottom, so Percolates is a single
// Connected query between sentinels. The top-only structure omits the
// virtual bottom; IsFull consults it exclusively, which keeps bottom-row
// sites from testing as full merely because they share the bottom sentinel
// with a percolating path elsewhere (the "backwash" bug).
//
// Coordinates on the public API are 1-based in both axes; the conversion to
// the internal 0-based representation happens exactly once per call.
//
// Complexity:
//
//   - New:        O(n²) time and memory.
//   - Open:       amortized near-O(1).
//   - IsOpen, IsFull, Percolates, OpenSites: amortized near-O(1).
//
// Errors:
//
//   - ErrNonPositiveSize: requested grid dimension is zero or negative.
//   - ErrOutOfBounds: a coordinate passed to Open lies outside [1, n].
//
// Grid is not safe for concurrent use.
package percolation
