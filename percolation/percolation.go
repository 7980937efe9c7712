package percolation

import "github.com/katalvlaran/percolate/unionfind"

// New constructs an n×n Grid with every site blocked.
// Returns ErrNonPositiveSize if n < 1.
//
// The full structure spans n²+2 elements (sites plus both sentinels); the
// top-only structure spans n²+1 (sites plus the top sentinel).
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, ErrNonPositiveSize
	}

	open := make([][]bool, n)
	for i := 0; i < n; i++ {
		open[i] = make([]bool, n)
	}

	// Sizes are valid whenever n ≥ 1, so both constructors must succeed.
	full, err := unionfind.New(n*n + 2)
	if err != nil {
		return nil, err
	}
	topOnly, err := unionfind.New(n*n + 1)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		n:             n,
		open:          open,
		full:          full,
		topOnly:       topOnly,
		virtualBottom: n*n + 1,
	}

	return g, nil
}

// Open opens the site at (row, col), both 1-based, and links it to every
// open orthogonal neighbor in both union-find structures. A first-row site
// is additionally joined to the virtual top (both structures); a last-row
// site to the virtual bottom (full structure only). Opening an already-open
// site is a no-op.
// Returns ErrOutOfBounds when row or col falls outside [1, n].
// Complexity: amortized near-O(1).
func (g *Grid) Open(row, col int) error {
	i, j := row-1, col-1
	if !g.inBounds(i, j) {
		return ErrOutOfBounds
	}
	if g.open[i][j] {
		return nil
	}

	g.open[i][j] = true
	g.opened++
	g.connect(i, j)

	return nil
}

// IsOpen reports whether the site at (row, col), both 1-based, is open.
// Coordinates must be valid; the caller pre-validates.
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) bool {
	return g.open[row-1][col-1]
}

// IsFull reports whether water entering the top row reaches the site at
// (row, col), both 1-based: whether the site shares a component with the
// virtual top in the top-only structure. Bottom connectivity never
// influences the answer. Coordinates must be valid; the caller pre-validates.
// Complexity: amortized near-O(1).
func (g *Grid) IsFull(row, col int) bool {
	return g.topOnly.Connected(g.index(row-1, col-1), virtualTop)
}

// Percolates reports whether an open path connects the top row to the
// bottom row: whether the two sentinels share a component in the full
// structure.
// Complexity: amortized near-O(1).
func (g *Grid) Percolates() bool {
	return g.full.Connected(virtualTop, g.virtualBottom)
}

// OpenSites returns the number of distinct open sites.
// Complexity: O(1).
func (g *Grid) OpenSites() int {
	return g.opened
}

// Size returns the grid dimension n.
// Complexity: O(1).
func (g *Grid) Size() int {
	return g.n
}

// index maps a 0-based (i, j) site to its 1D element id: i*n + j + 1.
// Id 0 is the virtual top; id n²+1 (full structure only) the virtual bottom.
// Complexity: O(1).
func (g *Grid) index(i, j int) int {
	return i*g.n + j + 1
}

// inBounds reports whether the 0-based (i, j) lies within the grid.
// Complexity: O(1).
func (g *Grid) inBounds(i, j int) bool {
	return i >= 0 && i < g.n && j >= 0 && j < g.n
}

// connect joins the freshly opened 0-based (i, j) to its sentinels and to
// every open orthogonal neighbor. Closed neighbors are never unioned; a
// union with a closed site would fabricate connectivity that no open path
// provides.
func (g *Grid) connect(i, j int) {
	idx := g.index(i, j)

	if i == 0 {
		g.full.Union(virtualTop, idx)
		g.topOnly.Union(virtualTop, idx)
	}

	for _, d := range neighborOffsets {
		ni, nj := i+d[0], j+d[1]
		if !g.inBounds(ni, nj) || !g.open[ni][nj] {
			continue
		}
		nIdx := g.index(ni, nj)
		g.full.Union(idx, nIdx)
		g.topOnly.Union(idx, nIdx)
	}

	if i == g.n-1 {
		g.full.Union(idx, g.virtualBottom)
	}
}
