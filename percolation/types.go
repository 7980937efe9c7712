// Package percolation defines the Grid type and sentinel errors
// for the percolation subpackage of github.com/katalvlaran/percolate.
package percolation

import (
	"errors"

	"github.com/katalvlaran/percolate/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrNonPositiveSize indicates a requested grid dimension of zero or less.
	ErrNonPositiveSize = errors.New("percolation: grid dimension must be at least one")
	// ErrOutOfBounds indicates a coordinate outside [1, n] in either axis.
	ErrOutOfBounds = errors.New("percolation: site coordinates out of range")
)

// virtualTop is the 1D index of the sentinel joined to every open
// first-row site, in both union-find structures.
const virtualTop = 0

// neighborOffsets lists the four orthogonal neighbor directions as
// (row, column) deltas, used by every adjacency pass.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Grid models an n×n percolation system. Sites open monotonically (an open
// site never closes) and the grid is discarded after one experiment.
//
// full includes both virtual sentinels and answers Percolates only.
// topOnly includes the virtual top alone and answers IsFull only; keeping
// the two structures separate is what prevents backwash, so they must
// never be collapsed into one.
type Grid struct {
	n             int
	open          [][]bool
	opened        int
	full          *unionfind.UnionFind
	topOnly       *unionfind.UnionFind
	virtualBottom int
}
