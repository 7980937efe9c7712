// Package unionfind defines the UnionFind type and sentinel errors
// for the unionfind subpackage of github.com/katalvlaran/percolate.
package unionfind

import "errors"

// ErrNonPositiveSize indicates a requested universe size of zero or less.
var ErrNonPositiveSize = errors.New("unionfind: universe size must be at least one")

// UnionFind tracks a partition of {0, …, n−1} into disjoint components.
// The zero value is not usable; construct with New.
//
// parent[i] is the tree parent of element i (a root points to itself);
// size[i] is the element count of the tree rooted at i, maintained only
// for roots. count is the number of live components.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
