// Package unionfind implements a disjoint-set (union-find) structure over
// a fixed integer universe {0, …, n−1}.
//
// What:
//
//   - UnionFind partitions the universe into components.
//   - Union(p, q) merges the components containing p and q.
//   - Connected(p, q) reports whether p and q share a component.
//   - Find(p) returns the canonical representative of p's component.
//   - Count() returns the number of remaining components.
//
// Why:
//
//   - Incremental connectivity: answer "are these linked yet?" while edges
//     arrive one by one, with no graph rebuild.
//   - Percolation, clustering, Kruskal-style spanning trees.
//
// Implementation: weighted quick-union (union by size) with iterative path
// halving during Find.
//
// Complexity:
//
//   - Union, Connected, Find: amortized near-O(1) (inverse Ackermann).
//   - Memory: O(n) for parent and size slices.
//
// Errors:
//
//   - ErrNonPositiveSize: requested universe size is zero or negative.
//
// Indices passed to Union, Connected and Find must lie in [0, n); out-of-range
// indices are a caller error. UnionFind is not safe for concurrent use.
package unionfind
