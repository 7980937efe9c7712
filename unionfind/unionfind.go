package unionfind

// New constructs a UnionFind over the universe {0, …, n−1}, each element
// initially alone in its own component.
// Returns ErrNonPositiveSize if n < 1.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 1 {
		return nil, ErrNonPositiveSize
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Find returns the canonical representative of p's component, compressing
// the path as it walks: every visited element is re-pointed to its
// grandparent, halving the path length.
// Complexity: amortized near-O(1).
func (uf *UnionFind) Find(p int) int {
	for p != uf.parent[p] {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// Connected reports whether p and q belong to the same component.
// Complexity: amortized near-O(1).
func (uf *UnionFind) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// Union merges the components containing p and q, attaching the smaller
// tree under the larger root (union by size). Merging two elements that
// already share a component is a no-op.
// Complexity: amortized near-O(1).
func (uf *UnionFind) Union(p, q int) {
	rootP := uf.Find(p)
	rootQ := uf.Find(q)
	if rootP == rootQ {
		return
	}
	if uf.size[rootP] < uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	uf.count--
}

// Count returns the number of remaining components.
// Complexity: O(1).
func (uf *UnionFind) Count() int {
	return uf.count
}
