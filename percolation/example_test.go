// File: percolation/example_test.go
package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/percolation"
)

// ExampleGrid demonstrates opening a winding path through a 3×3 grid and
// watching the system percolate.
// Scenario:
//
//	█ ░ ░        █ = open site, ░ = blocked site
//	█ █ ░
//	░ █ ░
//
// Water entering the top row follows (1,1) → (2,1) → (2,2) → (3,2) and
// reaches the bottom row.
//
// Complexity: amortized near-O(1) per operation.
func ExampleGrid() {
	g, _ := percolation.New(3)

	_ = g.Open(1, 1)
	_ = g.Open(2, 1)
	_ = g.Open(2, 2)
	fmt.Println("percolates:", g.Percolates())

	_ = g.Open(3, 2)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("full (3,2):", g.IsFull(3, 2))
	fmt.Println("open sites:", g.OpenSites())

	// Output:
	// percolates: false
	// percolates: true
	// full (3,2): true
	// open sites: 4
}

// ExampleGrid_IsFull demonstrates the backwash guard: a bottom-row site with
// no route to the top never reads as full, even once the grid percolates
// through a different column.
func ExampleGrid_IsFull() {
	g, _ := percolation.New(3)

	// A full left column percolates the system.
	_ = g.Open(1, 1)
	_ = g.Open(2, 1)
	_ = g.Open(3, 1)
	// A lone bottom-right site touches only the bottom edge.
	_ = g.Open(3, 3)

	fmt.Println("percolates:", g.Percolates())
	fmt.Println("full (3,1):", g.IsFull(3, 1))
	fmt.Println("full (3,3):", g.IsFull(3, 3))

	// Output:
	// percolates: true
	// full (3,1): true
	// full (3,3): false
}
