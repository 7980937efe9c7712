package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/percolate/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies that New rejects non-positive universe sizes.
func TestNew_Errors(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := unionfind.New(n)
		assert.ErrorIs(t, err, unionfind.ErrNonPositiveSize, "New(%d) must reject non-positive size", n)
	}
}

// TestNew_InitialState checks that every element starts alone in its own component.
func TestNew_InitialState(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)

	assert.Equal(t, 5, uf.Count(), "fresh structure must have n components")
	for p := 0; p < 5; p++ {
		assert.Equal(t, p, uf.Find(p), "fresh element must be its own root")
		for q := p + 1; q < 5; q++ {
			assert.False(t, uf.Connected(p, q), "distinct fresh elements must be disconnected")
		}
	}
}

// TestUnion_Connectivity replays a fixed union sequence and checks the
// resulting component structure pairwise.
func TestUnion_Connectivity(t *testing.T) {
	uf, err := unionfind.New(10)
	require.NoError(t, err)

	uf.Union(4, 3)
	uf.Union(3, 8)
	uf.Union(6, 5)
	uf.Union(9, 4)
	uf.Union(2, 1)

	cases := []struct {
		p, q int
		want bool
	}{
		{0, 0, true},
		{4, 3, true},
		{3, 4, true},
		{8, 9, true},
		{6, 5, true},
		{0, 7, false},
		{3, 1, false},
		{5, 9, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, uf.Connected(tc.p, tc.q), "Connected(%d,%d)", tc.p, tc.q)
	}
	assert.Equal(t, 5, uf.Count(), "five unions over ten elements leave five components")
}

// TestUnion_Idempotent ensures that re-merging an existing component
// neither changes connectivity nor decrements the component count.
func TestUnion_Idempotent(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)

	uf.Union(0, 1)
	uf.Union(1, 0)
	uf.Union(0, 1)

	assert.True(t, uf.Connected(0, 1))
	assert.Equal(t, 3, uf.Count(), "repeated unions must not over-count merges")
}

// TestUnion_TransitiveChain merges a chain 0—1—2—…—9 and verifies that the
// endpoints end up connected.
func TestUnion_TransitiveChain(t *testing.T) {
	uf, err := unionfind.New(10)
	require.NoError(t, err)

	for i := 1; i < 10; i++ {
		uf.Union(i-1, i)
	}

	assert.True(t, uf.Connected(0, 9), "chain endpoints must be connected")
	assert.Equal(t, 1, uf.Count(), "a full chain collapses to one component")
}
