package mmr

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLeaf is the canonical leaf content for fixtures: the decimal string of
// the 1-based leaf number, matching the demo harness.
func testLeaf(i int) []byte {
	return []byte(strconv.Itoa(i + 1))
}

// newTestRange builds a range holding leafCount canonical leaves.
func newTestRange(t *testing.T, alg Algorithm, maxHeight, leafCount int) *Range {
	t.Helper()
	r, err := New(maxHeight, alg)
	require.NoError(t, err)
	for i := 0; i < leafCount; i++ {
		require.NoError(t, r.AddLeaf(testLeaf(i)))
	}
	return r
}

// testHasher returns the NodeHasher for alg, for computing expected values
// independently of the range under test.
func testHasher(t *testing.T, alg Algorithm) NodeHasher {
	t.Helper()
	h, err := NewNodeHasher(alg)
	require.NoError(t, err)
	return h
}
