package mmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyEmptyPeaks(t *testing.T) {
	r := newTestRange(t, Blake3, 9, 1)

	_, err := r.VerifyInclusion(Digest{}, nil, nil, Digest{}, 0)
	require.ErrorIs(t, err, ErrNoPeaks)
}

func TestVerifySingleLeaf(t *testing.T) {
	r := newTestRange(t, Keccak256, 9, 1)

	leaf, ok := r.Node(0, 0)
	require.True(t, ok)
	root, ok := r.Root()
	require.True(t, ok)

	valid, err := r.VerifyInclusion(root, r.Peaks(), nil, leaf, 0)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyTamperSensitivity(t *testing.T) {
	r := newTestRange(t, Blake3, 9, 3)

	root, ok := r.Root()
	require.True(t, ok)
	peaks := r.Peaks()

	// leaf 0 has a one-entry proof; leaf 2 would be a peak with an empty
	// proof and is useless for the index-tamper case.
	proof, err := r.InclusionProof(0)
	require.NoError(t, err)
	require.Len(t, proof, 1)
	leaf, _ := r.Node(0, 0)

	valid, err := r.VerifyInclusion(root, peaks, proof, leaf, 0)
	require.NoError(t, err)
	require.True(t, valid)

	t.Run("tampered leaf byte", func(t *testing.T) {
		bad := leaf
		bad[7] ^= 0x01
		valid, err := r.VerifyInclusion(root, peaks, proof, bad, 0)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("tampered proof entry", func(t *testing.T) {
		bad := append([]Digest(nil), proof...)
		bad[0][0] ^= 0x80
		valid, err := r.VerifyInclusion(root, peaks, bad, leaf, 0)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("tampered leaf index", func(t *testing.T) {
		// flipping the parity swaps the combine order on the first step
		valid, err := r.VerifyInclusion(root, peaks, proof, leaf, 1)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("tampered root", func(t *testing.T) {
		bad := root
		bad[31] ^= 0x01
		valid, err := r.VerifyInclusion(bad, peaks, proof, leaf, 0)
		require.NoError(t, err)
		assert.False(t, valid)
	})
}

// TestStaleProofRejected covers the failing half of the stale-proof
// contract: once later appends merge the leaf's containing peak away, an old
// proof no longer reaches any member of the new accumulator.
func TestStaleProofRejected(t *testing.T) {
	r := newTestRange(t, Blake3, 9, 2)

	staleProof, err := r.InclusionProof(0)
	require.NoError(t, err)
	leaf, _ := r.Node(0, 0)

	// grow to 4 leaves; the level-1 peak that contained leaf 0 is folded
	// into a new level-2 peak
	require.NoError(t, r.AddLeaf(testLeaf(2)))
	require.NoError(t, r.AddLeaf(testLeaf(3)))

	root, ok := r.Root()
	require.True(t, ok)

	valid, err := r.VerifyInclusion(root, r.Peaks(), staleProof, leaf, 0)
	require.NoError(t, err)
	assert.False(t, valid, "proof walks to a digest that is no longer a peak")
}

// TestStaleProofAccidentalPass documents the complementary case: when the
// appends that follow proof generation do not disturb the leaf's containing
// peak (here, leaf 5 of a 4-leaf range lands beside it rather than merging
// it), the old proof still walks to a live peak and verifies against the new
// root. This is inherent to accumulator membership, not a defect.
func TestStaleProofAccidentalPass(t *testing.T) {
	r := newTestRange(t, Blake3, 9, 4)

	staleProof, err := r.InclusionProof(0)
	require.NoError(t, err)
	require.Len(t, staleProof, 2)
	leaf, _ := r.Node(0, 0)

	require.NoError(t, r.AddLeaf(testLeaf(4)))

	root, ok := r.Root()
	require.True(t, ok)

	valid, err := r.VerifyInclusion(root, r.Peaks(), staleProof, leaf, 0)
	require.NoError(t, err)
	assert.True(t, valid, "the level-2 peak containing leaf 0 survived the append")
}

// TestVerifyTrustsSuppliedPeaks pins the two-part contract: the peaks
// argument is not derived from the proof, so a forged peak set that folds to
// a matching forged root will satisfy verification. Callers must source
// peaks independently of the prover.
func TestVerifyTrustsSuppliedPeaks(t *testing.T) {
	r := newTestRange(t, Blake3, 9, 3)
	h := testHasher(t, Blake3)

	forgedLeaf := h.HashLeaf([]byte("never appended"))
	sibling := h.HashLeaf([]byte("sibling"))
	walked := h.HashInterior(forgedLeaf, sibling)

	forgedPeaks := []Digest{walked}
	forgedRoot := walked

	valid, err := r.VerifyInclusion(forgedRoot, forgedPeaks, []Digest{sibling}, forgedLeaf, 0)
	require.NoError(t, err)
	assert.True(t, valid, "verification is only as trustworthy as the peaks argument")

	// the same forgery fails against the genuine root and peaks
	root, _ := r.Root()
	valid, err = r.VerifyInclusion(root, r.Peaks(), []Digest{sibling}, forgedLeaf, 0)
	require.NoError(t, err)
	assert.False(t, valid)
}
