// Package mmr implements an append-only Merkle Mountain Range accumulator.
//
// The range stores digests in levels. Level 0 holds the leaf digests in
// append order, and level k holds the digests formed by pairing adjacent
// nodes at level k-1. A level whose current length is odd carries a 'peak':
// its trailing node is not yet paired. The set of peak levels tracks the
// binary representation of the leaf count exactly, and appending a leaf
// propagates pair folds upward the same way a binary counter propagates
// carries.
//
// For 5 leaves the levels look like this, with peaks at levels 0 and 2:
//
//	2        A
//	       /   \
//	1     B     C
//	     / \   / \
//	0   0   1 2   3   4
package mmr

import (
	"math/bits"
)

// Range is a Merkle Mountain Range accumulator over an append-only leaf
// sequence. The hash algorithm and the maximum height are fixed at
// construction.
//
// A Range is a single-writer structure. Callers that share one across
// goroutines must serialize appends with each other and with any reads that
// need a consistent snapshot.
type Range struct {
	levels    [][]Digest
	maxHeight int
	hasher    NodeHasher
}

// New creates an empty range with capacity for 2^maxHeight - 1 leaves.
// maxHeight must be in [1, 63].
func New(maxHeight int, alg Algorithm) (*Range, error) {
	if maxHeight < 1 || maxHeight > 63 {
		return nil, ErrMaxHeight
	}
	hasher, err := NewNodeHasher(alg)
	if err != nil {
		return nil, err
	}
	return &Range{
		levels:    make([][]Digest, maxHeight),
		maxHeight: maxHeight,
		hasher:    hasher,
	}, nil
}

// Algorithm returns the hash algorithm the range was constructed with.
func (r *Range) Algorithm() Algorithm {
	return r.hasher.Algorithm()
}

// MaxHeight returns the configured level capacity.
func (r *Range) MaxHeight() int {
	return r.maxHeight
}

// LeafCount returns the number of leaves appended so far.
func (r *Range) LeafCount() uint64 {
	return uint64(len(r.levels[0]))
}

// capacity is the largest leaf count whose highest peak still fits below
// maxHeight, which is all-ones in maxHeight bits.
func (r *Range) capacity() uint64 {
	return 1<<uint(r.maxHeight) - 1
}

// AddHashedLeaf appends a leaf digest to level 0 and folds any completed
// pairs upward. It returns ErrRangeFull, without modifying the range, if the
// resulting leaf count would need a level at or above maxHeight.
func (r *Range) AddHashedLeaf(leaf Digest) error {
	if r.LeafCount() >= r.capacity() {
		return ErrRangeFull
	}
	r.levels[0] = append(r.levels[0], leaf)
	r.buildPeaks()
	return nil
}

// AddLeaf hashes data with the configured algorithm and appends the result
// as a leaf.
func (r *Range) AddLeaf(data []byte) error {
	return r.AddHashedLeaf(r.hasher.HashLeaf(data))
}

// buildPeaks performs the carry propagation for a single append. Starting at
// level 0, while the current level holds an even number (>= 2) of nodes, the
// trailing pair is folded into one node appended to the next level. The first
// level left with an odd count, or fewer than two nodes, stops the cascade.
// This is the increment step of a binary counter: carries propagate until a
// zero bit absorbs them.
func (r *Range) buildPeaks() {
	for level := 0; level+1 < r.maxHeight; level++ {
		nodes := r.levels[level]
		n := len(nodes)
		if n < 2 || n%2 != 0 {
			return
		}
		parent := r.hasher.HashInterior(nodes[n-2], nodes[n-1])
		r.levels[level+1] = append(r.levels[level+1], parent)
	}
}

// Node returns the digest at the given level and index. The second return is
// false when the level is outside the configured height or the index is
// beyond the level's current length.
func (r *Range) Node(level int, index uint64) (Digest, bool) {
	if level < 0 || level >= r.maxHeight {
		return Digest{}, false
	}
	if index >= uint64(len(r.levels[level])) {
		return Digest{}, false
	}
	return r.levels[level][index], true
}

// LevelView returns a copy of the nodes at the given level, which may be
// empty. The second return is false when the level is outside the configured
// height.
func (r *Range) LevelView(level int) ([]Digest, bool) {
	if level < 0 || level >= r.maxHeight {
		return nil, false
	}
	nodes := make([]Digest, len(r.levels[level]))
	copy(nodes, r.levels[level])
	return nodes, true
}

// Levels returns a deep copy of every level up to and including the highest
// occupied one. This is the read-only snapshot consumed by rendering
// collaborators; mutating it has no effect on the range.
func (r *Range) Levels() [][]Digest {
	top, ok := r.TopLevel()
	if !ok {
		return nil
	}
	levels := make([][]Digest, top+1)
	for i := range levels {
		levels[i], _ = r.LevelView(i)
	}
	return levels
}

// TopLevel returns the highest level index holding any node, which is
// floor(log2(leafCount)). The second return is false for an empty range.
func (r *Range) TopLevel() (int, bool) {
	n := r.LeafCount()
	if n == 0 {
		return 0, false
	}
	return bits.Len64(n) - 1, true
}
