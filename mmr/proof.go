package mmr

// InclusionProof collects the sibling path for the leaf at leafIndex, from
// level 0 up to (but not including) the peak that contains it. It returns
// ErrLeafIndex when leafIndex is beyond the current leaf count.
//
// A nil proof with a nil error is valid: it means the leaf is itself a peak,
// as for leaf 4 below.
//
//	2        A
//	       /   \
//	1     B     C        proof(0) = [H(1), C]
//	     / \   / \       proof(4) = []
//	0   0   1 2   3   4
//
// The walk mirrors the carry structure. At each level the node is either the
// unpaired trailing peak (even index, last in the level), which terminates
// the path, or it has a sibling: the next node when the index is even, the
// previous one otherwise. The parent index is always the floor halved index.
func (r *Range) InclusionProof(leafIndex uint64) ([]Digest, error) {
	if leafIndex >= r.LeafCount() {
		return nil, ErrLeafIndex
	}

	var proof []Digest
	index := leafIndex

	for level := 0; level < r.maxHeight; level++ {
		nodes := r.levels[level]
		if index == uint64(len(nodes))-1 && index%2 == 0 {
			// reached the peak containing the leaf
			break
		}
		sibling := index + 1
		if index%2 == 1 {
			sibling = index - 1
		}
		proof = append(proof, nodes[sibling])
		index /= 2
	}

	return proof, nil
}
