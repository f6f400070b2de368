package mmr

// VerifyInclusion checks an inclusion proof against a root and its peak set.
// It returns ErrNoPeaks when peaks is empty, otherwise the boolean outcome.
//
// The check has two independent halves:
//
//  1. walk: starting from leaf at leafIndex, each proof entry is combined
//     with the running digest, ordered (current, sibling) when the index is
//     even and (sibling, current) when odd, halving the index each step. The
//     walked digest must appear somewhere in peaks.
//  2. bagging: peaks, folded low to high exactly as Root does, must equal
//     root.
//
// Note the peaks argument is trusted as supplied. Verification does not
// derive the peak set from the proof, so the result is only as trustworthy
// as the provenance of peaks: a caller that accepts peaks from the prover
// gains nothing from the membership half of the check. Pair this call with a
// peak set obtained from a source that is independent of the proof.
func (r *Range) VerifyInclusion(root Digest, peaks, proof []Digest, leaf Digest, leafIndex uint64) (bool, error) {
	if len(peaks) == 0 {
		return false, ErrNoPeaks
	}

	current := leaf
	index := leafIndex
	for _, sibling := range proof {
		if index%2 == 0 {
			current = r.hasher.HashInterior(current, sibling)
		} else {
			current = r.hasher.HashInterior(sibling, current)
		}
		index /= 2
	}

	bagged := peaks[0]
	for _, peak := range peaks[1:] {
		bagged = r.hasher.HashInterior(bagged, peak)
	}

	member := false
	for _, peak := range peaks {
		if peak == current {
			member = true
			break
		}
	}

	return member && bagged == root, nil
}
