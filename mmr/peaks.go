package mmr

// Peaks returns the current accumulator peaks in ascending level order, or
// nil for an empty range. A level is a peak while it holds an odd number of
// nodes, and the peak digest is that level's trailing node. The returned
// digests are copies.
//
// The peak levels track the binary representation of the leaf count: level i
// is a peak exactly when bit i of the leaf count is set. See PeaksBitmap.
func (r *Range) Peaks() []Digest {
	if r.LeafCount() == 0 {
		return nil
	}
	var peaks []Digest
	for level := 0; level < r.maxHeight; level++ {
		nodes := r.levels[level]
		if len(nodes)%2 == 1 {
			peaks = append(peaks, nodes[len(nodes)-1])
		}
	}
	return peaks
}

// PeaksBitmap returns a mask with bit i set when level i is currently a
// peak. Because the levels mirror a binary counter, the bitmap is always
// equal to the leaf count.
func (r *Range) PeaksBitmap() uint64 {
	var bitmap uint64
	for level := 0; level < r.maxHeight; level++ {
		if len(r.levels[level])%2 == 1 {
			bitmap |= 1 << uint(level)
		}
	}
	return bitmap
}

// Root folds the current peaks into the single accumulator root. The second
// return is false for an empty range.
//
// The fold seeds with the lowest-level peak and combines each higher peak
// into the running digest, so root = H(...H(H(p0, p1), p2)..., pn). Bagging
// low to high is a deliberate property of this structure. It is the reverse
// of the high-to-low order some MMR formulations use, and reordering changes
// every multi-peak root, so the order must be preserved for compatibility.
func (r *Range) Root() (Digest, bool) {
	peaks := r.Peaks()
	if peaks == nil {
		return Digest{}, false
	}
	root := peaks[0]
	for _, peak := range peaks[1:] {
		root = r.hasher.HashInterior(root, peak)
	}
	return root, true
}
