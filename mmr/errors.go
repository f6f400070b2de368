package mmr

import "errors"

var (
	// ErrMaxHeight is returned when a range is constructed with a height
	// outside the supported bounds.
	ErrMaxHeight = errors.New("mmr: max height must be in [1, 63]")

	// ErrUnknownAlgorithm is returned for an algorithm outside the closed
	// set of supported hash algorithms.
	ErrUnknownAlgorithm = errors.New("mmr: unknown hash algorithm")

	// ErrRangeFull is returned when an append would require a level at or
	// above the configured max height. The range is left unchanged.
	ErrRangeFull = errors.New("mmr: range is at capacity")

	// ErrLeafIndex is returned when a proof is requested for a leaf index
	// beyond the current leaf count.
	ErrLeafIndex = errors.New("mmr: leaf index out of range")

	// ErrNoPeaks is returned when verification is attempted with an empty
	// peaks sequence.
	ErrNoPeaks = errors.New("mmr: peaks must not be empty")
)
