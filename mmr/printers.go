package mmr

import (
	"encoding/hex"
	"strings"
)

// debug utilities

// shortPrefixLen is how many digest bytes the debug stringers show.
const shortPrefixLen = 6

// ShortHex renders the leading bytes of a digest for debug output.
func ShortHex(d Digest) string {
	return hex.EncodeToString(d[:shortPrefixLen])
}

// ProofPathString joins the full hex of each path entry with sep.
func ProofPathString(path []Digest, sep string) string {
	var spath []string

	for _, it := range path {
		spath = append(spath, hex.EncodeToString(it[:]))
	}
	return strings.Join(spath, sep)
}
