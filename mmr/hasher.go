package mmr

import (
	"fmt"

	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// DigestSize is the size, in bytes, of every node digest. Both supported
// algorithms produce 256 bit outputs.
const DigestSize = 32

// Digest is the output of the configured hash algorithm. Digests compare by
// value, there are no ordering semantics.
type Digest [DigestSize]byte

// Algorithm identifies the hash algorithm used for all nodes in a range. It
// is fixed for the lifetime of the range.
type Algorithm int

const (
	Keccak256 Algorithm = iota
	Blake3
)

func (a Algorithm) String() string {
	switch a {
	case Keccak256:
		return "keccak256"
	case Blake3:
		return "blake3"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm resolves the configuration name of an algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "keccak256":
		return Keccak256, nil
	case "blake3":
		return Blake3, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// NodeHasher provides the hash functions used to form range nodes.
type NodeHasher interface {
	// Algorithm returns the identity of the underlying hash algorithm.
	Algorithm() Algorithm

	// Size returns the size of the hash output in bytes.
	Size() int

	// HashLeaf computes the digest of an arbitrary-length byte slice. The
	// passed slice is not mutated.
	HashLeaf(data []byte) Digest

	// HashInterior computes the digest of an interior node as
	// H(left || right). The order of the children is significant.
	HashInterior(left, right Digest) Digest
}

// NewNodeHasher returns the NodeHasher for the given algorithm.
func NewNodeHasher(a Algorithm) (NodeHasher, error) {
	switch a {
	case Keccak256:
		return keccakHasher{}, nil
	case Blake3:
		return blake3Hasher{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
}

type keccakHasher struct{}

func (keccakHasher) Algorithm() Algorithm { return Keccak256 }
func (keccakHasher) Size() int            { return DigestSize }

func (keccakHasher) HashLeaf(data []byte) Digest {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var d Digest
	h.Sum(d[:0])
	return d
}

func (kh keccakHasher) HashInterior(left, right Digest) Digest {
	return kh.HashLeaf(interiorPreimage(left, right))
}

type blake3Hasher struct{}

func (blake3Hasher) Algorithm() Algorithm { return Blake3 }
func (blake3Hasher) Size() int            { return DigestSize }

func (blake3Hasher) HashLeaf(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

func (bh blake3Hasher) HashInterior(left, right Digest) Digest {
	return bh.HashLeaf(interiorPreimage(left, right))
}

// interiorPreimage concatenates left then right into a 2 x DigestSize buffer.
func interiorPreimage(left, right Digest) []byte {
	buf := make([]byte, 2*DigestSize)
	copy(buf[:DigestSize], left[:])
	copy(buf[DigestSize:], right[:])
	return buf
}
