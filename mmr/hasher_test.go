package mmr

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashLeafKAT(t *testing.T) {
	tests := []struct {
		name string
		alg  Algorithm
		data string
		want string
	}{
		{"keccak256 empty", Keccak256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"keccak256 abc", Keccak256, "abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"blake3 empty", Blake3, "", "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
		{"blake3 abc", Blake3, "abc", "6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHasher(t, tt.alg)
			got := h.HashLeaf([]byte(tt.data))
			if hex.EncodeToString(got[:]) != tt.want {
				t.Errorf("HashLeaf(%q) = %x, want %s", tt.data, got, tt.want)
			}
		})
	}
}

func TestHashInteriorOrderSignificant(t *testing.T) {
	for _, alg := range []Algorithm{Keccak256, Blake3} {
		t.Run(alg.String(), func(t *testing.T) {
			h := testHasher(t, alg)
			left := h.HashLeaf([]byte("left"))
			right := h.HashLeaf([]byte("right"))

			lr := h.HashInterior(left, right)
			rl := h.HashInterior(right, left)
			assert.NotEqual(t, lr, rl, "interior hash must depend on child order")

			// interior hashing is digest-of(left || right), nothing more
			preimage := make([]byte, 0, 2*DigestSize)
			preimage = append(preimage, left[:]...)
			preimage = append(preimage, right[:]...)
			assert.Equal(t, h.HashLeaf(preimage), lr)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		want    Algorithm
		wantErr bool
	}{
		{"keccak256", Keccak256, false},
		{"blake3", Blake3, false},
		{"sha256", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestNewNodeHasherUnknown(t *testing.T) {
	_, err := NewNodeHasher(Algorithm(99))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestNodeHasherSize(t *testing.T) {
	for _, alg := range []Algorithm{Keccak256, Blake3} {
		h := testHasher(t, alg)
		assert.Equal(t, DigestSize, h.Size())
		assert.Equal(t, alg, h.Algorithm())
	}
}
