package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChaChaRNGDeterministic(t *testing.T) {
	var seed [32]byte
	seed[0] = 0x99

	a := NewChaChaRNG(seed)
	b := NewChaChaRNG(seed)

	for i := 0; i < 16; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestChaChaRNGDifferentSeedsDiffer(t *testing.T) {
	var seedA, seedB [32]byte
	seedB[0] = 1

	a := NewChaChaRNG(seedA)
	b := NewChaChaRNG(seedB)

	require.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestChaChaRNGReadFillsBuffer(t *testing.T) {
	var seed [32]byte
	r := NewChaChaRNG(seed)

	buf := make([]byte, 37)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 37, n)
}

func TestChaChaRNGInt63NonNegative(t *testing.T) {
	var seed [32]byte
	r := NewChaChaRNG(seed)
	for i := 0; i < 32; i++ {
		require.GreaterOrEqual(t, r.Int63(), int64(0))
	}
}

func TestNewEntropyChaChaRNGProducesOutput(t *testing.T) {
	r := NewEntropyChaChaRNG()
	a := r.Uint64()
	b := r.Uint64()
	require.NotEqual(t, a, b)
}
