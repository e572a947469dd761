package ssp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kc1212/ssith-go/primitives"
)

func TestSanityCheckAcceptsFreshRandom(t *testing.T) {
	var seed [32]byte
	seed[0] = 0x11
	rng := primitives.NewChaChaRNG(seed)

	param := DefaultParam()
	witness, instance := NewRandom(rng, param)

	require.NoError(t, SanityCheck(witness, instance, param))
}

func TestSanityCheckBadWitnessLength(t *testing.T) {
	param := DefaultParam()
	witness := make(Witness, param.Dimension-1)
	instance := Instance{Weights: make([]uint64, param.Dimension)}

	err := SanityCheck(witness, instance, param)
	require.ErrorIs(t, err, ErrBadWitnessLength)
}

func TestSanityCheckBadInstanceLength(t *testing.T) {
	param := DefaultParam()
	witness := make(Witness, param.Dimension)
	instance := Instance{Weights: make([]uint64, param.Dimension-1)}

	err := SanityCheck(witness, instance, param)
	require.ErrorIs(t, err, ErrBadInstanceLength)
}

func TestSanityCheckBadAbortParam(t *testing.T) {
	param := DefaultParam()
	param.LogA = 64
	witness := make(Witness, param.Dimension)
	instance := Instance{Weights: make([]uint64, param.Dimension)}

	err := SanityCheck(witness, instance, param)
	require.ErrorIs(t, err, ErrBadAbortParam)
}

func TestSanityCheckBadWitnessOrInstance(t *testing.T) {
	param := DefaultParam()
	witness := make(Witness, param.Dimension)
	weights := make([]uint64, param.Dimension)
	for i := range weights {
		weights[i] = uint64(i + 1)
	}
	instance := Instance{Weights: weights, T: 999999}

	err := SanityCheck(witness, instance, param)
	require.ErrorIs(t, err, ErrBadWitnessOrInstance)
}

func TestInnerProduct(t *testing.T) {
	witness := Witness{1, 0, 1, 1}
	weights := []uint64{2, 5, 3, 7}
	require.Equal(t, uint64(2+3+7), InnerProduct(witness, weights))
}
