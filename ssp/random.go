package ssp

import "io"

// RandSource is the minimal randomness interface the protocol needs: a
// byte stream (for sampling the witness and the master seed) plus a
// direct uint64 draw (for sampling weights). primitives.ChaChaRNG
// satisfies it (its Uint64 wraps Read); a bare io.Reader such as
// crypto/rand.Reader does not, since it has no Uint64 method.
type RandSource interface {
	io.Reader
	Uint64() uint64
}

// NewRandom samples a fresh (witness, instance) pair: a uniform binary
// witness of param.Dimension bits and uniform u64 weights, with t set to
// the true inner product so SanityCheck always passes (spec §3, §8.1).
func NewRandom(rng RandSource, param Param) (Witness, Instance) {
	witness := make(Witness, param.Dimension)
	if _, err := io.ReadFull(rng, witness); err != nil {
		panic(err)
	}
	for i := range witness {
		witness[i] %= 2
	}

	weights := make([]uint64, param.Dimension)
	for i := range weights {
		weights[i] = rng.Uint64()
	}

	t := InnerProduct(witness, weights)
	return witness, Instance{Weights: weights, T: t}
}
