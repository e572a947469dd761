// Package ssp defines the public subset-sum problem instance, the private
// witness, the cut-and-choose parameter record, and the sanity check that
// ties the three together (spec §3).
package ssp

import "fmt"

// Param is the cut-and-choose / MPCitH parameter record.
//
//   - Dimension    n, the number of weights / witness bits.
//   - Parties      N, the number of simulated MPC parties per repetition.
//   - CncRounds    M, the total number of cut-and-choose repetitions.
//   - OpenedRounds tau, the number of repetitions the verifier opens.
//   - LogA         log A, the bit-width the party shares are reduced modulo.
type Param struct {
	Dimension    int
	Parties      int
	CncRounds    int
	OpenedRounds int
	LogA         int
}

// DefaultParam returns the parameter defaults named in spec §6.
func DefaultParam() Param {
	return Param{
		Dimension:    128,
		Parties:      4,
		CncRounds:    100,
		OpenedRounds: 24,
		LogA:         14,
	}
}

// Witness is a binary vector x in {0,1}^n, stored one byte per bit.
type Witness []byte

// Instance is the public subset-sum statement: weights w_1..w_n and a
// target t, both over u64 with wrap-around arithmetic modulo 2^64.
type Instance struct {
	Weights []uint64
	T       uint64
}

// SanityCheck validates witness, instance, and param against each other
// (spec §3, §4.3 preconditions, §8 invariant 1).
func SanityCheck(witness Witness, instance Instance, param Param) error {
	if len(witness) != param.Dimension {
		return fmt.Errorf("%w: got %d want %d", ErrBadWitnessLength, len(witness), param.Dimension)
	}
	if len(instance.Weights) != param.Dimension {
		return fmt.Errorf("%w: got %d want %d", ErrBadInstanceLength, len(instance.Weights), param.Dimension)
	}
	if param.LogA >= 64 {
		return fmt.Errorf("%w: got %d", ErrBadAbortParam, param.LogA)
	}

	var t uint64
	for i, w := range instance.Weights {
		t += uint64(witness[i]) * w
	}
	if t != instance.T {
		return fmt.Errorf("%w: recomputed %d, instance says %d", ErrBadWitnessOrInstance, t, instance.T)
	}
	return nil
}

// InnerProduct computes Σ wᵢ·xᵢ (mod 2⁶⁴) for a binary witness, the same
// wrapping arithmetic SanityCheck and NewRandom use.
func InnerProduct(witness Witness, weights []uint64) uint64 {
	var t uint64
	for i, w := range weights {
		t += uint64(witness[i]) * w
	}
	return t
}
