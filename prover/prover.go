// Package prover implements the MPCitH prover's commitment-phase engine:
// the Prover constructor/IV derivation, step 1 (commit) and step 2
// (respond to J), and a channel-driven interactive harness (spec §4.3-4.5,
// §5).
package prover

import (
	"github.com/kc1212/ssith-go/primitives"
	"github.com/kc1212/ssith-go/ssp"
)

// Prover owns a witness/instance pair, a master seed, the derived IV, and
// the parameter record for the full lifetime of one proof (spec §3).
type Prover struct {
	witness  ssp.Witness
	instance ssp.Instance
	mseed    [primitives.BlockSize]byte
	iv       [primitives.BlockSize]byte
	param    ssp.Param
}

// New samples a fresh random witness/instance pair and master seed from
// rng, according to param.
func New(rng ssp.RandSource, param ssp.Param) *Prover {
	witness, instance := ssp.NewRandom(rng, param)
	var mseed [primitives.BlockSize]byte
	if _, err := rng.Read(mseed[:]); err != nil {
		panic(err)
	}
	return fromWitnessInstanceUnchecked(witness, instance, mseed, param)
}

// FromWitnessInstance builds a Prover from a caller-supplied witness,
// instance, and master seed, running SanityCheck first (spec §3, §4.3
// preconditions).
func FromWitnessInstance(witness ssp.Witness, instance ssp.Instance, mseed [primitives.BlockSize]byte, param ssp.Param) (*Prover, error) {
	if err := ssp.SanityCheck(witness, instance, param); err != nil {
		return nil, err
	}
	return fromWitnessInstanceUnchecked(witness, instance, mseed, param), nil
}

func fromWitnessInstanceUnchecked(witness ssp.Witness, instance ssp.Instance, mseed [primitives.BlockSize]byte, param ssp.Param) *Prover {
	iv := primitives.HashWitnessInstance(witness, instance.Weights, instance.T)
	return &Prover{
		witness:  witness,
		instance: instance,
		mseed:    mseed,
		iv:       iv,
		param:    param,
	}
}

// Param returns the parameter record this prover was constructed with.
func (p *Prover) Param() ssp.Param {
	return p.param
}

// IV returns the statement-binding IV derived at construction time
// (H_WI(witness, instance)).
func (p *Prover) IV() [primitives.BlockSize]byte {
	return p.iv
}
