package prover

import (
	"encoding/json"

	"github.com/kc1212/ssith-go/primitives"
)

// StateInner holds the full per-repetition record produced by step 1
// (spec §3, §4.3 step 8): the inner master seed, the n masking bits, the
// N party seeds/openings/shares/commitments, and the two running sums
// that feed H1.
type StateInner struct {
	MseedInner [primitives.BlockSize]byte
	Rs         []byte // n masking bits, one 0/1 per byte
	PartySeeds [][primitives.KeySize]byte
	Rhos       []primitives.Opening
	RShares    [][]uint64 // [party][coordinate]
	Coms       []primitives.Commitment
	RSharesSum []uint64
	DeltaRs    []uint64
	H1         [primitives.DigestSize]byte
}

// State is the full retained step-1 output: one StateInner per
// repetition plus the top-level transcript digest h = H2(h1_0..h1_{M-1}).
type State struct {
	Step1State []StateInner
	H          [primitives.DigestSize]byte
}

// h1s recomputes the slice of per-repetition H1 digests from the stored
// delta_rs and commitments, the way a verifier re-derives them from
// revealed seeds (spec §8 invariant 8). It is unexported; CheckDigestChain
// is its only caller.
func (s *State) h1s() [][primitives.DigestSize]byte {
	out := make([][primitives.DigestSize]byte, len(s.Step1State))
	for i, inner := range s.Step1State {
		out[i] = primitives.Hash1(inner.DeltaRs, inner.Coms)
	}
	return out
}

// CheckDigestChain verifies that s.H == H2(recomputed h1s) (spec §8
// invariant 8).
func (s *State) CheckDigestChain() bool {
	return primitives.Hash2(s.h1s()) == s.H
}

// jsonStateInner mirrors StateInner with hex-rendered byte fields, the
// same split the teacher makes between an in-memory type and its
// hex.serde-style JSON form (types/hex2bytes.go).
type jsonStateInner struct {
	MseedInner primitives.HexBytes   `json:"mseed_inner"`
	Rs         primitives.HexBytes   `json:"rs"`
	PartySeeds []primitives.HexBytes `json:"seeds"`
	Rhos       []primitives.HexBytes `json:"rhos"`
	RShares    [][]uint64            `json:"r_shares"`
	Coms       []primitives.HexBytes `json:"coms"`
	RSharesSum []uint64              `json:"r_shares_sum"`
	DeltaRs    []uint64              `json:"delta_rs"`
	H1         primitives.HexBytes   `json:"h1"`
}

func (si StateInner) MarshalJSON() ([]byte, error) {
	seeds := make([]primitives.HexBytes, len(si.PartySeeds))
	for i, s := range si.PartySeeds {
		seeds[i] = s[:]
	}
	rhos := make([]primitives.HexBytes, len(si.Rhos))
	for i, r := range si.Rhos {
		rhos[i] = r[:]
	}
	coms := make([]primitives.HexBytes, len(si.Coms))
	for i, c := range si.Coms {
		coms[i] = c[:]
	}
	return json.Marshal(jsonStateInner{
		MseedInner: si.MseedInner[:],
		Rs:         si.Rs,
		PartySeeds: seeds,
		Rhos:       rhos,
		RShares:    si.RShares,
		Coms:       coms,
		RSharesSum: si.RSharesSum,
		DeltaRs:    si.DeltaRs,
		H1:         si.H1[:],
	})
}

type jsonState struct {
	Step1State []StateInner        `json:"step1_state"`
	H          primitives.HexBytes `json:"h"`
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonState{
		Step1State: s.Step1State,
		H:          s.H[:],
	})
}
