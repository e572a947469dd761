package prover

import "github.com/kc1212/ssith-go/primitives"

// Step1 runs the commitment phase for every repetition e in [0, M) and
// returns the retained transcript digest h plus the full per-repetition
// state the prover needs to answer later challenges (spec §4.3).
//
// Determinism: for a fixed (witness, instance, mseed, param), Step1
// produces a byte-identical State on every call (spec §8 invariant 2),
// since every draw below is a pure function of mseed, iv, and param.
func (p *Prover) Step1() State {
	mseedsInner := primitives.PRGTree(p.mseed, p.iv, p.param.CncRounds)

	h1s := make([][primitives.DigestSize]byte, p.param.CncRounds)
	inners := make([]StateInner, p.param.CncRounds)

	for e, mseedInner := range mseedsInner {
		inner := p.step1Repetition(mseedInner)
		inners[e] = inner
		h1s[e] = inner.H1
	}

	return State{
		Step1State: inners,
		H:          primitives.Hash2(h1s),
	}
}

// step1Repetition runs steps 1-8 of spec §4.3 for a single cut-and-choose
// repetition keyed by mseedInner.
func (p *Prover) step1Repetition(mseedInner [primitives.BlockSize]byte) StateInner {
	n := p.param.Dimension
	parties := p.param.Parties

	rs := primitives.PRGBits(mseedInner, p.iv, n)

	pairs := primitives.PRGTree(mseedInner, p.iv, parties*2)
	partySeeds := make([][primitives.KeySize]byte, parties)
	rhos := make([]primitives.Opening, parties)
	for i := 0; i < parties; i++ {
		partySeeds[i] = pairs[2*i]
		rhos[i] = primitives.Opening(pairs[2*i+1])
	}

	mod := uint64(1) << uint(p.param.LogA)
	rShares := make([][]uint64, parties)
	coms := make([]primitives.Commitment, parties)
	for i := 0; i < parties; i++ {
		draws := primitives.PRGU64(partySeeds[i], p.iv, n)
		share := make([]uint64, n)
		for k, d := range draws {
			share[k] = d % mod
		}
		rShares[i] = share
		coms[i] = primitives.Commit(partySeeds[i][:], rhos[i])
	}

	rSharesSum := make([]uint64, n)
	for i := 0; i < parties; i++ {
		for k := 0; k < n; k++ {
			rSharesSum[k] += rShares[i][k]
		}
	}

	deltaRs := make([]uint64, n)
	for k := 0; k < n; k++ {
		deltaRs[k] = uint64(rs[k]) - rSharesSum[k]
	}

	h1 := primitives.Hash1(deltaRs, coms)

	return StateInner{
		MseedInner: mseedInner,
		Rs:         rs,
		PartySeeds: partySeeds,
		Rhos:       rhos,
		RShares:    rShares,
		Coms:       coms,
		RSharesSum: rSharesSum,
		DeltaRs:    deltaRs,
		H1:         h1,
	}
}
