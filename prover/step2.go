package prover

import (
	"fmt"

	"github.com/kc1212/ssith-go/primitives"
	"github.com/kc1212/ssith-go/protocol"
)

// Step2 answers the verifier's first challenge J: for each opened
// repetition it reconstructs the masked witness x~ and the N parties'
// shares of t, hashes them into h3_e, aggregates into h', and reveals the
// inner seeds for the repetitions the verifier did NOT open (spec §4.4,
// corrected per spec §9.2: the cut-and-choose protocol reveals [M] \ J,
// not J itself).
func (p *Prover) Step2(state *State, chalJ []int) ([primitives.DigestSize]byte, [][primitives.BlockSize]byte, error) {
	if len(chalJ) != p.param.OpenedRounds {
		return [primitives.DigestSize]byte{}, nil, fmt.Errorf("%w: len(J)=%d want %d", protocol.ErrBadChallengeLength, len(chalJ), p.param.OpenedRounds)
	}
	for _, e := range chalJ {
		if e < 0 || e >= p.param.CncRounds {
			return [primitives.DigestSize]byte{}, nil, fmt.Errorf("%w: index %d out of [0,%d)", protocol.ErrBadChallengeLength, e, p.param.CncRounds)
		}
	}

	h3s := make([][primitives.DigestSize]byte, len(chalJ))
	for i, e := range chalJ {
		h3s[i] = p.step2Repetition(state.Step1State[e])
	}
	hPrime := primitives.Hash4(h3s)

	opened := make(map[int]bool, len(chalJ))
	for _, e := range chalJ {
		opened[e] = true
	}
	mseedsRevealed := make([][primitives.BlockSize]byte, 0, p.param.CncRounds-len(chalJ))
	for e := 0; e < p.param.CncRounds; e++ {
		if !opened[e] {
			mseedsRevealed = append(mseedsRevealed, state.Step1State[e].MseedInner)
		}
	}

	return hPrime, mseedsRevealed, nil
}

// step2Repetition computes h3_e for one challenged repetition (spec §4.4
// steps 1-3).
func (p *Prover) step2Repetition(inner StateInner) [primitives.DigestSize]byte {
	n := p.param.Dimension
	parties := p.param.Parties

	xsTilde := make([]byte, n)
	for k := 0; k < n; k++ {
		xsTilde[k] = p.witness[k] ^ inner.Rs[k]
	}

	tShares := make([]uint64, parties)
	for i := 0; i < parties; i++ {
		var t uint64
		for k := 0; k < n; k++ {
			rShare := inner.RShares[i][k]
			var xShare uint64
			if xsTilde[k] == 0 {
				xShare = rShare
			} else {
				xShare = 1 - rShare // 1 - r_share, wrapping
			}
			t += p.instance.Weights[k] * xShare
		}
		tShares[i] = t
	}

	return primitives.Hash3(xsTilde, tShares)
}
