// Package verifier implements the stateless verifier-side challenge
// sampling (spec §4.6) and the channel-driven interactive verifier
// (spec §5). The final consistency check remains an open stub (spec §9.6).
package verifier

import (
	"math/rand"

	"github.com/kc1212/ssith-go/ssp"
)

// Verifier is stateless beyond the parameter record: every challenge is a
// pure function of param and the RNG it's handed.
type Verifier struct {
	param ssp.Param
}

// New constructs a Verifier for the given parameter record.
func New(param ssp.Param) *Verifier {
	return &Verifier{param: param}
}

// Step1 samples challenge J: tau distinct indices drawn uniformly from
// [0, M) via Fisher-Yates (spec §4.6).
func (v *Verifier) Step1(rng rand.Source64) []int {
	all := make([]int, v.param.CncRounds)
	for i := range all {
		all[i] = i
	}
	r := rand.New(rng)
	r.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return append([]int(nil), all[:v.param.OpenedRounds]...)
}

// Step2 samples challenge L: tau indices drawn from [0, N) with
// replacement (spec §4.6). The modulo bias from rng.Uint64() mod N is
// negligible since N is tiny relative to 2^64, matching the source's own
// rng.gen::<usize>() % N.
func (v *Verifier) Step2(rng rand.Source64) []int {
	chalL := make([]int, v.param.OpenedRounds)
	for i := range chalL {
		chalL[i] = int(rng.Uint64() % uint64(v.param.Parties))
	}
	return chalL
}

// Verify is an open requirement (spec §9.6): a complete implementation
// must recompute h1s for e not in J from the revealed mseeds and check
// h == H2(recomputed h1s), then recompute h3s consistent with L and check
// h' == H4(recomputed h3s). Neither check is implemented here.
func (v *Verifier) Verify(h [32]byte, hPrime [32]byte, mseedsRevealed [][16]byte) bool {
	return true
}
