package prover

// Step3Response is the shape of the prover's third message. It carries only
// the (repetition, party) index of each opened view: the parties' seeds,
// shares and openings, and the openings of unopened commitments, are not
// part of it. spec §4.5/§9.5 leave the exact byte layout of this response
// as an open requirement inherited from the underlying published protocol.
type Step3Response struct {
	// PartyViews[i] identifies, for the i-th queried index in chalL, the
	// repetition and party it opens.
	PartyViews []PartyView
}

// PartyView is one opened party's contribution to a single repetition.
type PartyView struct {
	Repetition int
	Party      int
}

// Step3 is unimplemented: the source this was ported from leaves it
// unimplemented too (spec §4.5), and the exact response structure depends
// on a choice the published protocol makes that spec.md does not fix.
func (p *Prover) Step3(state *State, chalL []int) (Step3Response, error) {
	panic("prover: Step3 is unimplemented (spec §4.5, §9.5 — open requirement)")
}
