package prover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kc1212/ssith-go/protocol"
)

func TestStep2Deterministic(t *testing.T) {
	p := newTestProver(t)
	state := p.Step1()
	chalJ := []int{1, 3}

	hPrimeA, revealedA, err := p.Step2(&state, chalJ)
	require.NoError(t, err)
	hPrimeB, revealedB, err := p.Step2(&state, chalJ)
	require.NoError(t, err)

	require.Equal(t, hPrimeA, hPrimeB)
	require.Equal(t, revealedA, revealedB)
	require.Len(t, revealedA, p.Param().CncRounds-len(chalJ))
}

func TestStep2RevealsComplementOfJ(t *testing.T) {
	p := newTestProver(t)
	state := p.Step1()
	chalJ := []int{0, 2}

	_, revealed, err := p.Step2(&state, chalJ)
	require.NoError(t, err)

	revealedSet := map[[16]byte]bool{}
	for _, seed := range revealed {
		revealedSet[seed] = true
	}
	for e, inner := range state.Step1State {
		wantRevealed := e != 0 && e != 2
		require.Equal(t, wantRevealed, revealedSet[inner.MseedInner])
	}
}

func TestStep2BadChallengeLength(t *testing.T) {
	p := newTestProver(t)
	state := p.Step1()

	_, _, err := p.Step2(&state, []int{0})
	require.ErrorIs(t, err, protocol.ErrBadChallengeLength)
}

func TestStep2BadChallengeIndex(t *testing.T) {
	p := newTestProver(t)
	state := p.Step1()

	_, _, err := p.Step2(&state, []int{0, p.Param().CncRounds})
	require.ErrorIs(t, err, protocol.ErrBadChallengeLength)
}
