package verifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kc1212/ssith-go/primitives"
	"github.com/kc1212/ssith-go/protocol"
	"github.com/kc1212/ssith-go/ssp"
)

func testParam() ssp.Param {
	return ssp.Param{
		Dimension:    8,
		Parties:      4,
		CncRounds:    10,
		OpenedRounds: 4,
		LogA:         14,
	}
}

// TestVerifierStep1Scenario exercises spec §8 Scenario D: fixed seed,
// deterministic sampling.
func TestVerifierStep1Scenario(t *testing.T) {
	param := testParam()
	v := New(param)

	var seed [32]byte
	seed[0] = 0x55
	chalJ1 := v.Step1(primitives.NewChaChaRNG(seed))
	chalJ2 := v.Step1(primitives.NewChaChaRNG(seed))

	require.Equal(t, chalJ1, chalJ2)
	require.Len(t, chalJ1, param.OpenedRounds)
}

func TestVerifierStep1Distinct(t *testing.T) {
	param := testParam()
	v := New(param)

	var seed [32]byte
	chalJ := v.Step1(primitives.NewChaChaRNG(seed))

	seen := map[int]bool{}
	for _, e := range chalJ {
		require.GreaterOrEqual(t, e, 0)
		require.Less(t, e, param.CncRounds)
		require.False(t, seen[e])
		seen[e] = true
	}
}

func TestVerifierStep2Range(t *testing.T) {
	param := testParam()
	v := New(param)

	var seed [32]byte
	seed[1] = 9
	chalL := v.Step2(primitives.NewChaChaRNG(seed))

	require.Len(t, chalL, param.OpenedRounds)
	for _, l := range chalL {
		require.GreaterOrEqual(t, l, 0)
		require.Less(t, l, param.Parties)
	}
}

func TestVerifierStep2Deterministic(t *testing.T) {
	param := testParam()
	v := New(param)

	var seed [32]byte
	seed[2] = 3
	a := v.Step2(primitives.NewChaChaRNG(seed))
	b := v.Step2(primitives.NewChaChaRNG(seed))
	require.Equal(t, a, b)
}

func TestInteractiveVerifierRejectsWrongKindFirst(t *testing.T) {
	param := testParam()
	v := New(param)

	tx := make(chan protocol.VerifierMsg, 1)
	rx := make(chan protocol.ProverMsg, 1)
	var seed [32]byte
	iv := NewInteractiveVerifier(v, tx, rx, primitives.NewChaChaRNG(seed))

	rx <- protocol.NewProverStep2([32]byte{}, nil)

	_, err := iv.Run()
	require.ErrorIs(t, err, protocol.ErrProtocol)
}

func TestInteractiveVerifierHappyPath(t *testing.T) {
	param := testParam()
	v := New(param)

	tx := make(chan protocol.VerifierMsg, 1)
	rx := make(chan protocol.ProverMsg, 1)
	var seed [32]byte
	iv := NewInteractiveVerifier(v, tx, rx, primitives.NewChaChaRNG(seed))

	var h [32]byte
	h[0] = 0x77
	rx <- protocol.NewProverStep1(h)

	resultCh := make(chan bool, 1)
	errCh := make(chan error, 1)
	go func() {
		ok, err := iv.Run()
		resultCh <- ok
		errCh <- err
	}()

	step1Msg := <-tx
	require.Equal(t, protocol.KindStep1, step1Msg.Kind)
	require.Len(t, step1Msg.ChalJ, param.OpenedRounds)

	var hPrime [32]byte
	hPrime[0] = 0x88
	rx <- protocol.NewProverStep2(hPrime, nil)

	step2Msg := <-tx
	require.Equal(t, protocol.KindStep2, step2Msg.Kind)
	require.Len(t, step2Msg.ChalL, param.OpenedRounds)

	require.NoError(t, <-errCh)
	require.True(t, <-resultCh)
}
