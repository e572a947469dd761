package verifier

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kc1212/ssith-go/protocol"
)

// InteractiveVerifier drives a Verifier over a pair of typed channels,
// mirroring InteractiveProver (spec §5): recv the prover's message, sample
// and send the matching challenge, recv again, sample again, and finally
// call Verify.
type InteractiveVerifier struct {
	verifier *Verifier
	tx       chan<- protocol.VerifierMsg
	rx       <-chan protocol.ProverMsg
	rng      rand.Source64
	logger   zerolog.Logger
}

// NewInteractiveVerifier wraps an existing Verifier with a channel pair
// and the RNG used to sample both challenges.
func NewInteractiveVerifier(v *Verifier, tx chan<- protocol.VerifierMsg, rx <-chan protocol.ProverMsg, rng rand.Source64) *InteractiveVerifier {
	return &InteractiveVerifier{verifier: v, tx: tx, rx: rx, rng: rng, logger: log.With().Str("role", "verifier").Logger()}
}

func (iv *InteractiveVerifier) recvProverMsg() (protocol.ProverMsg, error) {
	msg, ok := <-iv.rx
	if !ok {
		return protocol.ProverMsg{}, protocol.ErrChannel
	}
	return msg, nil
}

// Run executes the verifier's half of the two-round exchange and returns
// the (stubbed) final verification result.
func (iv *InteractiveVerifier) Run() (bool, error) {
	pmsg, err := iv.recvProverMsg()
	if err != nil {
		return false, err
	}
	if pmsg.Kind != protocol.KindStep1 {
		return false, fmt.Errorf("%w: expected step1, got %s", protocol.ErrProtocol, pmsg.Kind)
	}
	h := pmsg.H
	chalJ := iv.verifier.Step1(iv.rng)
	iv.logger.Debug().Int("tau", len(chalJ)).Msg("sampled challenge J")
	iv.tx <- protocol.NewVerifierStep1(chalJ)

	pmsg, err = iv.recvProverMsg()
	if err != nil {
		return false, err
	}
	if pmsg.Kind != protocol.KindStep2 {
		return false, fmt.Errorf("%w: expected step2, got %s", protocol.ErrProtocol, pmsg.Kind)
	}
	chalL := iv.verifier.Step2(iv.rng)
	iv.logger.Debug().Int("tau", len(chalL)).Msg("sampled challenge L")
	iv.tx <- protocol.NewVerifierStep2(chalL)

	return iv.verifier.Verify(h, pmsg.HPrime, pmsg.MseedsRevealed), nil
}
