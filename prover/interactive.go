package prover

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kc1212/ssith-go/protocol"
)

// InteractiveProver drives a Prover through the full two-round exchange
// over a pair of typed channels (spec §5): it sends ProverMsg on tx and
// blocks on rx for the matching VerifierMsg. No step-3 response is sent:
// the run ends once challenge L has been received.
type InteractiveProver struct {
	prover *Prover
	tx     chan<- protocol.ProverMsg
	rx     <-chan protocol.VerifierMsg
	logger zerolog.Logger
}

// NewInteractiveProver wraps an existing Prover with a channel pair.
func NewInteractiveProver(p *Prover, tx chan<- protocol.ProverMsg, rx <-chan protocol.VerifierMsg) *InteractiveProver {
	return &InteractiveProver{prover: p, tx: tx, rx: rx, logger: log.With().Str("role", "prover").Logger()}
}

// recvVerifierMsg blocks for the next VerifierMsg, reporting ErrChannel if
// the channel was closed instead (spec §5 cancellation).
func (ip *InteractiveProver) recvVerifierMsg() (protocol.VerifierMsg, error) {
	msg, ok := <-ip.rx
	if !ok {
		return protocol.VerifierMsg{}, protocol.ErrChannel
	}
	return msg, nil
}

// Run executes step 1, waits for challenge J, executes step 2, waits for
// challenge L, and returns; Step3 is not called. A message of the wrong Kind at any
// recv point is a fatal ProtocolError (spec §5, §8 invariant 9).
func (ip *InteractiveProver) Run() error {
	state := ip.prover.Step1()
	ip.logger.Debug().Int("cnc_rounds", len(state.Step1State)).Msg("step1 complete")
	ip.tx <- protocol.NewProverStep1(state.H)

	vmsg, err := ip.recvVerifierMsg()
	if err != nil {
		return err
	}
	if vmsg.Kind != protocol.KindStep1 {
		return fmt.Errorf("%w: expected step1, got %s", protocol.ErrProtocol, vmsg.Kind)
	}

	hPrime, mseedsRevealed, err := ip.prover.Step2(&state, vmsg.ChalJ)
	if err != nil {
		return err
	}
	ip.logger.Debug().Int("revealed", len(mseedsRevealed)).Msg("step2 complete")
	ip.tx <- protocol.NewProverStep2(hPrime, mseedsRevealed)

	vmsg, err = ip.recvVerifierMsg()
	if err != nil {
		return err
	}
	if vmsg.Kind != protocol.KindStep2 {
		return fmt.Errorf("%w: expected step2, got %s", protocol.ErrProtocol, vmsg.Kind)
	}

	// Step 3 is an open requirement (spec §4.5); the interactive harness
	// stops here rather than sending an unspecified response.
	_ = vmsg.ChalL
	return nil
}
