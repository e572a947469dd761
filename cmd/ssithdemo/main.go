// Command ssithdemo wires an InteractiveProver and InteractiveVerifier
// together over Go channels, logs the stubbed verification result, and
// prints the parameter record it ran with as indented JSON; the transcript
// itself is not printed (spec §1: an example driver, not the deliverable
// surface). It is the Go analogue of the teacher's provers/cmd/main.go
// and of original_source/examples/simulation.rs.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kc1212/ssith-go/primitives"
	"github.com/kc1212/ssith-go/protocol"
	"github.com/kc1212/ssith-go/prover"
	"github.com/kc1212/ssith-go/verifier"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := newDemoConfig(os.Args[1:]...)
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	rng := primitives.NewEntropyChaChaRNG()
	p := prover.New(rng, cfg.param)
	v := verifier.New(cfg.param)

	proverToVerifier := make(chan protocol.ProverMsg, 1)
	verifierToProver := make(chan protocol.VerifierMsg, 1)

	ip := prover.NewInteractiveProver(p, proverToVerifier, verifierToProver)
	iv := verifier.NewInteractiveVerifier(v, verifierToProver, proverToVerifier, rng)

	proverErrCh := make(chan error, 1)
	go func() {
		proverErrCh <- ip.Run()
	}()

	ok, verifierErr := iv.Run()
	if verifierErr != nil {
		log.Fatal().Err(verifierErr).Msg("verifier failed")
	}
	if proverErr := <-proverErrCh; proverErr != nil {
		log.Fatal().Err(proverErr).Msg("prover failed")
	}

	log.Info().Bool("verify_stub_result", ok).Msg("interactive run complete")

	blob, err := json.MarshalIndent(cfg.param, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("marshal param")
	}
	fmt.Println(string(blob))
}
