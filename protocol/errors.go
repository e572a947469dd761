package protocol

import "errors"

// Sentinel errors shared by the interactive prover and verifier drivers
// (spec §7). ErrChannel wraps whatever the underlying channel op reported
// (a closed channel, in this Go port — sockets are out of scope, spec §1).
var (
	ErrBadChallengeLength = errors.New("protocol: challenge has the wrong length or an out-of-range index")
	ErrProtocol           = errors.New("protocol: received a message of the wrong step")
	ErrChannel            = errors.New("protocol: channel closed")
)
