package ssp

import "errors"

// Sentinel errors for the subset-sum instance/witness/parameter taxonomy
// (spec §7). Wrapped with fmt.Errorf/%w at the call site the way the
// teacher wraps os/network errors in types/hex2bytes.go and
// provers/listener.go, rather than via a closed enum type.
var (
	ErrBadWitnessLength     = errors.New("ssp: witness length does not match param.Dimension")
	ErrBadInstanceLength    = errors.New("ssp: weights length does not match param.Dimension")
	ErrBadAbortParam        = errors.New("ssp: log A must be less than 64")
	ErrBadWitnessOrInstance = errors.New("ssp: recomputed inner product does not equal t")
)
