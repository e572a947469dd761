package primitives

import (
	"golang.org/x/crypto/sha3"
)

// Opening is the randomness bound to a committed value.
type Opening [OpeningSize]byte

// Commitment is H(opening || value), 32 bytes, no length prefix (spec §4.1).
type Commitment [DigestSize]byte

// Commit computes commit(value, opening) = SHA3-256(opening || value).
func Commit(value []byte, opening Opening) Commitment {
	h := sha3.New256()
	h.Write(opening[:])
	h.Write(value)
	var out Commitment
	copy(out[:], h.Sum(nil))
	return out
}

// VerifyCommitment recomputes the commitment and compares it against com.
func VerifyCommitment(value []byte, opening Opening, com Commitment) bool {
	return Commit(value, opening) == com
}
