// Package primitives implements the domain-separated hash family, the
// commitment scheme, and the AES-128-CTR PRG family (including the GGM
// binary-tree expansion) that the prover and verifier build on.
package primitives

// Fixed byte sizes used throughout the protocol.
const (
	KeySize     = 16
	BlockSize   = 16
	OpeningSize = 16
	DigestSize  = 32
)

// Domain-separation prefixes. Every hash call begins with one of these,
// padded with '-' to exactly 8 ASCII bytes. fs1/fs2 intentionally use
// distinct prefixes: the Rust source this was ported from gives FS1 and
// FS2 the same prefix, which is a domain-separation bug (see spec §9.1).
const (
	prefixH1Delta  = "delta_rs"
	prefixH1Com    = "commitme"
	prefixH2       = "h1s-----"
	prefixH3       = "h3------"
	prefixH4       = "h4------"
	prefixWitness  = "witness-"
	prefixInstance = "instance"
	prefixFS1      = "fs1-----"
	prefixFS2      = "fs2-----"
)
