package primitives

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"
)

// writeLen absorbs n as an 8-byte little-endian length prefix, the
// encoding every variable-length field uses before its payload (spec §4.1).
func writeLen(h hash.Hash, n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
}

func writeU64(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// HashWitnessInstance computes H_WI(witness, instance), truncated to the
// first BlockSize bytes, used as the IV binding every PRG draw to the
// statement being proved.
func HashWitnessInstance(witness []byte, weights []uint64, t uint64) [BlockSize]byte {
	h := sha3.New256()
	h.Write([]byte(prefixWitness))
	writeLen(h, len(witness))
	h.Write(witness)

	h.Write([]byte(prefixInstance))
	writeLen(h, len(weights))
	for _, w := range weights {
		writeU64(h, w)
	}
	writeU64(h, t)

	var out [BlockSize]byte
	copy(out[:], h.Sum(nil)[:BlockSize])
	return out
}

// Hash1 computes H1(delta_rs, coms) -> DIGEST.
func Hash1(deltaRs []uint64, coms []Commitment) [DigestSize]byte {
	h := sha3.New256()
	h.Write([]byte(prefixH1Delta))
	writeLen(h, len(deltaRs))
	for _, d := range deltaRs {
		writeU64(h, d)
	}
	h.Write([]byte(prefixH1Com))
	writeLen(h, len(coms))
	for _, c := range coms {
		h.Write(c[:])
	}
	var out [DigestSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash2 computes H2(h1s) -> DIGEST, the top-level step-1 transcript digest.
func Hash2(h1s [][DigestSize]byte) [DigestSize]byte {
	h := sha3.New256()
	h.Write([]byte(prefixH2))
	writeLen(h, len(h1s))
	for _, d := range h1s {
		h.Write(d[:])
	}
	var out [DigestSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash3 computes H3(xsTilde, tShares) -> DIGEST. The count of tShares is
// not absorbed (spec §4.1 / §9.4): it is implicitly fixed by N for a given
// Param, and Param never varies within one transcript.
func Hash3(xsTilde []byte, tShares []uint64) [DigestSize]byte {
	h := sha3.New256()
	h.Write([]byte(prefixH3))
	writeLen(h, len(xsTilde))
	h.Write(xsTilde)
	for _, s := range tShares {
		writeU64(h, s)
	}
	var out [DigestSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash4 computes H4(h3s) -> DIGEST, the step-2 aggregate digest h'.
func Hash4(h3s [][DigestSize]byte) [DigestSize]byte {
	h := sha3.New256()
	h.Write([]byte(prefixH4))
	for _, d := range h3s {
		h.Write(d[:])
	}
	var out [DigestSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// FS1 derives a 32-byte ChaCha seed from the step-1 digest h, used
// non-interactively to sample the verifier's first challenge J.
func FS1(h [DigestSize]byte) [32]byte {
	hs := sha3.New256()
	hs.Write([]byte(prefixFS1))
	hs.Write(h[:])
	var out [32]byte
	copy(out[:], hs.Sum(nil))
	return out
}

// FS2 derives a 32-byte ChaCha seed from the step-2 digest h' and the
// revealed inner seeds, used non-interactively to sample challenge L.
func FS2(hPrime [DigestSize]byte, mseedsRevealed [][BlockSize]byte) [32]byte {
	hs := sha3.New256()
	hs.Write([]byte(prefixFS2))
	hs.Write(hPrime[:])
	writeLen(hs, len(mseedsRevealed))
	for _, m := range mseedsRevealed {
		hs.Write(m[:])
	}
	var out [32]byte
	copy(out[:], hs.Sum(nil))
	return out
}
