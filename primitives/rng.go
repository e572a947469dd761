package primitives

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
)

// ChaChaRNG is a deterministic CSPRNG seeded from a 32-byte key, the Go
// analogue of the Rust crate's rand_chacha::ChaChaRng: the verifier's
// challenge sampling (spec §4.6) and the Fiat–Shamir challenge derivation
// (spec §4.1, FS1/FS2) both need a PRNG that is fully determined by a
// 32-byte digest, not by OS entropy.
type ChaChaRNG struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

// NewChaChaRNG seeds a ChaCha20 keystream generator from a 32-byte seed.
// The nonce is fixed at zero: the seed alone determines the whole stream,
// which is exactly the property FS1/FS2 and the verifier's challenge
// sampling rely on.
func NewChaChaRNG(seed [32]byte) *ChaChaRNG {
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		panic(err)
	}
	return &ChaChaRNG{cipher: c}
}

// Read implements io.Reader by XOR-ing the ChaCha20 keystream over zeros.
func (r *ChaChaRNG) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Uint64 draws the next 8 keystream bytes as a little-endian uint64.
func (r *ChaChaRNG) Uint64() uint64 {
	_, _ = io.ReadFull(r, r.buf[:])
	return binary.LittleEndian.Uint64(r.buf[:])
}

// Int63 implements math/rand.Source64's required Int63 in terms of Uint64,
// so a ChaChaRNG can back a math/rand.Rand for Fisher–Yates shuffling.
func (r *ChaChaRNG) Int63() int64 {
	return int64(r.Uint64() >> 1)
}

// Seed is a no-op: a ChaChaRNG's entire state is fixed at construction, by
// design, so that FS1/FS2-derived RNGs are reproducible from the transcript
// alone.
func (r *ChaChaRNG) Seed(int64) {}

// NewEntropyChaChaRNG seeds a ChaChaRNG from the OS CSPRNG, the analogue of
// Rust's ChaChaRng::from_entropy(), for callers (e.g. Prover.New, the demo
// driver) that need fresh randomness rather than a transcript-derived seed.
func NewEntropyChaChaRNG() *ChaChaRNG {
	var seed [32]byte
	if _, err := io.ReadFull(rand.Reader, seed[:]); err != nil {
		panic(err)
	}
	return NewChaChaRNG(seed)
}
