package primitives

import (
	"crypto/aes"
	"crypto/cipher"
)

// PRGBlocks is the core AES-128-CTR keystream primitive: m 16-byte blocks
// derived from seed, keyed under iv. iv is used as the full 16-byte
// initial counter block, matching the Rust ground truth's
// Aes128Ctr::new(seed, iv) — Go's crypto/cipher CTR increments that block
// as a big-endian 128-bit counter, which agrees with Ctr64BE for the
// small block counts this protocol ever draws (spec §4.2).
func PRGBlocks(seed [KeySize]byte, iv [BlockSize]byte, m int) [][BlockSize]byte {
	block, err := aes.NewCipher(seed[:])
	if err != nil {
		panic(err)
	}
	stream := cipher.NewCTR(block, iv[:])

	out := make([][BlockSize]byte, m)
	buf := make([]byte, m*BlockSize)
	stream.XORKeyStream(buf, buf)
	for i := 0; i < m; i++ {
		copy(out[i][:], buf[i*BlockSize:(i+1)*BlockSize])
	}
	return out
}

// PRGU64 draws n little-endian u64s, packed two per 16-byte block
// (spec §4.2, §9.3: the canonical, packed layout).
func PRGU64(seed [KeySize]byte, iv [BlockSize]byte, n int) []uint64 {
	if n < 1 {
		panic("primitives: PRGU64 requires n >= 1")
	}
	blocks := (n + 1) / 2
	raw := PRGBlocks(seed, iv, blocks)

	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		block := raw[i/2]
		off := (i % 2) * 8
		out[i] = uint64(block[off]) |
			uint64(block[off+1])<<8 |
			uint64(block[off+2])<<16 |
			uint64(block[off+3])<<24 |
			uint64(block[off+4])<<32 |
			uint64(block[off+5])<<40 |
			uint64(block[off+6])<<48 |
			uint64(block[off+7])<<56
	}
	return out
}

// PRGBits draws n bytes, each 0 or 1, LSB-first within each keystream byte
// (spec §4.2).
func PRGBits(seed [KeySize]byte, iv [BlockSize]byte, n int) []byte {
	if n < 1 {
		panic("primitives: PRGBits requires n >= 1")
	}
	blocks := n/BlockSize + 1
	raw := PRGBlocks(seed, iv, blocks)

	out := make([]byte, n)
	i := 0
outer:
	for _, block := range raw {
		for _, b := range block {
			for shift := uint(0); shift < 8; shift++ {
				out[i] = (b >> shift) & 1
				i++
				if i == n {
					break outer
				}
			}
		}
	}
	return out
}

// PRGTree is the length-doubling GGM expansion: starting from seed, it
// breadth-first splits nodes via PRGBlocks(k, iv, 2) until n leaves have
// been produced (spec §4.2). The seed itself is the sole leaf when n == 1.
func PRGTree(seed [KeySize]byte, iv [BlockSize]byte, n int) [][BlockSize]byte {
	queue := make([][BlockSize]byte, 0, n)
	queue = append(queue, seed)

	for len(queue) < n {
		k := queue[0]
		queue = queue[1:]
		children := PRGBlocks(k, iv, 2)
		queue = append(queue, children[0], children[1])
	}
	return queue[:n]
}
