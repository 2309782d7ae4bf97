// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package prng implements the deterministic, counter-mode byte generator
// that the Knuth-shuffle PRP draws its randomness from. It is keyed by a
// per-block seed and produces a reproducible stream of bytes: the same
// seed always yields the same stream, which is what lets the PRP be
// rebuilt identically by every encryption of a plaintext sharing that
// block's prefix.
//
// This is not a general-purpose CSPRNG and is never used as a nonce
// source; it exists solely to feed prp.New.
package prng

import (
	"crypto/aes"
	"crypto/cipher"
)

// batchBlocks is the number of 16-byte AES blocks generated per refill,
// matching the reference construction's 256-byte working set (16 blocks
// of 16 bytes each).
const batchBlocks = 16

// blockSize is the width, in bytes, of a single AES block.
const blockSize = 16

// Generator is a counter-mode pseudorandom byte stream keyed by a 16-byte
// seed. It generates batchBlocks*blockSize bytes at a time by encrypting a
// big-endian counter written into the leading bytes of each block, then
// serves bytes out of that batch sequentially until it is exhausted.
type Generator struct {
	cipher  cipher.Block
	data    [batchBlocks][blockSize]byte
	block   int
	offset  int
	counter uint32
	primed  bool
}

// New builds a Generator keyed by seed. The stream is lazily generated on
// first use, not at construction time.
func New(seed [16]byte) (*Generator, error) {
	c, err := aes.NewCipher(seed[:])
	if err != nil {
		return nil, err
	}
	return &Generator{cipher: c}, nil
}

// generate refills the working set: it writes the current 32-bit counter,
// big-endian, into the first four bytes of each of the batchBlocks blocks,
// incrementing the counter once per block, then encrypts every block in
// place. The result is the next batchBlocks*blockSize bytes of keystream.
func (g *Generator) generate() {
	for i := 0; i < batchBlocks; i++ {
		var block [blockSize]byte
		block[0] = byte(g.counter >> 24)
		block[1] = byte(g.counter >> 16)
		block[2] = byte(g.counter >> 8)
		block[3] = byte(g.counter)
		g.counter++
		g.cipher.Encrypt(block[:], block[:])
		g.data[i] = block
	}
	g.block = 0
	g.offset = 0
	g.primed = true
}

// NextByte returns the next byte of the keystream, refilling the working
// set whenever it runs dry.
func (g *Generator) NextByte() byte {
	if !g.primed || (g.block == batchBlocks-1 && g.offset == blockSize) {
		g.generate()
	}
	if g.offset == blockSize {
		g.block++
		g.offset = 0
	}
	b := g.data[g.block][g.offset]
	g.offset++
	return b
}

// GenRange returns a uniformly distributed byte in [0, max] by simple
// rejection sampling: candidates drawn from the stream and discarded until
// one falls within range. This mirrors the reference PRP's sampler exactly,
// including its lack of a modulo fallback, so that seed-to-permutation
// derivation stays bit-for-bit reproducible.
func (g *Generator) GenRange(max byte) byte {
	for {
		candidate := g.NextByte()
		if candidate <= max {
			return candidate
		}
	}
}

// Zero overwrites the generator's internal working set and counter so that
// key-derived state does not linger in memory longer than necessary.
func (g *Generator) Zero() {
	for i := range g.data {
		for j := range g.data[i] {
			g.data[i][j] = 0
		}
	}
	g.block = 0
	g.offset = 0
	g.counter = 0
	g.primed = false
}
