// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package oracle implements the random oracle H used by the combined
// ciphertext's indicator bits. H is built from AES-128 the same way the
// block PRF is, but keyed by a per-ciphertext nonce rather than the long
// term ORE key, and it exposes only a single bit of output per block: the
// least-significant bit of the AES output.
package oracle

import (
	"crypto/aes"
	"crypto/cipher"
)

// BlockSize is the size, in bytes, of a single oracle input block.
const BlockSize = 16

// Oracle is a random oracle keyed by a 16-byte nonce. Unlike prf.PRF, an
// Oracle's key changes on every encryption call, so it is cheap to
// construct and is not intended to be reused across ciphertexts.
type Oracle struct {
	cipher cipher.Block
}

// New builds a random oracle keyed by the given nonce.
func New(key [16]byte) (*Oracle, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return &Oracle{cipher: block}, nil
}

// Hash returns a single pseudorandom bit derived from data, taken as the
// least-significant bit of AES_key(data).
func (o *Oracle) Hash(data [16]byte) byte {
	var out [16]byte
	o.cipher.Encrypt(out[:], data[:])
	return out[0] & 1
}

// HashAll hashes each element of data independently and returns the
// least-significant bit of each, in order. Each element of data must be
// exactly BlockSize bytes.
func (o *Oracle) HashAll(data [][]byte) []byte {
	out := make([]byte, len(data))
	var scratch [16]byte
	for i, block := range data {
		if len(block) != BlockSize {
			panic("oracle: block must be exactly 16 bytes")
		}
		o.cipher.Encrypt(scratch[:], block)
		out[i] = scratch[0] & 1
	}
	return out
}
