// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package prf implements the keyed block pseudorandom function (PRF) that
// every other ORE primitive is built from. It is a thin wrapper around
// AES-128: the PRF is never used to decrypt, only to encrypt arbitrary
// batches of 16-byte blocks in place under a fixed key.
package prf

import (
	"crypto/aes"
	"crypto/cipher"
)

// BlockSize is the size, in bytes, of a single PRF input/output block.
const BlockSize = 16

// PRF is a keyed permutation on 16-byte blocks, realized with AES-128.
//
// A PRF is immutable once constructed: the AES key schedule it wraps is
// read-only, so a *PRF is safe to share across goroutines.
type PRF struct {
	cipher cipher.Block
}

// New builds a PRF from a 16-byte key. The only failure mode is a malformed
// key length, which cannot occur given the [16]byte type but is still
// checked since aes.NewCipher returns an error.
func New(key [16]byte) (*PRF, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return &PRF{cipher: block}, nil
}

// EncryptBlocks encrypts every block in data in place under the PRF's key.
// Each element of data must be exactly BlockSize bytes; this is an internal
// invariant enforced by callers within this module, not user input, so it
// is asserted rather than returned as an error.
//
// The Go standard library's AES implementation has no bulk/pipelined block
// API (unlike the RustCrypto aes crate this scheme was originally built
// against), so blocks are encrypted one at a time. This is the one place in
// the engine where a faster third-party AES implementation could be dropped
// in behind the same signature without touching any caller.
func (p *PRF) EncryptBlocks(data [][]byte) {
	for _, block := range data {
		if len(block) != BlockSize {
			panic("prf: block must be exactly 16 bytes")
		}
		p.cipher.Encrypt(block, block)
	}
}
