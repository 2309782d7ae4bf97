// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package prp implements a pseudorandom permutation over the 256-element
// byte alphabet, built with a seeded Fisher-Yates (Knuth) shuffle. Both the
// forward and inverse permutations are materialized up front so that
// Permute and Invert are both O(1) lookups.
package prp

import "github.com/cipherstash/ore-go/internal/prng"

// Size is the number of elements in the permuted alphabet: every possible
// byte value.
const Size = 256

// PRP is a pseudorandom permutation over [0, 255], derived deterministically
// from a 16-byte seed.
type PRP struct {
	forward [Size]byte
	inverse [Size]byte
}

// New derives a PRP from seed by running a Knuth shuffle over the identity
// permutation, drawing its randomness from a prng.Generator keyed by seed.
// The shuffle runs from the last index down to 1: at step i it draws a
// uniform index j in [0, i] and swaps positions i and j. This is the
// standard constant-time-friendly variant in that it always performs
// exactly Size-1 swaps regardless of seed.
func New(seed [16]byte) (*PRP, error) {
	gen, err := prng.New(seed)
	if err != nil {
		return nil, err
	}
	defer gen.Zero()

	p := &PRP{}
	for i := 0; i < Size; i++ {
		p.forward[i] = byte(i)
	}
	for i := Size - 1; i > 0; i-- {
		j := gen.GenRange(byte(i))
		p.forward[i], p.forward[j] = p.forward[j], p.forward[i]
	}
	for i, v := range p.forward {
		p.inverse[v] = byte(i)
	}
	return p, nil
}

// Permute maps x to its image under the permutation.
func (p *PRP) Permute(x byte) byte {
	return p.forward[x]
}

// Invert maps y back to the x such that Permute(x) == y.
func (p *PRP) Invert(y byte) byte {
	return p.inverse[y]
}

// Zero overwrites the permutation tables so that key-derived state does not
// linger in memory longer than necessary. A zeroed PRP is not safe to use.
func (p *PRP) Zero() {
	for i := range p.forward {
		p.forward[i] = 0
		p.inverse[i] = 0
	}
}
