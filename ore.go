// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package ore implements Order-Revealing Encryption following the Lewi-Wu
// 2016 Block-ORE construction with a 2-bit indicator function. A Cipher
// encrypts fixed-length plaintexts into ciphertexts whose pairwise
// comparison reveals only the order relationship of the underlying
// plaintexts.
package ore

import (
	"crypto/subtle"
	"io"

	"github.com/cipherstash/ore-go/ciphertext"
	"github.com/cipherstash/ore-go/internal/oracle"
	"github.com/cipherstash/ore-go/internal/prf"
	"github.com/cipherstash/ore-go/internal/prp"
)

// PlainText is a fixed-length sequence of ORE blocks, one byte per block,
// over the 256-element alphabet. Adapters in the oreuint package build
// PlainText values from unsigned integers and order-preserving-encoded
// floats.
type PlainText []byte

// Ordering is the result of comparing two ciphertexts.
type Ordering int

const (
	// Less means the left-hand plaintext is strictly smaller.
	Less Ordering = -1
	// Equal means the two plaintexts are identical.
	Equal Ordering = 0
	// Greater means the left-hand plaintext is strictly larger.
	Greater Ordering = 1
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	default:
		return "Greater"
	}
}

// Cipher holds the two keys that drive the Block-ORE construction: k1 keys
// the PRF used for left blocks and random-oracle inputs; k2 keys the PRF
// used to derive per-block PRP seeds. A Cipher's PRFs are immutable once
// constructed and safe to share across goroutines; the configured random
// reader is the only mutable resource a Cipher touches, and Encrypt reads
// from it without any locking of its own.
type Cipher struct {
	cfg  Config
	prf1 *prf.PRF
	prf2 *prf.PRF
}

// New constructs a Cipher from two 16-byte keys. k1 keys left-block and
// random-oracle derivation; k2 keys PRP-seed derivation. Both must be
// exactly 16 bytes.
func New(k1, k2 []byte, opts ...Option) (*Cipher, error) {
	if len(k1) != 16 || len(k2) != 16 {
		return nil, ErrInvalidKeySize
	}
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	var k1b, k2b [16]byte
	copy(k1b[:], k1)
	copy(k2b[:], k2)

	p1, err := prf.New(k1b)
	if err != nil {
		return nil, err
	}
	p2, err := prf.New(k2b)
	if err != nil {
		return nil, err
	}
	return &Cipher{cfg: cfg, prf1: p1, prf2: p2}, nil
}

// blockPrefix returns the i-byte prefix of x, zero-padded to 16 bytes, for
// use as PRF input.
func blockPrefix(x PlainText, i int) [16]byte {
	var out [16]byte
	copy(out[:i], x[:i])
	return out
}

// prpSeeds runs PRF2 over every block's zero-padded prefix in a single
// batch, returning one 16-byte PRP seed per block.
func (c *Cipher) prpSeeds(x PlainText) [][16]byte {
	n := len(x)
	seeds := make([][16]byte, n)
	batch := make([][]byte, n)
	for i := 0; i < n; i++ {
		seeds[i] = blockPrefix(x, i)
		batch[i] = seeds[i][:]
	}
	c.prf2.EncryptBlocks(batch)
	return seeds
}

// leftFInput builds the PRF1 input for the left side of block i:
// prefix_i ‖ xt_i ‖ 0…0 ‖ i, where the block index i is written at byte
// index N (the block count) of the input, a hardening against prefix
// collisions across block positions inherited unchanged from the reference
// construction.
func leftFInput(x PlainText, i int, xt byte) [16]byte {
	n := len(x)
	var out [16]byte
	copy(out[:i], x[:i])
	out[i] = xt
	out[n] = byte(i)
	return out
}

// EncryptLeft produces the left ciphertext for x: for each block, a PRF1
// output (F) and the PRP-permuted plaintext byte (X). The left side never
// draws a nonce and is deterministic given the cipher's keys, which is
// what makes a left encryption compare as Equal against an Encrypt of the
// same plaintext.
func (c *Cipher) EncryptLeft(x PlainText) (ciphertext.Left, error) {
	n := len(x)
	if n == 0 || n > 15 {
		return ciphertext.Left{}, ErrPlaintextLength
	}

	seeds := c.prpSeeds(x)
	xt := make([]byte, n)
	for i := 0; i < n; i++ {
		pp, err := prp.New(seeds[i])
		if err != nil {
			return ciphertext.Left{}, err
		}
		xt[i] = pp.Permute(x[i])
		pp.Zero()
	}

	f := make([][16]byte, n)
	batch := make([][]byte, n)
	for i := 0; i < n; i++ {
		f[i] = leftFInput(x, i, xt[i])
		batch[i] = f[i][:]
	}
	c.prf1.EncryptBlocks(batch)

	return ciphertext.NewLeft(c.cfg.Version, c.cfg.Scheme, f, xt), nil
}

// Encrypt produces a combined ciphertext for x, carrying both the left
// blocks (as in EncryptLeft) and the right blocks: a fresh nonce and, for
// every block, a 256-bit indicator vector encoding cmp(j, x_i) for every
// possible byte value j, masked by a random-oracle bit so that only the
// single indicator actually read during a comparison is ever revealed.
func (c *Cipher) Encrypt(x PlainText) (ciphertext.Combined, error) {
	n := len(x)
	if n == 0 || n > 15 {
		return ciphertext.Combined{}, ErrPlaintextLength
	}

	seeds := c.prpSeeds(x)
	xt := make([]byte, n)
	prps := make([]*prp.PRP, n)
	for i := 0; i < n; i++ {
		pp, err := prp.New(seeds[i])
		if err != nil {
			return ciphertext.Combined{}, err
		}
		prps[i] = pp
		xt[i] = pp.Permute(x[i])
	}

	f := make([][16]byte, n)
	leftBatch := make([][]byte, n)
	for i := 0; i < n; i++ {
		f[i] = leftFInput(x, i, xt[i])
		leftBatch[i] = f[i][:]
	}
	c.prf1.EncryptBlocks(leftBatch)

	var nonce [16]byte
	if _, err := io.ReadFull(c.cfg.RandReader, nonce[:]); err != nil {
		return ciphertext.Combined{}, ErrRandSourceFailed
	}

	indicators := make([][ciphertext.RightBlockLen]byte, n)
	roInputs := make([][16]byte, prp.Size)
	roBatch := make([][]byte, prp.Size)
	for i := 0; i < n; i++ {
		for j := 0; j < prp.Size; j++ {
			var ro [16]byte
			copy(ro[:i], x[:i])
			ro[i] = byte(j)
			ro[n] = byte(i)
			roInputs[j] = ro
			roBatch[j] = roInputs[j][:]
		}
		c.prf1.EncryptBlocks(roBatch)

		oc, err := oracle.New(nonce)
		if err != nil {
			return ciphertext.Combined{}, err
		}
		masks := oc.HashAll(roBatch)

		var vec [ciphertext.RightBlockLen]byte
		for j := 0; j < prp.Size; j++ {
			jStar := prps[i].Invert(byte(j))
			indicator := cmp(jStar, x[i]) ^ masks[j]
			ciphertext.SetBit(&vec, j, indicator)
		}
		indicators[i] = vec

		for j := range roInputs {
			roInputs[j] = [16]byte{}
		}
	}

	for _, pp := range prps {
		pp.Zero()
	}

	return ciphertext.NewCombined(c.cfg.Version, c.cfg.Scheme, nonce, f, xt, indicators), nil
}

// cmp is the indicator comparator: 1 iff a > b, else 0.
func cmp(a, b byte) byte {
	if a > b {
		return 1
	}
	return 0
}

// Compare orders left against right, the left and right halves of two
// independent encryptions under the same cipher. right must carry both its
// own left blocks (for the equality scan) and its right blocks (for the
// masked indicator bit), which is why the comparator takes a Combined: a
// bare Right ciphertext does not, by itself, carry enough information to
// support this comparison, matching the reference construction's own
// comparator.
func Compare(left ciphertext.Left, right ciphertext.Combined) (Ordering, error) {
	if err := ciphertext.RequireComparable(left.Header, right.Header); err != nil {
		return 0, err
	}

	n := int(left.Header.NumBlocks)
	equal := 1
	l := 0
	for i := 0; i < n; i++ {
		blockEq := subtle.ConstantTimeByteEq(left.X[i], right.X[i]) &
			subtle.ConstantTimeCompare(left.F[i][:], right.F[i][:])
		// l is updated only on the first block where the scan is still
		// all-equal and this block differs; both predicates are carried
		// as 0/1 masks rather than booleans so the selection never
		// branches on plaintext-dependent values.
		firstMismatch := subtle.ConstantTimeSelect(equal, 1-blockEq, 0)
		l = subtle.ConstantTimeSelect(firstMismatch, i, l)
		equal = subtle.ConstantTimeSelect(blockEq, equal, 0)
	}

	if equal == 1 {
		return Equal, nil
	}

	oc, err := oracle.New(right.Nonce)
	if err != nil {
		return 0, err
	}
	h := oc.Hash(left.F[l])
	bit := ciphertext.GetBit(&right.Indicators[l], int(left.X[l]))
	if bit^h == 1 {
		return Greater, nil
	}
	return Less, nil
}

// CompareCombined orders left against right where both sides were produced
// by Encrypt; only left's left-half is consulted, matching Compare.
func CompareCombined(left ciphertext.Combined, right ciphertext.Combined) (Ordering, error) {
	return Compare(left.Left(), right)
}

// CompareRawSlices performs the same comparison on serialized ciphertext
// bytes, for callers that store ciphertexts as opaque blobs. It parses both
// slices into typed ciphertexts and then calls Compare, so it does not
// avoid the cost of deserialization. a may encode either a Left or a
// Combined ciphertext; b must encode a Combined ciphertext.
func CompareRawSlices(a, b []byte) (Ordering, error) {
	bh, err := ciphertext.ParseHeader(b)
	if err != nil {
		return 0, err
	}
	if bh.Kind != ciphertext.KindCombined {
		return 0, ErrIncompatibleHeaders
	}
	right, err := ciphertext.ParseCombined(b)
	if err != nil {
		return 0, err
	}

	ah, err := ciphertext.ParseHeader(a)
	if err != nil {
		return 0, err
	}

	var left ciphertext.Left
	switch ah.Kind {
	case ciphertext.KindLeft:
		left, err = ciphertext.ParseLeft(a)
	case ciphertext.KindCombined:
		var c ciphertext.Combined
		c, err = ciphertext.ParseCombined(a)
		left = c.Left()
	default:
		return 0, ErrIncompatibleHeaders
	}
	if err != nil {
		return 0, err
	}

	return Compare(left, right)
}
