// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ciphertext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHeaderRoundTrip verifies that AppendTo/ParseHeader round-trip every
// field.
func TestHeaderRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	h := Header{Version: 3, Scheme: 7, Kind: KindCombined, NumBlocks: 9}
	b := h.AppendTo(nil)
	is.Len(b, HeaderLen)

	got, err := ParseHeader(b)
	is.NoError(err)
	is.Equal(h, got)
}

// TestParseHeaderRejectsUnknownKind ensures an out-of-range kind byte fails
// to parse.
func TestParseHeaderRejectsUnknownKind(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	h := Header{Version: 1, Scheme: 1, Kind: Kind(99), NumBlocks: 1}
	b := h.AppendTo(nil)
	// Bypass Kind's type safety to build a malformed header byte directly.
	b[3] = 99

	_, err := ParseHeader(b)
	is.Equal(ErrParseHeader, err)
}

// TestParseHeaderRejectsShortInput ensures a too-short slice fails instead
// of panicking.
func TestParseHeaderRejectsShortInput(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := ParseHeader([]byte{1, 2, 3})
	is.Equal(ErrParseHeader, err)
}

// TestLeftRoundTrip verifies Left.MarshalBinary/ParseLeft round-trip.
func TestLeftRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	f := [][16]byte{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	x := []byte{10, 20, 30}
	left := NewLeft(1, 1, f, x)

	b, err := left.MarshalBinary()
	is.NoError(err)
	is.Len(b, HeaderLen+3*LeftBlockLen)

	parsed, err := ParseLeft(b)
	is.NoError(err)
	is.True(left.Equal(parsed))
}

// TestParseLeftRejectsLengthMismatch ensures a body whose length disagrees
// with the header's block count is rejected.
func TestParseLeftRejectsLengthMismatch(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	h := Header{Version: 1, Scheme: 1, Kind: KindLeft, NumBlocks: 2}
	b := h.AppendTo(nil)
	b = append(b, make([]byte, LeftBlockLen)...) // only one block's worth

	_, err := ParseLeft(b)
	is.Equal(ErrParseLength, err)
}

// TestCombinedRoundTripAndSplit verifies Combined.MarshalBinary/ParseCombined
// round-trip, and that Left()/Right() extract consistent halves.
func TestCombinedRoundTripAndSplit(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	f := [][16]byte{{1}, {2}}
	x := []byte{9, 8}
	var nonce [NonceLen]byte
	for i := range nonce {
		nonce[i] = byte(i)
	}
	var ind [RightBlockLen]byte
	SetBit(&ind, 5, 1)
	indicators := [][RightBlockLen]byte{ind, ind}

	combined := NewCombined(2, 1, nonce, f, x, indicators)
	b, err := combined.MarshalBinary()
	is.NoError(err)

	parsed, err := ParseCombined(b)
	is.NoError(err)
	is.True(combined.Equal(parsed))

	left := combined.Left()
	is.Equal(KindLeft, left.Header.Kind)
	is.Equal(f, left.F)
	is.Equal(x, left.X)

	right := combined.Right()
	is.Equal(KindRight, right.Header.Kind)
	is.Equal(nonce, right.Nonce)
	is.Equal(indicators, right.Indicators)
}

// TestRequireComparable verifies the header-compatibility rules: matching
// version/scheme/block-count, and a Left paired with a Right or Combined.
func TestRequireComparable(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	left := Header{Version: 1, Scheme: 1, Kind: KindLeft, NumBlocks: 4}
	right := Header{Version: 1, Scheme: 1, Kind: KindRight, NumBlocks: 4}
	combined := Header{Version: 1, Scheme: 1, Kind: KindCombined, NumBlocks: 4}

	is.NoError(RequireComparable(left, right))
	is.NoError(RequireComparable(left, combined))
	is.NoError(RequireComparable(combined, left))

	mismatchedBlocks := Header{Version: 1, Scheme: 1, Kind: KindRight, NumBlocks: 5}
	is.Equal(ErrIncompatibleHeaders, RequireComparable(left, mismatchedBlocks))

	bothLeft := Header{Version: 1, Scheme: 1, Kind: KindLeft, NumBlocks: 4}
	is.Equal(ErrIncompatibleHeaders, RequireComparable(left, bothLeft))
}

// TestSetBitGetBit verifies bit indexing: byte j/8, bit j%8,
// little-endian within the byte.
func TestSetBitGetBit(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var vec [RightBlockLen]byte
	SetBit(&vec, 0, 1)
	is.Equal(byte(0x01), vec[0])

	SetBit(&vec, 7, 1)
	is.Equal(byte(0x81), vec[0])

	SetBit(&vec, 8, 1)
	is.Equal(byte(0x01), vec[1])

	for j := 0; j < RightBlockLen*8; j++ {
		want := byte(0)
		if j == 0 || j == 7 || j == 8 {
			want = 1
		}
		is.Equal(want, GetBit(&vec, j), "bit %d", j)
	}

	SetBit(&vec, 7, 0)
	is.Equal(byte(0), GetBit(&vec, 7))
}
