// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package ciphertext implements the on-wire byte layout shared by every ORE
// ciphertext kind: a fixed 6-byte header followed by a kind-specific body.
// Encoding allocates only the single output buffer; decoding allocates only
// the per-block slices of the decoded value, and always validates the
// header against the body length before any bytes are interpreted as
// cryptographic material.
package ciphertext

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderLen is the fixed size, in bytes, of an encoded Header.
const HeaderLen = 6

// NonceLen is the size, in bytes, of the random nonce carried by Right and
// Combined ciphertexts.
const NonceLen = 16

// LeftBlockLen is the size, in bytes, of one Left block: a 16-byte F-block
// plus a 1-byte permuted value.
const LeftBlockLen = 17

// RightBlockLen is the size, in bytes, of one Right block: a 256-bit
// indicator vector.
const RightBlockLen = 32

// Kind identifies which of the three ciphertext bodies a Header describes.
// The numeric values are part of the wire format and must not change.
type Kind uint8

const (
	// KindLeft marks a ciphertext carrying only left blocks.
	KindLeft Kind = 0
	// KindRight marks a ciphertext carrying a nonce and right blocks.
	KindRight Kind = 1
	// KindCombined marks a ciphertext carrying a nonce and interleaved
	// left/right blocks.
	KindCombined Kind = 2
)

// String implements fmt.Stringer for diagnostic output.
func (k Kind) String() string {
	switch k {
	case KindLeft:
		return "Left"
	case KindRight:
		return "Right"
	case KindCombined:
		return "Combined"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ErrParseHeader is returned when a byte slice is too short to contain a
// header, or its declared kind is not one of the three known values.
var ErrParseHeader = errors.New("ciphertext: malformed header")

// ErrParseLength is returned when a decoded body's length does not match
// what the header's block count implies.
var ErrParseLength = errors.New("ciphertext: length does not match header")

// ErrIncompatibleHeaders is returned by comparison routines when two
// ciphertexts' headers do not agree closely enough to be compared.
var ErrIncompatibleHeaders = errors.New("ciphertext: headers are not comparable")

// Header is the fixed-size preamble shared by every ciphertext kind.
type Header struct {
	Version   uint16
	Scheme    uint8
	Kind      Kind
	NumBlocks uint16
}

// AppendTo appends the big-endian encoding of h to dst and returns the
// extended slice.
func (h Header) AppendTo(dst []byte) []byte {
	var buf [HeaderLen]byte
	binary.BigEndian.PutUint16(buf[0:2], h.Version)
	buf[2] = h.Scheme
	buf[3] = uint8(h.Kind)
	binary.BigEndian.PutUint16(buf[4:6], h.NumBlocks)
	return append(dst, buf[:]...)
}

// ParseHeader decodes a Header from the first HeaderLen bytes of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderLen {
		return Header{}, ErrParseHeader
	}
	k := Kind(b[3])
	if k != KindLeft && k != KindRight && k != KindCombined {
		return Header{}, ErrParseHeader
	}
	return Header{
		Version:   binary.BigEndian.Uint16(b[0:2]),
		Scheme:    b[2],
		Kind:      k,
		NumBlocks: binary.BigEndian.Uint16(b[4:6]),
	}, nil
}

// comparableWith reports whether h and other may be passed to Compare
// together: same version and scheme, same block count, and a Left paired
// with a Right or Combined (or vice versa).
func (h Header) comparableWith(other Header) bool {
	if h.Version != other.Version || h.Scheme != other.Scheme || h.NumBlocks != other.NumBlocks {
		return false
	}
	leftRight := h.Kind == KindLeft && (other.Kind == KindRight || other.Kind == KindCombined)
	rightLeft := other.Kind == KindLeft && (h.Kind == KindRight || h.Kind == KindCombined)
	return leftRight || rightLeft
}

// RequireComparable returns ErrIncompatibleHeaders unless h and other may be
// compared together.
func RequireComparable(h, other Header) error {
	if !h.comparableWith(other) {
		return ErrIncompatibleHeaders
	}
	return nil
}
