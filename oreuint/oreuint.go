// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package oreuint adapts fixed-width unsigned integers and
// order-preserving-encoded floats into the ore.PlainText byte arrays the
// core engine operates on. Signed and floating-point values are mapped to
// an order-preserving unsigned integer of the same width before encoding,
// so that unsigned big-endian byte comparison (and therefore ORE
// comparison) agrees with the original value's ordering.
package oreuint

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/cipherstash/ore-go"
)

// ErrNotFinite is returned by Float64 and Float32 for NaN and infinite
// inputs, which have no defined position in an order-preserving encoding.
var ErrNotFinite = errors.New("oreuint: value must be finite")

// unsigned is the set of fixed-width unsigned integer types this package
// can encode directly as big-endian bytes.
type unsigned interface {
	constraints.Unsigned
}

// encodeBigEndian writes v's big-endian representation into a PlainText of
// the given byte width.
func encodeBigEndian[T unsigned](v T, width int) ore.PlainText {
	out := make(ore.PlainText, width)
	var u uint64 = uint64(v)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(u)
		u >>= 8
	}
	return out
}

// Uint16 encodes a uint16 as a 2-byte big-endian PlainText.
func Uint16(v uint16) ore.PlainText { return encodeBigEndian(v, 2) }

// Uint32 encodes a uint32 as a 4-byte big-endian PlainText.
func Uint32(v uint32) ore.PlainText { return encodeBigEndian(v, 4) }

// Uint64 encodes a uint64 as an 8-byte big-endian PlainText. Plaintexts
// longer than 15 bytes are rejected by the cipher, so this is the largest
// native integer width this package exposes directly.
func Uint64(v uint64) ore.PlainText { return encodeBigEndian(v, 8) }

// Int32 maps a signed 32-bit integer to an order-preserving uint32 by
// flipping the sign bit, then encodes it as Uint32 does.
func Int32(v int32) ore.PlainText {
	return Uint32(uint32(v) ^ 0x8000_0000)
}

// Int64 maps a signed 64-bit integer to an order-preserving uint64 by
// flipping the sign bit, then encodes it as Uint64 does.
func Int64(v int64) ore.PlainText {
	return Uint64(uint64(v) ^ 0x8000_0000_0000_0000)
}

// Float64 maps a finite float64 to an order-preserving uint64: the sign
// bit is set for non-negative values and every bit is flipped for negative
// values, which is the standard trick for making IEEE-754's bit pattern
// order agree with numeric order across the sign boundary. NaN and ±Inf
// are rejected with ErrNotFinite; callers must filter them before calling.
func Float64(v float64) (ore.PlainText, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNotFinite
	}
	bits := math.Float64bits(v)
	var mask uint64
	if bits&(1<<63) != 0 {
		mask = ^uint64(0)
	} else {
		mask = 1 << 63
	}
	return Uint64(bits ^ mask), nil
}

// Float32 is Float64's 32-bit counterpart.
func Float32(v float32) (ore.PlainText, error) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return nil, ErrNotFinite
	}
	bits := math.Float32bits(v)
	var mask uint32
	if bits&(1<<31) != 0 {
		mask = ^uint32(0)
	} else {
		mask = 1 << 31
	}
	return Uint32(bits ^ mask), nil
}

// Bytes wraps a caller-supplied big-endian byte sequence directly as a
// PlainText, for callers that have already performed their own
// order-preserving encoding.
func Bytes(b []byte) ore.PlainText {
	out := make(ore.PlainText, len(b))
	copy(out, b)
	return out
}
