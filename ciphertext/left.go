// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ciphertext

// Left is a ciphertext carrying only the blocks needed to initiate a
// comparison: for each block, the PRF output (F) and the permuted
// plaintext byte (X).
type Left struct {
	Header Header
	F      [][16]byte
	X      []byte
}

// NewLeft builds a Left ciphertext from parallel per-block F and X slices.
// Both slices must have the same length, which becomes the header's block
// count.
func NewLeft(version uint16, scheme uint8, f [][16]byte, x []byte) Left {
	return Left{
		Header: Header{
			Version:   version,
			Scheme:    scheme,
			Kind:      KindLeft,
			NumBlocks: uint16(len(f)),
		},
		F: f,
		X: x,
	}
}

// MarshalBinary encodes l per the wire format: Header, then NumBlocks
// blocks of F (16 bytes) followed by X (1 byte).
func (l Left) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, HeaderLen+int(l.Header.NumBlocks)*LeftBlockLen)
	out = l.Header.AppendTo(out)
	for i := 0; i < int(l.Header.NumBlocks); i++ {
		out = append(out, l.F[i][:]...)
		out = append(out, l.X[i])
	}
	return out, nil
}

// ParseLeft decodes a Left ciphertext from b, verifying that its header
// declares KindLeft and that b's length matches the declared block count.
func ParseLeft(b []byte) (Left, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return Left{}, err
	}
	if h.Kind != KindLeft {
		return Left{}, ErrParseHeader
	}
	want := HeaderLen + int(h.NumBlocks)*LeftBlockLen
	if len(b) != want {
		return Left{}, ErrParseLength
	}
	f := make([][16]byte, h.NumBlocks)
	x := make([]byte, h.NumBlocks)
	off := HeaderLen
	for i := 0; i < int(h.NumBlocks); i++ {
		copy(f[i][:], b[off:off+16])
		x[i] = b[off+16]
		off += LeftBlockLen
	}
	return Left{Header: h, F: f, X: x}, nil
}

// Equal reports whether l and other encode the same header and blocks.
func (l Left) Equal(other Left) bool {
	if l.Header != other.Header || len(l.F) != len(other.F) {
		return false
	}
	for i := range l.F {
		if l.F[i] != other.F[i] || l.X[i] != other.X[i] {
			return false
		}
	}
	return true
}
