// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ciphertext

// Right is a ciphertext carrying the blocks needed at rest: a random
// nonce, shared by every block in this ciphertext, and per-block 256-bit
// indicator vectors.
type Right struct {
	Header     Header
	Nonce      [NonceLen]byte
	Indicators [][RightBlockLen]byte
}

// NewRight builds a Right ciphertext from a nonce and per-block indicator
// vectors.
func NewRight(version uint16, scheme uint8, nonce [NonceLen]byte, indicators [][RightBlockLen]byte) Right {
	return Right{
		Header: Header{
			Version:   version,
			Scheme:    scheme,
			Kind:      KindRight,
			NumBlocks: uint16(len(indicators)),
		},
		Nonce:      nonce,
		Indicators: indicators,
	}
}

// MarshalBinary encodes r per the wire format: Header, Nonce, then
// NumBlocks 32-byte indicator vectors.
func (r Right) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, HeaderLen+NonceLen+int(r.Header.NumBlocks)*RightBlockLen)
	out = r.Header.AppendTo(out)
	out = append(out, r.Nonce[:]...)
	for i := 0; i < int(r.Header.NumBlocks); i++ {
		out = append(out, r.Indicators[i][:]...)
	}
	return out, nil
}

// ParseRight decodes a Right ciphertext from b.
func ParseRight(b []byte) (Right, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return Right{}, err
	}
	if h.Kind != KindRight {
		return Right{}, ErrParseHeader
	}
	want := HeaderLen + NonceLen + int(h.NumBlocks)*RightBlockLen
	if len(b) != want {
		return Right{}, ErrParseLength
	}
	var nonce [NonceLen]byte
	copy(nonce[:], b[HeaderLen:HeaderLen+NonceLen])
	indicators := make([][RightBlockLen]byte, h.NumBlocks)
	off := HeaderLen + NonceLen
	for i := 0; i < int(h.NumBlocks); i++ {
		copy(indicators[i][:], b[off:off+RightBlockLen])
		off += RightBlockLen
	}
	return Right{Header: h, Nonce: nonce, Indicators: indicators}, nil
}
