// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ciphertext

// Combined is a ciphertext carrying both the left and right halves, so
// that either role (query-time comparand or at-rest record) is available
// from a single encoding.
type Combined struct {
	Header     Header
	Nonce      [NonceLen]byte
	F          [][16]byte
	X          []byte
	Indicators [][RightBlockLen]byte
}

// NewCombined builds a Combined ciphertext from its left and right parts.
// All three slices must share the same length.
func NewCombined(version uint16, scheme uint8, nonce [NonceLen]byte, f [][16]byte, x []byte, indicators [][RightBlockLen]byte) Combined {
	return Combined{
		Header: Header{
			Version:   version,
			Scheme:    scheme,
			Kind:      KindCombined,
			NumBlocks: uint16(len(f)),
		},
		Nonce:      nonce,
		F:          f,
		X:          x,
		Indicators: indicators,
	}
}

// MarshalBinary encodes c per the wire format: Header, Nonce, then
// NumBlocks interleaved (LeftBlock, RightBlock) pairs.
func (c Combined) MarshalBinary() ([]byte, error) {
	n := int(c.Header.NumBlocks)
	out := make([]byte, 0, HeaderLen+NonceLen+n*(LeftBlockLen+RightBlockLen))
	out = c.Header.AppendTo(out)
	out = append(out, c.Nonce[:]...)
	for i := 0; i < n; i++ {
		out = append(out, c.F[i][:]...)
		out = append(out, c.X[i])
		out = append(out, c.Indicators[i][:]...)
	}
	return out, nil
}

// ParseCombined decodes a Combined ciphertext from b.
func ParseCombined(b []byte) (Combined, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return Combined{}, err
	}
	if h.Kind != KindCombined {
		return Combined{}, ErrParseHeader
	}
	n := int(h.NumBlocks)
	want := HeaderLen + NonceLen + n*(LeftBlockLen+RightBlockLen)
	if len(b) != want {
		return Combined{}, ErrParseLength
	}
	var nonce [NonceLen]byte
	copy(nonce[:], b[HeaderLen:HeaderLen+NonceLen])

	f := make([][16]byte, n)
	x := make([]byte, n)
	indicators := make([][RightBlockLen]byte, n)
	off := HeaderLen + NonceLen
	for i := 0; i < n; i++ {
		copy(f[i][:], b[off:off+16])
		x[i] = b[off+16]
		off += LeftBlockLen
		copy(indicators[i][:], b[off:off+RightBlockLen])
		off += RightBlockLen
	}
	return Combined{Header: h, Nonce: nonce, F: f, X: x, Indicators: indicators}, nil
}

// Left extracts the left half of c as a standalone Left ciphertext.
func (c Combined) Left() Left {
	return NewLeft(c.Header.Version, c.Header.Scheme, c.F, c.X)
}

// Right extracts the right half of c as a standalone Right ciphertext.
func (c Combined) Right() Right {
	return NewRight(c.Header.Version, c.Header.Scheme, c.Nonce, c.Indicators)
}

// Equal reports whether c and other encode the same header, nonce, and
// blocks.
func (c Combined) Equal(other Combined) bool {
	if c.Header != other.Header || c.Nonce != other.Nonce || len(c.F) != len(other.F) {
		return false
	}
	for i := range c.F {
		if c.F[i] != other.F[i] || c.X[i] != other.X[i] || c.Indicators[i] != other.Indicators[i] {
			return false
		}
	}
	return true
}
