// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ciphertext

import "testing"

// FuzzParseLeft ensures ParseLeft never panics on arbitrary input and only
// ever succeeds when the input is long enough for its declared block count.
func FuzzParseLeft(f *testing.F) {
	h := Header{Version: 1, Scheme: 1, Kind: KindLeft, NumBlocks: 4}
	seed := h.AppendTo(nil)
	for i := 0; i < 4*LeftBlockLen; i++ {
		seed = append(seed, 0)
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0, 1})

	f.Fuzz(func(t *testing.T, b []byte) {
		ct, err := ParseLeft(b)
		if err != nil {
			return
		}
		if int(ct.Header.NumBlocks) != len(ct.F) || int(ct.Header.NumBlocks) != len(ct.X) {
			t.Fatalf("parsed block count does not match slice lengths")
		}
		if _, err := ct.MarshalBinary(); err != nil {
			t.Fatalf("MarshalBinary of a successfully parsed value failed: %v", err)
		}
	})
}

// FuzzParseCombined ensures ParseCombined never panics and that a
// successful parse round-trips through MarshalBinary.
func FuzzParseCombined(f *testing.F) {
	h := Header{Version: 1, Scheme: 1, Kind: KindCombined, NumBlocks: 2}
	seed := h.AppendTo(nil)
	seed = append(seed, make([]byte, NonceLen)...)
	seed = append(seed, make([]byte, 2*(LeftBlockLen+RightBlockLen))...)
	f.Add(seed)
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, b []byte) {
		ct, err := ParseCombined(b)
		if err != nil {
			return
		}
		out, err := ct.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary of a successfully parsed value failed: %v", err)
		}
		if len(out) != len(b) {
			t.Fatalf("round-tripped length %d, want %d", len(out), len(b))
		}
	})
}

// FuzzParseHeader ensures ParseHeader never panics on arbitrary input.
func FuzzParseHeader(f *testing.F) {
	f.Add([]byte{0, 1, 1, 2, 0, 4})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, b []byte) {
		_, _ = ParseHeader(b)
	})
}
