// Copyright (c) 2024-2025 Six After, Inc.
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ore

import (
	"testing"

	"github.com/cipherstash/ore-go/oreuint"
)

func benchmarkCipher(b *testing.B) *Cipher {
	b.Helper()
	c, err := New(testK1, testK2)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	return c
}

// BenchmarkEncryptLeft measures the cost of left-only encryption, the
// query-time hot path.
func BenchmarkEncryptLeft(b *testing.B) {
	c := benchmarkCipher(b)
	pt := oreuint.Uint64(123456789)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.EncryptLeft(pt); err != nil {
			b.Fatalf("EncryptLeft returned an unexpected error: %v", err)
		}
	}
}

// BenchmarkEncrypt measures the cost of full (left+right) encryption, the
// write-path hot path.
func BenchmarkEncrypt(b *testing.B) {
	c := benchmarkCipher(b)
	pt := oreuint.Uint64(123456789)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encrypt(pt); err != nil {
			b.Fatalf("Encrypt returned an unexpected error: %v", err)
		}
	}
}

// BenchmarkEncryptVaryingWidths benchmarks Encrypt across the integer
// widths the oreuint package exposes.
func BenchmarkEncryptVaryingWidths(b *testing.B) {
	c := benchmarkCipher(b)

	widths := []struct {
		name string
		pt   PlainText
	}{
		{"Uint32", oreuint.Uint32(1000)},
		{"Uint64", oreuint.Uint64(1000)},
	}

	for _, w := range widths {
		w := w
		b.Run(w.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := c.Encrypt(w.pt); err != nil {
					b.Fatalf("Encrypt returned an unexpected error: %v", err)
				}
			}
		})
	}
}

// BenchmarkCompare measures comparison throughput, which is pure CPU work
// on already-encrypted ciphertexts.
func BenchmarkCompare(b *testing.B) {
	c := benchmarkCipher(b)

	left, err := c.EncryptLeft(oreuint.Uint64(1000))
	if err != nil {
		b.Fatalf("EncryptLeft: %v", err)
	}
	right, err := c.Encrypt(oreuint.Uint64(2000))
	if err != nil {
		b.Fatalf("Encrypt: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compare(left, right); err != nil {
			b.Fatalf("Compare returned an unexpected error: %v", err)
		}
	}
}

// BenchmarkCompareRawSlices measures comparison throughput directly on
// serialized bytes, the path used when ciphertexts arrive from storage.
func BenchmarkCompareRawSlices(b *testing.B) {
	c := benchmarkCipher(b)

	left, err := c.EncryptLeft(oreuint.Uint64(1000))
	if err != nil {
		b.Fatalf("EncryptLeft: %v", err)
	}
	right, err := c.Encrypt(oreuint.Uint64(2000))
	if err != nil {
		b.Fatalf("Encrypt: %v", err)
	}
	lb, err := left.MarshalBinary()
	if err != nil {
		b.Fatalf("MarshalBinary: %v", err)
	}
	rb, err := right.MarshalBinary()
	if err != nil {
		b.Fatalf("MarshalBinary: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := CompareRawSlices(lb, rb); err != nil {
			b.Fatalf("CompareRawSlices returned an unexpected error: %v", err)
		}
	}
}
