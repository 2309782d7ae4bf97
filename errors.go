// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ore

import (
	"errors"

	"github.com/cipherstash/ore-go/ciphertext"
)

// Sentinel errors returned by this package. Callers should compare against
// these with errors.Is rather than inspecting error strings, which carry no
// information about the secret inputs that produced them.
var (
	// ErrInvalidKeySize is returned by New when a supplied key is not
	// exactly 16 bytes.
	ErrInvalidKeySize = errors.New("ore: invalid key size")

	// ErrNilRandReader is returned by New when a nil io.Reader is supplied
	// via WithRandReader.
	ErrNilRandReader = errors.New("ore: nil random reader")

	// ErrRandSourceFailed is returned by Encrypt when the configured
	// random source cannot deliver a full nonce.
	ErrRandSourceFailed = errors.New("ore: random source failed to deliver a nonce")

	// ErrPlaintextLength is returned by EncryptLeft and Encrypt when a
	// plaintext is empty or longer than 15 bytes; the block-index
	// domain-separation byte requires the block count to fit in the same
	// 16-byte block it indexes.
	ErrPlaintextLength = errors.New("ore: plaintext must be between 1 and 15 bytes")

	// ErrParseHeader is returned by the ciphertext parsers when a byte
	// slice does not begin with a well-formed header.
	ErrParseHeader = ciphertext.ErrParseHeader

	// ErrParseLength is returned when a decoded ciphertext's length does
	// not match its header's declared block count.
	ErrParseLength = ciphertext.ErrParseLength

	// ErrIncompatibleHeaders is returned by Compare and CompareRawSlices
	// when the two ciphertexts' headers cannot be compared: mismatched
	// version, scheme, block count, or kind pairing.
	ErrIncompatibleHeaders = ciphertext.ErrIncompatibleHeaders
)
