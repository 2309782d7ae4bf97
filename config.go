// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ore

import (
	"io"

	ctrdrbg "github.com/sixafter/aes-ctr-drbg"
	chacha "github.com/sixafter/prng-chacha"
)

// defaultVersion is the wire-format version written into every header
// produced by a cipher constructed without WithVersion.
const defaultVersion uint16 = 1

// defaultScheme identifies the Lewi-Wu 2-bit Block-ORE construction this
// package implements. A future scheme revision would take a new id.
const defaultScheme uint8 = 1

// Config holds the resolved, immutable settings a Cipher is built from.
// It is constructed by applying a chain of Option functions over a set of
// defaults and is never mutated after New returns.
type Config struct {
	// RandReader supplies the fresh 16-byte nonces drawn once per Encrypt
	// call. It defaults to the package-level aes-ctr-drbg Reader, a
	// pooled, FIPS-aligned AES-CTR DRBG seeded from OS entropy.
	RandReader io.Reader

	// Version is written into the header of every ciphertext this cipher
	// produces. Two ciphertexts compare only if their versions match.
	Version uint16

	// Scheme is written into the header's scheme byte. Reserved for
	// future constructions; this package always produces Combined/Left
	// ciphertexts under the Lewi-Wu 2-bit indicator scheme.
	Scheme uint8
}

// Option configures a Config. Options are applied in the order passed to
// New, so a later option overrides an earlier one that touches the same
// field.
type Option func(*Config)

// WithRandReader overrides the source of nonce randomness. r must not be
// nil; New returns ErrNilRandReader otherwise.
//
// This is how a caller swaps in github.com/sixafter/prng-chacha or any
// other io.Reader-shaped CSPRNG in place of the default aes-ctr-drbg
// source.
func WithRandReader(r io.Reader) Option {
	return func(c *Config) {
		c.RandReader = r
	}
}

// WithChaChaRand switches the nonce source from the default aes-ctr-drbg
// reader to github.com/sixafter/prng-chacha's pooled ChaCha8 reader.
// Equivalent to WithRandReader(chacha.Reader) but gives the ChaCha-based
// source a name callers can reach for directly.
func WithChaChaRand() Option {
	return func(c *Config) {
		c.RandReader = chacha.Reader
	}
}

// WithVersion overrides the header version stamped into ciphertexts
// produced by this cipher.
func WithVersion(v uint16) Option {
	return func(c *Config) {
		c.Version = v
	}
}

// WithScheme overrides the header scheme id stamped into ciphertexts
// produced by this cipher.
func WithScheme(s uint8) Option {
	return func(c *Config) {
		c.Scheme = s
	}
}

// defaultConfig returns a Config populated with this package's defaults,
// prior to any Option being applied.
func defaultConfig() Config {
	return Config{
		RandReader: ctrdrbg.Reader,
		Version:    defaultVersion,
		Scheme:     defaultScheme,
	}
}

// buildConfig applies opts over defaultConfig and validates the result.
func buildConfig(opts []Option) (Config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.RandReader == nil {
		return Config{}, ErrNilRandReader
	}
	return cfg, nil
}
