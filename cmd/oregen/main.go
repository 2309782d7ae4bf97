// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Command oregen is a small demonstration CLI for the ore package. It
// encrypts a single uint64 value and, given a second value, reports their
// order relationship without ever printing a plaintext alongside its
// ciphertext.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/cipherstash/ore-go"
	"github.com/cipherstash/ore-go/oreuint"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "oregen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("oregen", flag.ExitOnError)
	k1Hex := fs.String("k1", "", "16-byte key 1, hex encoded")
	k2Hex := fs.String("k2", "", "16-byte key 2, hex encoded")
	value := fs.Uint64("value", 0, "uint64 plaintext to encrypt")
	compareTo := fs.Uint64("compare", 0, "second uint64 plaintext to compare against")
	doCompare := fs.Bool("do-compare", false, "compare -value against -compare instead of just encrypting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	k1, err := decodeKey(*k1Hex)
	if err != nil {
		return fmt.Errorf("k1: %w", err)
	}
	k2, err := decodeKey(*k2Hex)
	if err != nil {
		return fmt.Errorf("k2: %w", err)
	}

	cipher, err := ore.New(k1, k2)
	if err != nil {
		return err
	}

	if !*doCompare {
		ct, err := cipher.Encrypt(oreuint.Uint64(*value))
		if err != nil {
			return err
		}
		b, err := ct.MarshalBinary()
		if err != nil {
			return err
		}
		fmt.Println(base64.StdEncoding.EncodeToString(b))
		return nil
	}

	a, err := cipher.EncryptLeft(oreuint.Uint64(*value))
	if err != nil {
		return err
	}
	b, err := cipher.Encrypt(oreuint.Uint64(*compareTo))
	if err != nil {
		return err
	}
	result, err := ore.Compare(a, b)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func decodeKey(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("required")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != 16 {
		return nil, fmt.Errorf("must decode to 16 bytes, got %d", len(b))
	}
	return b, nil
}
