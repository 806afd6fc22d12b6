// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"errors"
	"fmt"
)

// HashLength is the length in bytes of a Hash.
const HashLength = 32

// ErrHashLength is returned when a hex string does not decode to 32 bytes.
var ErrHashLength = errors.New("hash is not 32 bytes long")

// Hash is a 32 bytes block or storage hash.
type Hash [HashLength]byte

// String returns the 0x prefixed hex string of the hash.
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// HexToHash turns a 0x prefixed hex string of 32 bytes into a Hash.
func HexToHash(in string) (h Hash, err error) {
	b, err := HexToBytes(in)
	if err != nil {
		return h, err
	}
	if len(b) != HashLength {
		return h, fmt.Errorf("%w: %d bytes", ErrHashLength, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// MustHexToHash is HexToHash panicking on error.
func MustHexToHash(in string) Hash {
	h, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return h
}
