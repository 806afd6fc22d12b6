// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package ss58 encodes and decodes SS58 addresses: base58 strings carrying a
// network identifier, a 32 byte public key and a blake2b checksum.
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// PublicKeyLength is the length of the account public keys handled.
	PublicKeyLength = 32
	// SubstratePrefix is the generic Substrate network identifier.
	SubstratePrefix uint16 = 42

	checksumLength = 2
	// maxSimplePrefix is the largest identifier encoded on a single byte.
	maxSimplePrefix = 63
	maxPrefix       = 16383
)

var checksumPreimagePrefix = []byte("SS58PRE")

var (
	// ErrInvalidAddress is returned when an address cannot be decoded.
	ErrInvalidAddress = errors.New("invalid SS58 address")
	// ErrChecksumMismatch is wrapped with ErrInvalidAddress when the
	// address checksum does not match its content.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrPrefixMismatch is returned when an address is encoded for
	// another network than the one expected.
	ErrPrefixMismatch = errors.New("network prefix mismatch")
	// ErrPrefixOutOfRange is returned for a network prefix above 16383.
	ErrPrefixOutOfRange = errors.New("network prefix out of range")
	// ErrPublicKeyLength is returned when encoding a public key not 32 bytes long.
	ErrPublicKeyLength = errors.New("public key must be 32 bytes")

	errUnsupportedLength = errors.New("unsupported decoded length")
)

// Encode encodes the public key with the network prefix given.
func Encode(publicKey []byte, prefix uint16) (address string, err error) {
	if len(publicKey) != PublicKeyLength {
		return "", fmt.Errorf("%w: got %d bytes", ErrPublicKeyLength, len(publicKey))
	}

	prefixBytes, err := encodePrefix(prefix)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(prefixBytes)+PublicKeyLength+checksumLength)
	payload = append(payload, prefixBytes...)
	payload = append(payload, publicKey...)

	checksum := checksum(payload)
	payload = append(payload, checksum[:checksumLength]...)

	return base58.Encode(payload), nil
}

// Decode decodes an address into its public key and network prefix.
func Decode(address string) (publicKey []byte, prefix uint16, err error) {
	data := base58.Decode(address)
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: not base58", ErrInvalidAddress)
	}

	var prefixLength int
	switch {
	case data[0] <= maxSimplePrefix:
		prefixLength = 1
		prefix = uint16(data[0])
	case data[0] < 0x80 && len(data) > 1:
		prefixLength = 2
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0b0011_1111
		prefix = uint16(lower) | uint16(upper)<<8
	default:
		return nil, 0, fmt.Errorf("%w: invalid prefix byte 0x%x", ErrInvalidAddress, data[0])
	}

	if len(data) != prefixLength+PublicKeyLength+checksumLength {
		return nil, 0, fmt.Errorf("%w: %w: %d bytes",
			ErrInvalidAddress, errUnsupportedLength, len(data))
	}

	body := data[:len(data)-checksumLength]
	expected := checksum(body)
	if !bytes.Equal(expected[:checksumLength], data[len(body):]) {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidAddress, ErrChecksumMismatch)
	}

	publicKey = make([]byte, PublicKeyLength)
	copy(publicKey, body[prefixLength:])
	return publicKey, prefix, nil
}

// DecodeWithPrefix decodes the address and checks its network prefix
// matches the one given.
func DecodeWithPrefix(address string, expectedPrefix uint16) (publicKey []byte, err error) {
	publicKey, prefix, err := Decode(address)
	if err != nil {
		return nil, err
	}

	if prefix != expectedPrefix {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrPrefixMismatch, expectedPrefix, prefix)
	}

	return publicKey, nil
}

func encodePrefix(prefix uint16) ([]byte, error) {
	switch {
	case prefix <= maxSimplePrefix:
		return []byte{byte(prefix)}, nil
	case prefix <= maxPrefix:
		first := byte((prefix&0b0000_0000_1111_1100)>>2) | 0b0100_0000
		second := byte(prefix>>8) | byte((prefix&0b0000_0000_0000_0011)<<6)
		return []byte{first, second}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrPrefixOutOfRange, prefix)
	}
}

func checksum(body []byte) [blake2b.Size]byte {
	preimage := make([]byte, 0, len(checksumPreimagePrefix)+len(body))
	preimage = append(preimage, checksumPreimagePrefix...)
	preimage = append(preimage, body...)
	return blake2b.Sum512(preimage)
}
