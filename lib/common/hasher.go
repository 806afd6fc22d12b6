// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, err
	}

	_, err = h.Write(in)
	if err != nil {
		return [32]byte{}, err
	}

	hash := h.Sum(nil)
	var buf = [32]byte{}
	copy(buf[:], hash)
	return buf, nil
}

// MustBlake2bHash returns the 256-bit blake2b hash of the input data. It panics if it fails to hash.
func MustBlake2bHash(in []byte) Hash {
	hash, err := Blake2bHash(in)
	if err != nil {
		panic(err)
	}

	return hash
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) ([]byte, error) {
	both := make([]byte, 0, 16)
	for seed := uint64(0); seed < 2; seed++ {
		hasher := xxhash.NewS64(seed)
		_, err := hasher.Write(msg)
		if err != nil {
			return nil, err
		}

		hash := make([]byte, 8)
		binary.LittleEndian.PutUint64(hash, hasher.Sum64())
		both = append(both, hash...)
	}

	return both, nil
}

// StoragePrefix returns the storage key prefix shared by every entry
// of a storage item: twox128(module) ++ twox128(name).
func StoragePrefix(module, name string) ([]byte, error) {
	moduleHash, err := Twox128Hash([]byte(module))
	if err != nil {
		return nil, err
	}

	nameHash, err := Twox128Hash([]byte(name))
	if err != nil {
		return nil, err
	}

	return append(moduleHash, nameHash...), nil
}

// Blake2b128Concat returns the 128-bit blake2b hash of the input data
// followed by the input data, as used to key storage maps.
func Blake2b128Concat(in []byte) ([]byte, error) {
	const size = 16
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, err
	}

	_, err = h.Write(in)
	if err != nil {
		return nil, err
	}

	return append(h.Sum(nil), in...), nil
}
