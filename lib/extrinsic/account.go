// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package extrinsic

import (
	"fmt"

	"github.com/ChainSafe/subadmin/lib/crypto/ss58"
)

// AccountID is a 32 byte account identifier.
// It is encoded as raw bytes when used as a call argument.
type AccountID [32]byte

// Address is an account argument encoded as MultiAddress::Id.
type Address AccountID

// ParseAccountID decodes an SS58 address with any network prefix.
func ParseAccountID(address string) (id AccountID, err error) {
	publicKey, _, err := ss58.Decode(address)
	if err != nil {
		return id, fmt.Errorf("%s is not a valid SS58 Address: %w", address, err)
	}
	copy(id[:], publicKey)
	return id, nil
}

// ParseAccountIDWithPrefix decodes an SS58 address and checks its
// network prefix.
func ParseAccountIDWithPrefix(address string, prefix uint16) (id AccountID, err error) {
	publicKey, err := ss58.DecodeWithPrefix(address, prefix)
	if err != nil {
		return id, fmt.Errorf("%s is not a valid SS58 Address: %w", address, err)
	}
	copy(id[:], publicKey)
	return id, nil
}

// SS58 returns the address of the account for the network prefix given.
func (a AccountID) SS58(prefix uint16) string {
	address, err := ss58.Encode(a[:], prefix)
	if err != nil {
		return fmt.Sprintf("0x%x", a[:])
	}
	return address
}

// String returns the generic substrate address of the account.
func (a AccountID) String() string {
	return a.SS58(ss58.SubstratePrefix)
}

func (a Address) String() string {
	return AccountID(a).String()
}
