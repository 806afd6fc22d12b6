// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

var (
	// CodeKey is the key where runtime code is stored in the trie
	CodeKey = []byte(":code")

	// ZstdWasmPrefix prefixes a runtime blob compressed with zstd.
	// ref: https://github.com/paritytech/substrate/blob/master/primitives/maybe-compressed-blob/src/lib.rs
	ZstdWasmPrefix = []byte{82, 188, 83, 118, 70, 219, 142, 5}
)
