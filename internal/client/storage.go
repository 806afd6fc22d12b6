// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/subadmin/lib/common"
)

// DefaultPageSize is the number of storage keys requested per page.
const DefaultPageSize = 512

var errPageSizeZero = errors.New("page size cannot be zero")

// CountStorageItems counts the entries of the storage item of the module
// given at the best block, requesting keys by pages of pageSize keys.
func (c *Client) CountStorageItems(ctx context.Context, module, name string,
	pageSize uint32) (count uint64, err error) {
	prefix, err := common.StoragePrefix(module, name)
	if err != nil {
		return 0, fmt.Errorf("computing storage prefix: %w", err)
	}
	return countKeys(ctx, c.rpc, common.BytesToHex(prefix), pageSize)
}

func countKeys(ctx context.Context, caller RPCCaller, prefixHex string,
	pageSize uint32) (count uint64, err error) {
	if pageSize == 0 {
		return 0, errPageSizeZero
	}

	var startKey *string
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		var keys []string
		err = caller.Call(&keys, "state_getKeysPaged", prefixHex, pageSize, startKey)
		if err != nil {
			return count, fmt.Errorf("getting keys page after %d keys: %w", count, err)
		}

		count += uint64(len(keys))
		logger.Tracef("fetched %d keys with prefix %s", len(keys), prefixHex)

		if len(keys) < int(pageSize) {
			return count, nil
		}
		lastKey := keys[len(keys)-1]
		startKey = &lastKey
	}
}
