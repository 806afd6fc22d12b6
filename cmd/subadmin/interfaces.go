// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"

	"github.com/ChainSafe/subadmin/lib/common"
	"github.com/ChainSafe/subadmin/lib/txwatch"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . ChainAPI
//go:generate mockgen -destination=mocks_txwatch_test.go -package=$GOPACKAGE github.com/ChainSafe/subadmin/lib/txwatch StatusStream,ExecutionResults

// ChainAPI is the node API used by the commands.
type ChainAPI interface {
	txwatch.Submitter
	HeadHash(ctx context.Context) (common.Hash, error)
	RuntimeVersion(ctx context.Context) (*types.RuntimeVersion, error)
	RuntimeCode(ctx context.Context) ([]byte, error)
	CountStorageItems(ctx context.Context, module, name string, pageSize uint32) (count uint64, err error)
}
