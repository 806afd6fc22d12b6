// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"github.com/ChainSafe/subadmin/lib/txwatch"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/parser"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . RPCCaller,EventRetriever,StorageGetter,ExtrinsicAuthor

// RPCCaller makes raw JSON-RPC calls to the node.
type RPCCaller interface {
	Call(result interface{}, method string, args ...interface{}) error
}

// EventRetriever retrieves and decodes the events of a block.
type EventRetriever interface {
	GetEvents(blockHash types.Hash) ([]*parser.Event, error)
}

// StorageGetter decodes a storage value at the best block into target.
type StorageGetter interface {
	GetStorageLatest(key types.StorageKey, target interface{}) (ok bool, err error)
}

// ExtrinsicAuthor submits a signed extrinsic and watches its status.
type ExtrinsicAuthor interface {
	SubmitAndWatch(ext types.Extrinsic) (txwatch.StatusStream, error)
}
