// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/subadmin/internal/log"
	"github.com/ChainSafe/subadmin/lib/common"
	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "client"))

// ErrNoRuntimeCode is returned when the node holds no runtime code in storage.
var ErrNoRuntimeCode = errors.New("no runtime code found")

// Client is a client to a Substrate node.
type Client struct {
	api     *gsrpc.SubstrateAPI
	rpc     RPCCaller
	storage StorageGetter
	author  ExtrinsicAuthor

	metadata  *types.Metadata
	retriever EventRetriever
}

// New connects to the node at the websocket or http endpoint given.
func New(ctx context.Context, endpoint string) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debugf("connecting to %s", endpoint)
	api, err := gsrpc.NewSubstrateAPI(endpoint)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", endpoint, err)
	}

	return &Client{
		api:     api,
		rpc:     api.Client,
		storage: api.RPC.State,
		author:  nodeAuthor{api: api},
	}, nil
}

// Metadata returns the latest runtime metadata, fetched once.
func (c *Client) Metadata(ctx context.Context) (*types.Metadata, error) {
	if c.metadata != nil {
		return c.metadata, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta, err := c.api.RPC.State.GetMetadataLatest()
	if err != nil {
		return nil, fmt.Errorf("getting latest metadata: %w", err)
	}
	c.metadata = meta
	return meta, nil
}

// HeadHash returns the hash of the best block.
func (c *Client) HeadHash(ctx context.Context) (common.Hash, error) {
	if err := ctx.Err(); err != nil {
		return common.Hash{}, err
	}

	hash, err := c.api.RPC.Chain.GetBlockHashLatest()
	if err != nil {
		return common.Hash{}, fmt.Errorf("getting head block hash: %w", err)
	}
	return common.Hash(hash), nil
}

// GenesisHash returns the hash of block 0.
func (c *Client) GenesisHash(ctx context.Context) (common.Hash, error) {
	if err := ctx.Err(); err != nil {
		return common.Hash{}, err
	}

	hash, err := c.api.RPC.Chain.GetBlockHash(0)
	if err != nil {
		return common.Hash{}, fmt.Errorf("getting genesis block hash: %w", err)
	}
	return common.Hash(hash), nil
}

// RuntimeVersion returns the runtime version at the best block.
func (c *Client) RuntimeVersion(ctx context.Context) (*types.RuntimeVersion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	version, err := c.api.RPC.State.GetRuntimeVersionLatest()
	if err != nil {
		return nil, fmt.Errorf("getting runtime version: %w", err)
	}
	return version, nil
}

// RuntimeCode returns the runtime wasm code stored at the best block, as is.
// It returns ErrNoRuntimeCode if there is none.
func (c *Client) RuntimeCode(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	code, err := c.api.RPC.State.GetStorageRawLatest(types.NewStorageKey(common.CodeKey))
	if err != nil {
		return nil, fmt.Errorf("getting runtime code: %w", err)
	}
	if code == nil || len(*code) == 0 {
		return nil, ErrNoRuntimeCode
	}
	return *code, nil
}
