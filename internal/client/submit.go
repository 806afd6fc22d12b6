// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"fmt"

	"github.com/ChainSafe/subadmin/lib/common"
	"github.com/ChainSafe/subadmin/lib/extrinsic"
	"github.com/ChainSafe/subadmin/lib/txwatch"
	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// signingParams are the chain values an extrinsic signature commits to.
type signingParams struct {
	genesisHash        common.Hash
	specVersion        types.U32
	transactionVersion types.U32
	nonce              uint32
}

// SubmitAndWatch resolves the call against the latest metadata, signs it with
// the signer and submits it, returning the progress of the extrinsic.
func (c *Client) SubmitAndWatch(ctx context.Context, call *extrinsic.Call,
	signer signature.KeyringPair) (*txwatch.TxProgress, error) {
	meta, err := c.Metadata(ctx)
	if err != nil {
		return nil, err
	}

	resolved, err := call.Resolve(meta)
	if err != nil {
		return nil, err
	}

	params, err := c.signingParams(ctx, signer.PublicKey)
	if err != nil {
		return nil, err
	}

	return c.submit(ctx, call.Method(), resolved, params, signer)
}

func (c *Client) signingParams(ctx context.Context, publicKey []byte) (params signingParams, err error) {
	params.genesisHash, err = c.GenesisHash(ctx)
	if err != nil {
		return params, err
	}

	version, err := c.RuntimeVersion(ctx)
	if err != nil {
		return params, err
	}
	params.specVersion = version.SpecVersion
	params.transactionVersion = version.TransactionVersion

	params.nonce, err = c.accountNonce(publicKey)
	if err != nil {
		return params, err
	}

	return params, nil
}

func (c *Client) submit(ctx context.Context, method string, call types.Call,
	params signingParams, signer signature.KeyringPair) (*txwatch.TxProgress, error) {
	ext, err := signExtrinsic(call, params, signer)
	if err != nil {
		return nil, err
	}
	logger.Debugf("signed %s with nonce %d by %s", method, params.nonce, signer.Address)

	extrinsicHex, err := codec.EncodeToHex(ext)
	if err != nil {
		return nil, fmt.Errorf("encoding extrinsic: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stream, err := c.author.SubmitAndWatch(ext)
	if err != nil {
		return nil, fmt.Errorf("submitting extrinsic: %w", err)
	}
	logger.Debugf("submitted extrinsic %s", method)

	return txwatch.NewTxProgress(stream, c, extrinsicHex), nil
}

// signExtrinsic signs the call as an immortal extrinsic.
func signExtrinsic(call types.Call, params signingParams,
	signer signature.KeyringPair) (ext types.Extrinsic, err error) {
	options := types.SignatureOptions{
		BlockHash:          types.Hash(params.genesisHash),
		Era:                types.ExtrinsicEra{IsMortalEra: false},
		GenesisHash:        types.Hash(params.genesisHash),
		Nonce:              types.NewUCompactFromUInt(uint64(params.nonce)),
		SpecVersion:        params.specVersion,
		Tip:                types.NewUCompactFromUInt(0),
		TransactionVersion: params.transactionVersion,
	}

	ext = types.NewExtrinsic(call)
	err = ext.Sign(signer, options)
	if err != nil {
		return ext, fmt.Errorf("signing extrinsic: %w", err)
	}
	return ext, nil
}

// accountNonce returns the nonce of the account from the System.Account
// storage. An account not found in storage has a nonce of 0.
func (c *Client) accountNonce(publicKey []byte) (nonce uint32, err error) {
	key, err := accountStorageKey(publicKey)
	if err != nil {
		return 0, fmt.Errorf("creating account storage key: %w", err)
	}

	var accountInfo types.AccountInfo
	ok, err := c.storage.GetStorageLatest(key, &accountInfo)
	if err != nil {
		return 0, fmt.Errorf("getting account info: %w", err)
	} else if !ok {
		return 0, nil
	}

	return uint32(accountInfo.Nonce), nil
}

// accountStorageKey returns the System.Account map key of the account.
func accountStorageKey(publicKey []byte) (types.StorageKey, error) {
	prefix, err := common.StoragePrefix("System", "Account")
	if err != nil {
		return nil, err
	}

	hashedKey, err := common.Blake2b128Concat(publicKey)
	if err != nil {
		return nil, err
	}

	return types.NewStorageKey(append(prefix, hashedKey...)), nil
}

// nodeAuthor submits extrinsics through the author RPC subscription.
type nodeAuthor struct {
	api *gsrpc.SubstrateAPI
}

func (a nodeAuthor) SubmitAndWatch(ext types.Extrinsic) (txwatch.StatusStream, error) {
	sub, err := a.api.RPC.Author.SubmitAndWatchExtrinsic(ext)
	if err != nil {
		return nil, err
	}
	return newStatusStream(sub.Chan(), sub.Err(), sub.Unsubscribe), nil
}
