// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package txwatch

import (
	"context"

	"github.com/ChainSafe/subadmin/lib/common"
	"github.com/ChainSafe/subadmin/lib/extrinsic"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
)

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . StatusStream,ExecutionResults,Submitter

// StatusStream is the status subscription of a submitted extrinsic.
type StatusStream interface {
	// Next blocks until the next status is received. It returns io.EOF
	// once the subscription has ended.
	Next(ctx context.Context) (Status, error)
	Close()
}

// ExecutionResults fetches the events emitted by an extrinsic once it is
// included in a block.
type ExecutionResults interface {
	ExtrinsicEvents(ctx context.Context, blockHash common.Hash, extrinsicHex string) ([]Event, error)
}

// Submitter signs and submits calls, watching their status.
type Submitter interface {
	SubmitAndWatch(ctx context.Context, call *extrinsic.Call,
		signer signature.KeyringPair) (*TxProgress, error)
}
