// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package txwatch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ChainSafe/subadmin/internal/log"
	"github.com/ChainSafe/subadmin/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "txwatch"))

// TxProgress follows a submitted extrinsic.
type TxProgress struct {
	stream       StatusStream
	results      ExecutionResults
	extrinsicHex string
}

// NewTxProgress returns the progress of the extrinsic given, hex encoded,
// reading its status from the stream given.
func NewTxProgress(stream StatusStream, results ExecutionResults, extrinsicHex string) *TxProgress {
	return &TxProgress{
		stream:       stream,
		results:      results,
		extrinsicHex: extrinsicHex,
	}
}

// TxState is the state of an extrinsic once its status subscription
// reported it either in a block or dropped.
type TxState struct {
	Dropped bool
	InBlock *TxInBlock
}

// TxInBlock is an extrinsic included in a block.
type TxInBlock struct {
	BlockHash    common.Hash
	extrinsicHex string
	results      ExecutionResults
}

// WaitForInBlock reads statuses in order until the extrinsic is included
// in a block or dropped. Other statuses are ignored. The status stream is
// closed before returning.
func WaitForInBlock(ctx context.Context, progress *TxProgress) (state TxState, err error) {
	defer progress.stream.Close()

	for {
		status, err := progress.stream.Next(ctx)
		if errors.Is(err, io.EOF) {
			return state, ErrSubscriptionEnded
		} else if err != nil {
			return state, fmt.Errorf("reading extrinsic status: %w", err)
		}

		switch status.Kind {
		case StatusInBlock:
			logger.Debugf("extrinsic included in block %s", status.Block)
			return TxState{
				InBlock: &TxInBlock{
					BlockHash:    status.Block,
					extrinsicHex: progress.extrinsicHex,
					results:      progress.results,
				},
			}, nil
		case StatusDropped:
			return TxState{Dropped: true}, nil
		default:
			logger.Tracef("extrinsic status: %s", status)
		}
	}
}

// WaitForSuccess fetches the events of the extrinsic in the block and
// returns them if the extrinsic dispatch succeeded. It returns an
// *ExecutionFailedError if the dispatch failed.
func (b *TxInBlock) WaitForSuccess(ctx context.Context) (events []Event, err error) {
	events, err = b.results.ExtrinsicEvents(ctx, b.BlockHash, b.extrinsicHex)
	if err != nil {
		return nil, fmt.Errorf("fetching extrinsic events in block %s: %w", b.BlockHash, err)
	}

	succeeded := false
	for _, event := range events {
		switch {
		case event.Is(systemPallet, "ExtrinsicFailed"):
			return nil, &ExecutionFailedError{
				Block:  b.BlockHash,
				Fields: event.Fields,
			}
		case event.Is(systemPallet, "ExtrinsicSuccess"):
			succeeded = true
		}
	}

	if !succeeded {
		return nil, fmt.Errorf("%w: in block %s", ErrNoExtrinsicResult, b.BlockHash)
	}

	return events, nil
}
