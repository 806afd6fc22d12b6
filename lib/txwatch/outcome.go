// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package txwatch

import (
	"context"
	"fmt"

	"github.com/ChainSafe/subadmin/lib/extrinsic"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
)

// TxOutcome is the final outcome of a submitted extrinsic.
type TxOutcome[E any] struct {
	Dropped bool
	// Event is the first event of type E emitted by the extrinsic,
	// and is nil if there is none or if the extrinsic was dropped.
	Event *E
}

// WaitForSuccess waits for the extrinsic to be included in a block and
// for its dispatch to succeed, and decodes the first event emitted by the
// extrinsic matching the decoder. A dropped extrinsic is not an error and
// results in a dropped outcome.
func WaitForSuccess[E any](ctx context.Context, progress *TxProgress,
	decoder EventDecoder[E]) (outcome TxOutcome[E], err error) {
	state, err := WaitForInBlock(ctx, progress)
	if err != nil {
		return outcome, err
	}

	if state.Dropped {
		return TxOutcome[E]{Dropped: true}, nil
	}

	events, err := state.InBlock.WaitForSuccess(ctx)
	if err != nil {
		return outcome, err
	}

	event, err := FindFirst(events, decoder)
	if err != nil {
		return outcome, err
	}

	return TxOutcome[E]{Event: event}, nil
}

// SendExtrinsic signs and submits the call and waits for it to succeed.
func SendExtrinsic(ctx context.Context, submitter Submitter,
	call *extrinsic.Call, signer signature.KeyringPair) error {
	logger.Debugf("submitting %s signed by %s", call, signer.Address)

	progress, err := submitter.SubmitAndWatch(ctx, call, signer)
	if err != nil {
		return fmt.Errorf("submitting %s: %w", call.Method(), err)
	}

	outcome, err := WaitForSuccess[DontCare](ctx, progress, DontCare{})
	if err != nil {
		return err
	}

	if outcome.Dropped {
		logger.Warnf("extrinsic %s was dropped", call.Method())
		return nil
	}

	logger.Infof("extrinsic %s succeeded", call.Method())
	return nil
}
