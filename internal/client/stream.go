// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/ChainSafe/subadmin/lib/common"
	"github.com/ChainSafe/subadmin/lib/txwatch"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// statusStream reads extrinsic statuses from a node subscription.
type statusStream struct {
	statuses    <-chan types.ExtrinsicStatus
	errs        <-chan error
	unsubscribe func()
	endErr      error
	ended       bool
}

func newStatusStream(statuses <-chan types.ExtrinsicStatus, errs <-chan error,
	unsubscribe func()) *statusStream {
	return &statusStream{
		statuses:    statuses,
		errs:        errs,
		unsubscribe: unsubscribe,
	}
}

// Next returns the next status. It returns io.EOF once a final status was
// returned or if the subscription was closed by the node. Statuses received
// before the subscription ended are returned first.
func (s *statusStream) Next(ctx context.Context) (status txwatch.Status, err error) {
	if s.ended {
		return status, io.EOF
	}

	if s.endErr != nil {
		select {
		case extrinsicStatus, ok := <-s.statuses:
			if ok {
				return s.convert(extrinsicStatus), nil
			}
		default:
		}
		s.ended = true
		return status, s.endErr
	}

	select {
	case <-ctx.Done():
		return status, ctx.Err()
	case err, ok := <-s.errs:
		s.endErr = io.EOF
		if ok && err != nil {
			s.endErr = fmt.Errorf("subscription error: %w", err)
		}
		return s.Next(ctx)
	case extrinsicStatus, ok := <-s.statuses:
		if !ok {
			s.ended = true
			return status, io.EOF
		}
		return s.convert(extrinsicStatus), nil
	}
}

func (s *statusStream) convert(extrinsicStatus types.ExtrinsicStatus) txwatch.Status {
	status, final := convertStatus(extrinsicStatus)
	s.ended = final
	return status
}

// Close unsubscribes from the node.
func (s *statusStream) Close() {
	s.ended = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// convertStatus converts the node extrinsic status, and returns true
// as final if the node sends no further status after it.
func convertStatus(extrinsicStatus types.ExtrinsicStatus) (status txwatch.Status, final bool) {
	switch {
	case extrinsicStatus.IsInBlock:
		return txwatch.Status{
			Kind:        txwatch.StatusInBlock,
			Block:       common.Hash(extrinsicStatus.AsInBlock),
			Description: "in block",
		}, false
	case extrinsicStatus.IsDropped:
		return txwatch.Status{Kind: txwatch.StatusDropped, Description: "dropped"}, true
	case extrinsicStatus.IsFuture:
		return otherStatus("future"), false
	case extrinsicStatus.IsReady:
		return otherStatus("ready"), false
	case extrinsicStatus.IsBroadcast:
		return otherStatus("broadcast"), false
	case extrinsicStatus.IsRetracted:
		return otherStatus("retracted"), false
	case extrinsicStatus.IsFinalityTimeout:
		return otherStatus("finality timeout"), true
	case extrinsicStatus.IsFinalized:
		return otherStatus("finalized"), true
	case extrinsicStatus.IsUsurped:
		return otherStatus("usurped"), true
	case extrinsicStatus.IsInvalid:
		return otherStatus("invalid"), true
	default:
		return otherStatus("unknown"), false
	}
}

func otherStatus(description string) txwatch.Status {
	return txwatch.Status{Kind: txwatch.StatusOther, Description: description}
}
