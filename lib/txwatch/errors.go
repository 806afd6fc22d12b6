// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package txwatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/subadmin/lib/common"
)

var (
	// ErrSubscriptionEnded is returned when the status subscription ends
	// before the extrinsic is included in a block or dropped.
	ErrSubscriptionEnded = errors.New("tx status subscription ended")
	// ErrNoExtrinsicResult is returned when the events of an included extrinsic
	// hold neither a success nor a failure event.
	ErrNoExtrinsicResult = errors.New("no extrinsic success or failure event found")
)

// ExecutionFailedError is returned when an extrinsic is included in a block
// but its dispatch failed.
type ExecutionFailedError struct {
	Block common.Hash
	// Fields are the fields of the System.ExtrinsicFailed event, holding
	// the dispatch error.
	Fields []Field
}

func (e *ExecutionFailedError) Error() string {
	fields := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		fields[i] = field.String()
	}
	return fmt.Sprintf("extrinsic failed in block %s: %s",
		e.Block, strings.Join(fields, ", "))
}
