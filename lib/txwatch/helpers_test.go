// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package txwatch

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/subadmin/lib/common"
	"github.com/golang/mock/gomock"
)

var (
	blockHash = common.Hash{1, 2, 3}

	ready     = Status{Kind: StatusOther, Description: "ready"}
	broadcast = Status{Kind: StatusOther, Description: "broadcast"}
	inBlock   = Status{Kind: StatusInBlock, Block: blockHash}
	dropped   = Status{Kind: StatusDropped, Description: "dropped"}

	extrinsicSuccess = Event{Pallet: "System", Name: "ExtrinsicSuccess"}
)

const extrinsicHex = "0x280403000b"

// newMockStream returns a status stream expecting exactly
// the statuses given to be read, in order, followed by
// endErr if it is not nil.
func newMockStream(ctrl *gomock.Controller, statuses []Status, endErr error) *MockStatusStream {
	stream := NewMockStatusStream(ctrl)
	calls := make([]*gomock.Call, 0, len(statuses)+1)
	for _, status := range statuses {
		calls = append(calls, stream.EXPECT().Next(gomock.Any()).Return(status, nil))
	}
	if endErr != nil {
		calls = append(calls, stream.EXPECT().Next(gomock.Any()).Return(Status{}, endErr))
	}
	gomock.InOrder(calls...)
	stream.EXPECT().Close()
	return stream
}

type authorityAdded struct {
	who string
}

type authorityAddedDecoder struct{}

func (authorityAddedDecoder) Pallet() string { return "Creditcoin" }
func (authorityAddedDecoder) Name() string   { return "AuthorityAdded" }

var errMissingField = errors.New("missing field")

func (authorityAddedDecoder) Decode(fields []Field) (event authorityAdded, err error) {
	if len(fields) == 0 {
		return event, fmt.Errorf("%w: who", errMissingField)
	}
	event.who = fmt.Sprint(fields[0].Value)
	return event, nil
}
