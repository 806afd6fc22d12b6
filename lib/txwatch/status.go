// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package txwatch

import (
	"github.com/ChainSafe/subadmin/lib/common"
)

// StatusKind is the kind of an extrinsic status notification.
type StatusKind uint8

const (
	// StatusOther is any status not deciding the fate of the extrinsic,
	// such as ready or broadcast.
	StatusOther StatusKind = iota
	// StatusInBlock is sent once the extrinsic is included in a block.
	StatusInBlock
	// StatusDropped is sent if the extrinsic is dropped from the pool.
	StatusDropped
)

func (k StatusKind) String() string {
	switch k {
	case StatusInBlock:
		return "in block"
	case StatusDropped:
		return "dropped"
	default:
		return "other"
	}
}

// Status is one notification of an extrinsic status subscription.
type Status struct {
	Kind StatusKind
	// Block is the hash of the block including the extrinsic, for
	// the StatusInBlock kind only.
	Block common.Hash
	// Description is the status name as sent by the node, for logging.
	Description string
}

func (s Status) String() string {
	switch {
	case s.Kind == StatusInBlock:
		return "in block " + s.Block.String()
	case s.Description != "":
		return s.Description
	default:
		return s.Kind.String()
	}
}
