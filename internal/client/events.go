// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/subadmin/lib/common"
	"github.com/ChainSafe/subadmin/lib/txwatch"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/parser"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/retriever"
	regstate "github.com/centrifuge/go-substrate-rpc-client/v4/registry/state"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// ErrExtrinsicNotFound is returned when the extrinsic is not part of the block.
var ErrExtrinsicNotFound = errors.New("extrinsic not found in block")

type rawBlock struct {
	Block struct {
		Extrinsics []string `json:"extrinsics"`
	} `json:"block"`
}

// ExtrinsicEvents returns the events emitted by the extrinsic, given hex
// encoded, in the block given.
func (c *Client) ExtrinsicEvents(ctx context.Context, blockHash common.Hash,
	extrinsicHex string) (events []txwatch.Event, err error) {
	index, err := c.extrinsicIndex(ctx, blockHash, extrinsicHex)
	if err != nil {
		return nil, err
	}

	eventRetriever, err := c.eventRetriever()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blockEvents, err := eventRetriever.GetEvents(types.Hash(blockHash))
	if err != nil {
		return nil, fmt.Errorf("getting events: %w", err)
	}

	return filterExtrinsicEvents(blockEvents, index), nil
}

func (c *Client) eventRetriever() (EventRetriever, error) {
	if c.retriever != nil {
		return c.retriever, nil
	}

	eventRetriever, err := retriever.NewDefaultEventRetriever(
		regstate.NewEventProvider(c.api.RPC.State), c.api.RPC.State)
	if err != nil {
		return nil, fmt.Errorf("creating event retriever: %w", err)
	}
	c.retriever = eventRetriever
	return eventRetriever, nil
}

func (c *Client) extrinsicIndex(ctx context.Context, blockHash common.Hash,
	extrinsicHex string) (index uint32, err error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var block rawBlock
	err = c.rpc.Call(&block, "chain_getBlock", blockHash.String())
	if err != nil {
		return 0, fmt.Errorf("getting block %s: %w", blockHash, err)
	}

	index, err = findExtrinsic(block.Block.Extrinsics, extrinsicHex)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", err, blockHash)
	}
	return index, nil
}

func findExtrinsic(extrinsics []string, extrinsicHex string) (index uint32, err error) {
	for i, ext := range extrinsics {
		if strings.EqualFold(ext, extrinsicHex) {
			return uint32(i), nil
		}
	}
	return 0, ErrExtrinsicNotFound
}

// filterExtrinsicEvents keeps the events emitted while applying
// the extrinsic at the index given, in their original order.
func filterExtrinsicEvents(blockEvents []*parser.Event, index uint32) (events []txwatch.Event) {
	for _, blockEvent := range blockEvents {
		if blockEvent == nil || blockEvent.Phase == nil ||
			!blockEvent.Phase.IsApplyExtrinsic ||
			blockEvent.Phase.AsApplyExtrinsic != index {
			continue
		}
		events = append(events, convertEvent(blockEvent))
	}
	return events
}

func convertEvent(blockEvent *parser.Event) (event txwatch.Event) {
	event.Pallet, event.Name, _ = strings.Cut(blockEvent.Name, ".")
	event.Fields = make([]txwatch.Field, len(blockEvent.Fields))
	for i, field := range blockEvent.Fields {
		event.Fields[i] = txwatch.Field{
			Name:  field.Name,
			Value: field.Value,
		}
	}
	return event
}
