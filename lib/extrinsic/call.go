// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package extrinsic builds the runtime calls submitted by the CLI.
package extrinsic

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/subadmin/lib/amount"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// Call is a runtime call identified by its pallet and call names.
// Arguments may be nested calls, as used by privileged envelopes.
// A call is never modified once built.
type Call struct {
	Pallet string
	Name   string
	Args   []interface{}
}

// NewCall returns a call for the pallet and call names given.
func NewCall(pallet, name string, args ...interface{}) *Call {
	return &Call{
		Pallet: pallet,
		Name:   name,
		Args:   args,
	}
}

// Method returns the call name as found in the runtime metadata,
// for example Balances.transfer.
func (c *Call) Method() string {
	return c.Pallet + "." + c.Name
}

// Resolve encodes the call and its nested calls against the runtime metadata.
func (c *Call) Resolve(meta *types.Metadata) (call types.Call, err error) {
	args := make([]interface{}, len(c.Args))
	for i, arg := range c.Args {
		args[i], err = resolveArg(meta, arg)
		if err != nil {
			return call, fmt.Errorf("resolving argument %d of %s: %w", i, c.Method(), err)
		}
	}

	call, err = types.NewCall(meta, c.Method(), args...)
	if err != nil {
		return call, fmt.Errorf("creating call %s: %w", c.Method(), err)
	}
	return call, nil
}

func resolveArg(meta *types.Metadata, arg interface{}) (interface{}, error) {
	switch arg := arg.(type) {
	case *Call:
		return arg.Resolve(meta)
	case Address:
		return types.NewMultiAddressFromAccountID(arg[:])
	case amount.ScaledAmount:
		return types.NewUCompact(arg.BigInt()), nil
	case Weight:
		return arg.encodable(), nil
	case []byte:
		return types.NewBytes(arg), nil
	default:
		return arg, nil
	}
}

// String returns a readable representation of the call, for example
// Sudo.sudo(Balances.set_balance(5Grw..., 1000, 0)).
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		switch arg := arg.(type) {
		case []byte:
			args[i] = fmt.Sprintf("<%d bytes>", len(arg))
		default:
			args[i] = fmt.Sprint(arg)
		}
	}
	return c.Method() + "(" + strings.Join(args, ", ") + ")"
}
