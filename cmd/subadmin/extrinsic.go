// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"

	"github.com/ChainSafe/subadmin/lib/amount"
	"github.com/ChainSafe/subadmin/lib/crypto/ss58"
	"github.com/ChainSafe/subadmin/lib/extrinsic"
	"github.com/ChainSafe/subadmin/lib/txwatch"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/urfave/cli"
)

const waitingMessage = "Waiting for transaction to be included in a block..."

func (r *runner) addAuthority(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}

	who, err := r.parseAccountID(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	return r.sendPrivileged(extrinsic.AddAuthority(who), false)
}

func (r *runner) transfer(ctx *cli.Context) error {
	if err := checkArgs(ctx, 2); err != nil {
		return err
	}

	to, err := r.parseAccountID(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	value, err := parseAmount(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	signer, err := r.signer(r.cfg.Client.SURI, "signer")
	if err != nil {
		return err
	}

	return r.send(extrinsic.Transfer(to, value), signer, false)
}

func (r *runner) setBalance(ctx *cli.Context) error {
	if err := checkArgs(ctx, 2); err != nil {
		return err
	}

	who, err := r.parseAccountID(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	value, err := parseAmount(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	return r.sendPrivileged(extrinsic.SetBalance(who, value), false)
}

func (r *runner) setCode(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}

	call, err := extrinsic.SetCode(ctx.Args().Get(0), r.weight())
	if err != nil {
		return err
	}

	return r.sendPrivileged(call, true)
}

func (r *runner) switchToPos(ctx *cli.Context) error {
	if err := checkArgs(ctx, 0); err != nil {
		return err
	}

	return r.sendPrivileged(extrinsic.SwitchToPos(r.weight()), true)
}

func (r *runner) setSudoKey(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}

	who, err := r.parseAccountID(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	return r.sendPrivileged(extrinsic.SetSudoKey(who), true)
}

func (r *runner) sendPrivileged(call *extrinsic.Call, printWaiting bool) error {
	sudo, err := r.signer(r.cfg.Client.SudoSURI, "sudo")
	if err != nil {
		return err
	}
	return r.send(call, sudo, printWaiting)
}

func (r *runner) send(call *extrinsic.Call, signer signature.KeyringPair, printWaiting bool) error {
	api, err := r.connectNode()
	if err != nil {
		return err
	}

	if printWaiting {
		fmt.Fprintln(r.stdout, waitingMessage)
	}

	return txwatch.SendExtrinsic(r.ctx, api, call, signer)
}

func (r *runner) signer(suri, name string) (signer signature.KeyringPair, err error) {
	suri, err = resolveSURI(suri, name, r.prompt)
	if err != nil {
		return signer, err
	}

	network := ss58.SubstratePrefix
	if r.cfg.Chain.SS58Prefix != anySS58Prefix {
		network = uint16(r.cfg.Chain.SS58Prefix)
	}

	signer, err = signature.KeyringPairFromSecret(suri, network)
	if err != nil {
		return signer, fmt.Errorf("%s secret URI: %w", name, err)
	}
	return signer, nil
}

func (r *runner) parseAccountID(address string) (extrinsic.AccountID, error) {
	if r.cfg.Chain.SS58Prefix == anySS58Prefix {
		return extrinsic.ParseAccountID(address)
	}
	return extrinsic.ParseAccountIDWithPrefix(address, uint16(r.cfg.Chain.SS58Prefix))
}

func (r *runner) weight() extrinsic.Weight {
	return extrinsic.MinimalWeight(r.cfg.Chain.LegacyWeight)
}

func parseAmount(s string) (value amount.ScaledAmount, err error) {
	tokens, err := amount.ParseTokens(s)
	if err != nil {
		return value, err
	}

	value, err = amount.CtcFrac(tokens)
	if err != nil {
		return value, err
	}

	if amount.MisroundsFraction(s, value) {
		logger.Warnf("amount %s is scaled to %s base units, which is not its exact value", s, value)
	}
	return value, nil
}
