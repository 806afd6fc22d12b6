// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/subadmin/internal/client"
	"github.com/ChainSafe/subadmin/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/fatih/color"
	"github.com/klauspost/compress/zstd"
	"github.com/qdm12/gotree"
	"github.com/urfave/cli"
)

func (r *runner) getHead(ctx *cli.Context) error {
	if err := checkArgs(ctx, 0); err != nil {
		return err
	}

	api, err := r.connectNode()
	if err != nil {
		return err
	}

	hash, err := api.HeadHash(r.ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("quiet") {
		fmt.Fprintln(r.stdout, hash)
		return nil
	}

	fmt.Fprintf(r.stdout, "%s %s\n", headLabel(r.stdout), hash)
	return nil
}

func headLabel(w io.Writer) string {
	const label = "Chain head:"
	if w != os.Stdout || color.NoColor {
		return label
	}
	return color.New(color.Bold).Sprint(label)
}

func (r *runner) getVersion(ctx *cli.Context) error {
	if err := checkArgs(ctx, 0); err != nil {
		return err
	}

	api, err := r.connectNode()
	if err != nil {
		return err
	}

	version, err := api.RuntimeVersion(r.ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.stdout, versionTree(version).String())
	return nil
}

func versionTree(version *types.RuntimeVersion) *gotree.Node {
	tree := gotree.New("Runtime version")
	tree.Appendf("Spec name: %s", version.SpecName)
	tree.Appendf("Impl name: %s", version.ImplName)
	tree.Appendf("Authoring version: %d", version.AuthoringVersion)
	tree.Appendf("Spec version: %d", version.SpecVersion)
	tree.Appendf("Impl version: %d", version.ImplVersion)
	tree.Appendf("Transaction version: %d", version.TransactionVersion)

	apis := tree.Appendf("APIs: %d", len(version.APIs))
	for _, api := range version.APIs {
		apis.Appendf("%s: %d", api.APIID, api.Version)
	}
	return tree
}

func (r *runner) countStorageItems(ctx *cli.Context) error {
	if err := checkArgs(ctx, 2); err != nil {
		return err
	}

	api, err := r.connectNode()
	if err != nil {
		return err
	}

	module, name := ctx.Args().Get(0), ctx.Args().Get(1)
	count, err := api.CountStorageItems(r.ctx, module, name, client.DefaultPageSize)
	if err != nil {
		return fmt.Errorf("counting %s.%s storage items: %w", module, name, err)
	}

	fmt.Fprintln(r.stdout, count)
	return nil
}

func (r *runner) getCode(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	output := filepath.Clean(ctx.Args().Get(0))

	api, err := r.connectNode()
	if err != nil {
		return err
	}

	code, err := api.RuntimeCode(r.ctx)
	if errors.Is(err, client.ErrNoRuntimeCode) {
		fmt.Fprintln(r.stdout, "No code found")
		return nil
	} else if err != nil {
		return err
	}

	logger.Debugf("runtime code hash is %s", common.MustBlake2bHash(code))

	if ctx.Bool(DecompressFlag.Name) {
		code, err = decompressWasm(code)
		if err != nil {
			return fmt.Errorf("decompressing runtime code: %w", err)
		}
	}

	fmt.Fprintf(r.stdout, "Writing code to %s\n", output)
	err = os.WriteFile(output, code, 0o600)
	if err != nil {
		return fmt.Errorf("writing runtime code: %w", err)
	}
	return nil
}

// decompressWasm decompresses a Wasm blob that may or may not be compressed with zstd
// ref: https://github.com/paritytech/substrate/blob/master/primitives/maybe-compressed-blob/src/lib.rs
func decompressWasm(code []byte) ([]byte, error) {
	if !bytes.HasPrefix(code, common.ZstdWasmPrefix) {
		return code, nil
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	return decoder.DecodeAll(code[len(common.ZstdWasmPrefix):], nil)
}
