// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ChainSafe/subadmin/internal/client"
	"github.com/ChainSafe/subadmin/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "subadmin"))

func main() {
	app := newApp(context.Background(), os.Stdout, connect, getSecret)
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func connect(ctx context.Context, endpoint string) (ChainAPI, error) {
	return client.New(ctx, endpoint)
}

// runner holds the dependencies and the configuration of the commands.
type runner struct {
	ctx     context.Context
	stdout  io.Writer
	connect func(ctx context.Context, endpoint string) (ChainAPI, error)
	prompt  func(msg string) ([]byte, error)
	cfg     Config
}

func newApp(ctx context.Context, stdout io.Writer,
	connect func(ctx context.Context, endpoint string) (ChainAPI, error),
	prompt func(msg string) ([]byte, error)) *cli.App {
	r := &runner{
		ctx:     ctx,
		stdout:  stdout,
		connect: connect,
		prompt:  prompt,
	}

	app := cli.NewApp()
	app.Name = "subadmin"
	app.Usage = "Administration client for Substrate based nodes"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.Flags = GlobalFlags
	app.Commands = []cli.Command{
		{
			Name:  "send-extrinsic",
			Usage: "Sign and submit an extrinsic, and wait for it to succeed",
			Subcommands: []cli.Command{
				{
					Name:      "add-authority",
					Usage:     "Add an authority, signed by the sudo account",
					ArgsUsage: "<account>",
					Action:    r.action(r.addAuthority),
				},
				{
					Name:      "transfer",
					Usage:     "Transfer an amount of tokens",
					ArgsUsage: "<to> <amount>",
					Action:    r.action(r.transfer),
				},
				{
					Name:      "set-balance",
					Usage:     "Set the free balance of an account, signed by the sudo account",
					ArgsUsage: "<account> <amount>",
					Action:    r.action(r.setBalance),
				},
				{
					Name:      "set-code",
					Usage:     "Upgrade the runtime code, signed by the sudo account",
					ArgsUsage: "<wasm-path>",
					Action:    r.action(r.setCode),
				},
				{
					Name:   "switch-to-pos",
					Usage:  "Switch the chain to proof of stake, signed by the sudo account",
					Action: r.action(r.switchToPos),
				},
				{
					Name:      "set-sudo-key",
					Usage:     "Set the sudo key, signed by the sudo account",
					ArgsUsage: "<account>",
					Action:    r.action(r.setSudoKey),
				},
			},
		},
		{
			Name:   "get-head",
			Usage:  "Print the best block hash",
			Flags:  []cli.Flag{QuietFlag},
			Action: r.action(r.getHead),
		},
		{
			Name:   "get-version",
			Usage:  "Print the runtime version",
			Action: r.action(r.getVersion),
		},
		{
			Name:      "count-storage-items",
			Usage:     "Count the entries of a storage item",
			ArgsUsage: "<module> <name>",
			Action:    r.action(r.countStorageItems),
		},
		{
			Name:      "get-code",
			Usage:     "Write the runtime code to a file",
			ArgsUsage: "<output-path>",
			Flags:     []cli.Flag{DecompressFlag},
			Action:    r.action(r.getCode),
		},
	}

	return app
}

// action returns the command action setting up the configuration
// and the logger before running.
func (r *runner) action(run func(ctx *cli.Context) error) func(ctx *cli.Context) error {
	return func(ctx *cli.Context) error {
		if err := r.setup(ctx); err != nil {
			return err
		}
		return run(ctx)
	}
}

func (r *runner) setup(ctx *cli.Context) (err error) {
	r.cfg, err = setupConfig(ctx)
	if err != nil {
		return err
	}

	_, err = setupLogger(r.cfg.Global.LogLvl)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}

	logger.Debugf("using endpoint %s", r.cfg.Client.Endpoint)
	return nil
}

func (r *runner) connectNode() (ChainAPI, error) {
	api, err := r.connect(r.ctx, r.cfg.Client.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("connecting to node: %w", err)
	}
	return api, nil
}
