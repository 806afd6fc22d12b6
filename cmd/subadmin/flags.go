// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// SURIFlag is the secret URI of the signer of unprivileged extrinsics
	SURIFlag = cli.StringFlag{
		Name:  "suri",
		Usage: "Secret URI of the signing account, eg. //Alice or a mnemonic phrase. Use - to be prompted for it",
	}
	// SudoSURIFlag is the secret URI of the sudo account signing privileged extrinsics
	SudoSURIFlag = cli.StringFlag{
		Name:  "sudo-suri",
		Usage: "Secret URI of the sudo account signing privileged extrinsics. Use - to be prompted for it",
	}
	// EndpointFlag is the node RPC endpoint
	EndpointFlag = cli.StringFlag{
		Name:  "endpoint, e",
		Usage: "Node RPC endpoint (default: " + defaultEndpoint + ")",
	}
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// SS58PrefixFlag is the network identifier account addresses must be encoded with
	SS58PrefixFlag = cli.IntFlag{
		Name:  "ss58-prefix",
		Usage: "SS58 network identifier account arguments must be encoded with. Defaults to any",
	}
	// LegacyWeightFlag encodes weights as a single integer for runtimes prior to weight v2
	LegacyWeightFlag = cli.BoolFlag{
		Name:  "legacy-weight",
		Usage: "Encode call weights as a single u64, for runtimes prior to weight v2",
	}
)

// Command flags
var (
	// QuietFlag only prints the value queried
	QuietFlag = cli.BoolFlag{
		Name:  "quiet, q",
		Usage: "Only print the value",
	}
	// DecompressFlag decompresses zstd compressed runtime code
	DecompressFlag = cli.BoolFlag{
		Name:  "decompress",
		Usage: "Decompress the runtime code if it is zstd compressed",
	}
)

var (
	// GlobalFlags are flags that are valid for use with the root command and all subcommands
	GlobalFlags = []cli.Flag{
		SURIFlag,
		SudoSURIFlag,
		EndpointFlag,
		ConfigFlag,
		LogFlag,
		SS58PrefixFlag,
		LegacyWeightFlag,
	}
)
