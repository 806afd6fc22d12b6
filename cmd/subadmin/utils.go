// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/ChainSafe/subadmin/internal/log"
	"github.com/cosmos/go-bip39"
	"github.com/urfave/cli"
	terminal "golang.org/x/term"
)

// promptSURI is the secret URI value prompting for the secret URI.
const promptSURI = "-"

var errInvalidMnemonic = errors.New("invalid mnemonic phrase")

// setupLogger sets up the global logger.
func setupLogger(lvl string) (level log.Level, err error) {
	level, err = log.ParseLevel(lvl)
	if err != nil {
		return 0, err
	}

	log.Patch(
		log.SetWriter(os.Stderr),
		log.SetLevel(level),
	)

	return level, nil
}

// getSecret prompts the user to enter a secret on the terminal.
func getSecret(msg string) ([]byte, error) {
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprint(os.Stderr, "> ")
	secret, err := terminal.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading secret: %w", err)
	}
	return secret, nil
}

// resolveSURI returns the secret URI, prompting for it if it is "-",
// and checks the mnemonic phrase it contains, if any, is valid.
func resolveSURI(suri, name string, prompt func(msg string) ([]byte, error)) (string, error) {
	if suri == promptSURI {
		secret, err := prompt("Enter the " + name + " secret URI:")
		if err != nil {
			return "", err
		}
		suri = strings.TrimSpace(string(secret))
	}

	err := checkMnemonic(suri)
	if err != nil {
		return "", fmt.Errorf("%s secret URI: %w", name, err)
	}
	return suri, nil
}

// checkMnemonic checks the phrase of a secret URI such as
// "<phrase>//hard/soft///password" is a valid bip39 mnemonic.
// Secret URIs made of a hex seed or of derivation paths only are
// not checked.
func checkMnemonic(suri string) error {
	phrase := suri
	if i := strings.Index(phrase, "/"); i >= 0 {
		phrase = phrase[:i]
	}
	phrase = strings.TrimSpace(phrase)

	if phrase == "" || strings.HasPrefix(phrase, "0x") {
		return nil
	}

	if !bip39.IsMnemonicValid(phrase) {
		return errInvalidMnemonic
	}
	return nil
}

// checkArgs checks the number of arguments of the command.
func checkArgs(ctx *cli.Context, expected int) error {
	if ctx.NArg() != expected {
		return fmt.Errorf("%w: expected %d, got %d (usage: %s %s)",
			errWrongArgsNumber, expected, ctx.NArg(), ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	return nil
}

var errWrongArgsNumber = errors.New("wrong number of arguments")
