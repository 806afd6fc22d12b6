// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/subadmin/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
	"github.com/urfave/cli"
)

const (
	defaultSURI     = "//Alice"
	defaultEndpoint = "ws://127.0.0.1:9944"
	// anySS58Prefix accepts account addresses of any network.
	anySS58Prefix = -1
)

// Config is the configuration of subadmin.
type Config struct {
	Global GlobalConfig `toml:"global"`
	Client ClientConfig `toml:"client"`
	Chain  ChainConfig  `toml:"chain"`
}

// GlobalConfig is the global configuration.
type GlobalConfig struct {
	LogLvl string `toml:"log" validate:"loglevel"`
}

// ClientConfig is the node client configuration.
type ClientConfig struct {
	Endpoint string `toml:"endpoint" validate:"required,url"`
	SURI     string `toml:"suri" validate:"required"`
	SudoSURI string `toml:"sudo-suri" validate:"required"`
}

// ChainConfig is the configuration specific to the runtime of the chain.
type ChainConfig struct {
	SS58Prefix   int  `toml:"ss58-prefix" validate:"min=-1,max=16383"`
	LegacyWeight bool `toml:"legacy-weight"`
}

func defaultConfig() Config {
	return Config{
		Global: GlobalConfig{
			LogLvl: log.Info.String(),
		},
		Client: ClientConfig{
			Endpoint: defaultEndpoint,
			SURI:     defaultSURI,
			SudoSURI: defaultSURI,
		},
		Chain: ChainConfig{
			SS58Prefix: anySS58Prefix,
		},
	}
}

// loadConfigFromFile decodes the toml configuration file on top of cfg.
func loadConfigFromFile(cfg *Config, fp string) (err error) {
	file, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return fmt.Errorf("opening configuration file: %w", err)
	}

	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing configuration file: %w", closeErr)
		}
	}()

	err = toml.NewDecoder(file).Decode(cfg)
	if err != nil {
		return fmt.Errorf("decoding toml configuration %s: %w", fp, err)
	}
	return nil
}

// setupConfig returns the configuration made of the default values,
// overridden by the values of the configuration file if any, overridden
// by the values of the flags set.
func setupConfig(ctx *cli.Context) (cfg Config, err error) {
	cfg = defaultConfig()

	if fp := ctx.GlobalString(ConfigFlag.Name); fp != "" {
		logger.Debug("loading toml configuration from " + fp + "...")
		err = loadConfigFromFile(&cfg, fp)
		if err != nil {
			return cfg, err
		}
	}

	setFlagValues(ctx, &cfg)

	err = validateConfig(cfg)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

func setFlagValues(ctx *cli.Context, cfg *Config) {
	if ctx.GlobalIsSet(LogFlag.Name) {
		cfg.Global.LogLvl = ctx.GlobalString(LogFlag.Name)
	}
	if ctx.GlobalIsSet(endpointFlagName) {
		cfg.Client.Endpoint = ctx.GlobalString(endpointFlagName)
	}
	if ctx.GlobalIsSet(SURIFlag.Name) {
		cfg.Client.SURI = ctx.GlobalString(SURIFlag.Name)
	}
	if ctx.GlobalIsSet(SudoSURIFlag.Name) {
		cfg.Client.SudoSURI = ctx.GlobalString(SudoSURIFlag.Name)
	}
	if ctx.GlobalIsSet(SS58PrefixFlag.Name) {
		cfg.Chain.SS58Prefix = ctx.GlobalInt(SS58PrefixFlag.Name)
	}
	if ctx.GlobalIsSet(LegacyWeightFlag.Name) {
		cfg.Chain.LegacyWeight = ctx.GlobalBool(LegacyWeightFlag.Name)
	}
}

// endpointFlagName is the long name of the endpoint flag, without its alias.
const endpointFlagName = "endpoint"

func validateConfig(cfg Config) error {
	validate := validator.New()
	err := validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("registering log level validation: %w", err)
	}

	err = validate.Struct(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
