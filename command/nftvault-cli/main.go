// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftvault/chain"
	"github.com/bitmark-inc/nftvault/command/nftvault-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "nftvault-cli"
	app.Usage = "client for the nftvaultd custodial pool"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.NFTVault,
			Usage: " connect to `NETWORK` [nftvault|testing|local]",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [default: $XDG_CONFIG_HOME/nftvault-cli/NETWORK-nftvault-cli.json]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}

	assetFlag := cli.StringFlag{
		Name:  "asset, a",
		Value: "",
		Usage: "*asset id `HEX`",
	}
	unitFlag := cli.StringFlag{
		Name:  "unit, u",
		Value: "",
		Usage: "*unit id `HEX`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "create the nftvault-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*nftvaultd host/IP and port, `HOST:PORT`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "generate",
			Usage:     "generate a new identity and store it encrypted in the configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "initialise",
			Usage:     "create the pool, the identity becomes its authority",
			ArgsUsage: " ",
			Action:    runInitialise,
		},
		{
			Name:      "reward-unit",
			Usage:     "bind the unit paid out by claims (authority only)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{unitFlag},
			Action:    runRewardUnit,
		},
		{
			Name:      "mint",
			Usage:     "mint a new asset owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*asset symbol `STRING`",
				},
				cli.StringFlag{
					Name:  "uri, r",
					Value: "",
					Usage: " asset metadata `URI`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "lock",
			Usage:     "move one unit of an asset into the pool",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runLock,
		},
		{
			Name:      "unlock",
			Usage:     "take one unit of an asset out of the pool",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runUnlock,
		},
		{
			Name:      "claim",
			Usage:     "claim the accrued fee in reward units",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{unitFlag},
			Action:    runClaim,
		},
		{
			Name:      "swap",
			Usage:     "pay native currency for one unit of a locked asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
				cli.Uint64Flag{
					Name:  "amount, A",
					Value: 0,
					Usage: "*native currency `AMOUNT`",
				},
			},
			Action: runSwap,
		},
		{
			Name:      "status",
			Usage:     "display the pool state",
			ArgsUsage: " ",
			Action:    runStatus,
		},
		{
			Name:      "asset",
			Usage:     "display an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runAsset,
		},
		{
			Name:      "balance",
			Usage:     "display the holdings of an account",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` [default identity]",
				},
				cli.StringFlag{
					Name:  "unit, u",
					Value: "",
					Usage: " only this unit `HEX`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "info",
			Usage:     "display nftvaultd information",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "version",
			Usage:     "display nftvault-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	// read the configuration file
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		network := c.GlobalString("network")
		switch network {
		case chain.NFTVault, "live":
			network = chain.NFTVault
		case chain.Testing, "test":
			network = chain.Testing
		case chain.Local:
		default:
			return fmt.Errorf("network: %q can only be nftvault/testing/local", network)
		}

		file := c.GlobalString("config")
		if "" == file {
			p := os.Getenv("XDG_CONFIG_HOME")
			if "" == p {
				return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
			}
			file = path.Join(p, app.Name, network+"-"+app.Name+".json")
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		testnet := chain.IsTesting(network)

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := os.Stat(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  configuration.New(testnet, ""),
				testnet: testnet,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}
		if config.TestNet != testnet {
			return fmt.Errorf("configuration: %q is not for network: %s", file, network)
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			testnet: config.TestNet,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	return app
}
