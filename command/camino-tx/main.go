// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/chain4travel/caminotx/configuration"
	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/formatting"
	"github.com/chain4travel/caminotx/signer"
	"github.com/chain4travel/caminotx/transactionrecord"
)

type metadata struct {
	file        string
	config      *configuration.Configuration
	codec       *formatting.Codec
	table       *transactionrecord.Table
	resolver    *signer.Resolver
	yaml        bool
	verbose     bool
	initialised bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "camino-tx"
	app.Usage = "decode, inspect and sign Camino X-chain transactions"
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
			Name:  "config-file, c",
			Value: "camino-tx.conf",
			Usage: " configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "yaml, y",
			Usage: " print results as YAML instead of JSON",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode a hex encoded transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*transaction `HEX` code",
				},
				cli.BoolFlag{
					Name:  "unsigned, u",
					Usage: " transaction has no credentials",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "address",
			Usage:     "display an address in all of its forms",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*bech32, CB58 or 0x hex `ADDRESS`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "resolve",
			Usage:     "list the signers needed for each owner policy",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owners, o",
					Value: "",
					Usage: "*YAML `FILE` of owner policies",
				},
			},
			Action: runResolve,
		},
		{
			Name:      "sign",
			Usage:     "sign an unsigned transaction with the configured keys",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*unsigned transaction `HEX` code",
				},
				cli.StringFlag{
					Name:  "owners, o",
					Value: "",
					Usage: "*YAML `FILE` of the owners of each spent output",
				},
			},
			Action: runSign,
		},
		{
			Name:  "version",
			Usage: "display camino-tx version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		m := &metadata{
			file:    file,
			config:  config,
			codec:   config.Codec(),
			table:   transactionrecord.NewTable(),
			yaml:    c.GlobalBool("yaml"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		if err := config.CreateLogDirectory(); nil != err {
			return err
		}
		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		m.initialised = true
		if err := fault.Initialise(); nil != err {
			return err
		}

		keys, err := config.Keyring()
		if nil != err {
			return err
		}
		aliases, err := config.AliasMap()
		if nil != err {
			return err
		}
		m.resolver = signer.New(logger.New("resolver"), aliases, keys)

		if verbose {
			fmt.Fprintf(e, "network: %s  keys: %d  aliases: %d\n", config.Network().Name, keys.Len(), len(aliases))
		}
		return nil
	}

	// flush logs
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.initialised {
			return nil
		}
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
