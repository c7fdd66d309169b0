// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	insecure bool
	verbose  bool
	e        io.Writer
	w        io.Writer
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
	app.Name = "ledger-cli"
	app.Usage = "ledgerd client"
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
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " ledgerd `HOST:PORT`",
			EnvVar: "LEDGERD_CONNECT",
		},
		cli.BoolFlag{
			Name:  "insecure, k",
			Usage: " do not verify the server certificate",
		},
	}

	secretFlag := cli.StringFlag{
		Name:   "secret, s",
		Value:  "",
		Usage:  "*account secret `TEXT`",
		EnvVar: "LEDGERD_SECRET",
	}
	secondSecretFlag := cli.StringFlag{
		Name:  "second-secret, S",
		Value: "",
		Usage: " second secret `TEXT` if the account has one",
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "show the public key and address of a secret",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{secretFlag},
			Action:    runGenerate,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*account `ADDRESS`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "send",
			Usage:     "pay an amount, or invoke a script, with the server signing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				secretFlag,
				secondSecretFlag,
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: " recipient `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "0",
					Usage: " integer `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "script, x",
					Value: "",
					Usage: " deployed script `ID` to invoke",
				},
				cli.StringFlag{
					Name:  "input, i",
					Value: "",
					Usage: " script input `JSON`",
				},
			},
			Action: runSend,
		},
		{
			Name:      "submit",
			Usage:     "sign a transaction locally and submit it",
			ArgsUsage: "\n   (* = required, + = required by kind)",
			Flags: []cli.Flag{
				secretFlag,
				secondSecretFlag,
				cli.StringFlag{
					Name:  "kind, t",
					Value: "payment",
					Usage: " `KIND` [payment|second-signature|delegate|vote|deploy|invoke|username]",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "+recipient `ADDRESS`",
				},
				cli.Int64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "+integer `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "new-second-secret, n",
					Value: "",
					Usage: "+the second secret to register `TEXT`",
				},
				cli.StringFlag{
					Name:  "username, u",
					Value: "",
					Usage: "+delegate or user `NAME`",
				},
				cli.StringFlag{
					Name:  "votes",
					Value: "",
					Usage: "+comma separated `+KEY,-KEY` list",
				},
				cli.StringFlag{
					Name:  "code",
					Value: "",
					Usage: "+script source `FILE`",
				},
				cli.StringFlag{
					Name:  "parameters",
					Value: "",
					Usage: " script parameters `FILE`",
				},
				cli.StringFlag{
					Name:  "name",
					Value: "",
					Usage: " script `NAME`",
				},
				cli.StringFlag{
					Name:  "description",
					Value: "",
					Usage: " script `TEXT`",
				},
				cli.StringFlag{
					Name:  "script, x",
					Value: "",
					Usage: "+deployed script `ID`",
				},
				cli.StringFlag{
					Name:  "input, i",
					Value: "",
					Usage: "+script input `JSON`",
				},
				cli.BoolFlag{
					Name:  "dry-run",
					Usage: " only print the signed transaction",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "transaction",
			Usage:     "display a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, t",
					Value: "",
					Usage: "*transaction `ID`",
				},
				cli.BoolFlag{
					Name:  "unconfirmed, u",
					Usage: " look in the unconfirmed pool",
				},
			},
			Action: runTransaction,
		},
		{
			Name:      "list",
			Usage:     "list confirmed transactions",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "block, b",
					Value: "",
					Usage: " block `ID`",
				},
				cli.StringFlag{
					Name:  "sender, f",
					Value: "",
					Usage: " sender `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: " recipient `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "order, o",
					Value: "",
					Usage: " `FIELD:asc|desc`",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
				cli.IntFlag{
					Name:  "offset",
					Value: 0,
					Usage: " records to skip `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "unconfirmed",
			Usage:     "list pooled transactions",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " only those involving `ADDRESS`",
				},
			},
			Action: runUnconfirmed,
		},
		{
			Name:      "genesis",
			Usage:     "create a genesis block file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				secretFlag,
				cli.StringSliceFlag{
					Name:  "allocate, a",
					Usage: "*initial balance `ADDRESS:AMOUNT` (repeatable)",
				},
				cli.StringSliceFlag{
					Name:  "delegate, d",
					Usage: " register delegate `USERNAME:SECRET` (repeatable)",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "-",
					Usage: " `FILE` to write",
				},
			},
			Action: runGenesis,
		},
		{
			Name:   "info",
			Usage:  "display ledgerd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display ledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			insecure: c.GlobalBool("insecure"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	return app
}
