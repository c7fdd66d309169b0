// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"
)

func runGenesis(c *cli.Context) error {
	m := getMetadata(c)

	secret, err := checkRequired(c, "secret")
	if nil != err {
		return err
	}

	allocations := c.StringSlice("allocate")
	if 0 == len(allocations) {
		return fmt.Errorf("missing --allocate")
	}

	b, err := makeGenesis(secret, allocations, c.StringSlice("delegate"))
	if nil != err {
		return err
	}

	output := c.String("output")
	if "" == output || "-" == output {
		printJson(m.w, b)
		return nil
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if nil != err {
		return err
	}
	if err := ioutil.WriteFile(output, append(data, '\n'), 0644); nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "genesis: %s  transactions: %d  written to: %q\n", b.ID, len(b.Transactions), output)
	}
	return nil
}
