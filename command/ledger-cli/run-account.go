// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/account"
)

func runGenerate(c *cli.Context) error {
	m := getMetadata(c)

	secret, err := checkRequired(c, "secret")
	if nil != err {
		return err
	}

	keyPair := account.NewKeyPairFromSecret(secret)
	printJson(m.w, map[string]string{
		"publicKey": keyPair.PublicKeyHex(),
		"address":   keyPair.Address(),
	})
	return nil
}

func runBalance(c *cli.Context) error {
	m := getMetadata(c)

	address, err := checkRequired(c, "address")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(address)
	if nil != err {
		return err
	}
	printJson(m.w, response)
	return nil
}

func runInfo(c *cli.Context) error {
	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}
	response["_connection"] = m.connect

	printJson(m.w, response)
	return nil
}
