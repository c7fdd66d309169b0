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

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/command/ledger-cli/rpccalls"
	"github.com/bitmark-inc/ledgerd/slot"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

func runSend(c *cli.Context) error {
	m := getMetadata(c)

	secret, err := checkRequired(c, "secret")
	if nil != err {
		return err
	}

	data := &rpccalls.SendData{
		Secret:       secret,
		SecondSecret: c.String("second-secret"),
		Amount:       json.Number(c.String("amount")),
		RecipientID:  c.String("recipient"),
		ScriptID:     c.String("script"),
	}
	if "" != data.ScriptID {
		input, err := checkRequired(c, "input")
		if nil != err {
			return err
		}
		if !json.Valid([]byte(input)) {
			return fmt.Errorf("input is not valid JSON")
		}
		data.Input = json.RawMessage(input)
	} else if "" == data.RecipientID {
		return fmt.Errorf("missing --recipient")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Send(data)
	if nil != err {
		return err
	}
	printJson(m.w, response)
	return nil
}

func runSubmit(c *cli.Context) error {
	m := getMetadata(c)

	secret, err := checkRequired(c, "secret")
	if nil != err {
		return err
	}

	asset, err := submitAsset(c)
	if nil != err {
		return err
	}

	tx := newTransaction(slot.New().Time(), asset)
	if transactionrecord.PaymentKind == tx.Kind || transactionrecord.ScriptInvokeKind == tx.Kind {
		tx.RecipientID = c.String("recipient")
		tx.Amount = c.Int64("amount")
	}

	s := signer{
		secret:       secret,
		secondSecret: c.String("second-secret"),
	}
	if err := s.seal(tx); nil != err {
		return err
	}

	if c.Bool("dry-run") {
		printJson(m.w, tx)
		return nil
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(tx)
	if nil != err {
		return err
	}
	printJson(m.w, response)
	return nil
}

// the kind specific part of a locally built transaction
func submitAsset(c *cli.Context) (transactionrecord.Asset, error) {
	switch kind := c.String("kind"); kind {
	case "payment":
		if "" == c.String("recipient") {
			return nil, fmt.Errorf("missing --recipient")
		}
		return &transactionrecord.Payment{}, nil

	case "second-signature":
		secret, err := checkRequired(c, "new-second-secret")
		if nil != err {
			return nil, err
		}
		keyPair := account.NewKeyPairFromSecret(secret)
		return &transactionrecord.SecondSignature{PublicKey: []byte(keyPair.PublicKey)}, nil

	case "delegate":
		username, err := checkRequired(c, "username")
		if nil != err {
			return nil, err
		}
		return &transactionrecord.Delegate{Username: username}, nil

	case "username":
		username, err := checkRequired(c, "username")
		if nil != err {
			return nil, err
		}
		return &transactionrecord.Username{Username: username}, nil

	case "vote":
		votes, err := parseVotes(c.String("votes"))
		if nil != err {
			return nil, err
		}
		return &transactionrecord.Vote{Votes: votes}, nil

	case "deploy":
		codeFile, err := checkRequired(c, "code")
		if nil != err {
			return nil, err
		}
		code, err := ioutil.ReadFile(codeFile)
		if nil != err {
			return nil, err
		}
		var parameters []byte
		if f := c.String("parameters"); "" != f {
			parameters, err = ioutil.ReadFile(f)
			if nil != err {
				return nil, err
			}
		}
		return &transactionrecord.Script{
			Code:        code,
			Parameters:  parameters,
			Name:        c.String("name"),
			Description: c.String("description"),
		}, nil

	case "invoke":
		scriptID, err := checkRequired(c, "script")
		if nil != err {
			return nil, err
		}
		input, err := checkRequired(c, "input")
		if nil != err {
			return nil, err
		}
		if !json.Valid([]byte(input)) {
			return nil, fmt.Errorf("input is not valid JSON")
		}
		return &transactionrecord.ScriptInvoke{ScriptID: scriptID, Data: []byte(input)}, nil

	default:
		return nil, fmt.Errorf("unknown kind: %q", kind)
	}
}

func runTransaction(c *cli.Context) error {
	m := getMetadata(c)

	id, err := checkRequired(c, "id")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transaction(id, c.Bool("unconfirmed"))
	if nil != err {
		return err
	}
	printJson(m.w, response)
	return nil
}

func runList(c *cli.Context) error {
	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(&rpccalls.ListData{
		BlockID:     c.String("block"),
		SenderID:    c.String("sender"),
		RecipientID: c.String("recipient"),
		OrderBy:     c.String("order"),
		Limit:       c.Int("limit"),
		Offset:      c.Int("offset"),
	})
	if nil != err {
		return err
	}
	printJson(m.w, response)
	return nil
}

func runUnconfirmed(c *cli.Context) error {
	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Unconfirmed(c.String("address"))
	if nil != err {
		return err
	}
	printJson(m.w, response)
	return nil
}
