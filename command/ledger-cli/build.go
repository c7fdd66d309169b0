// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// signing secrets for a locally built transaction
type signer struct {
	secret       string
	secondSecret string
}

// sign then fill in the identity
func (s signer) seal(tx *transactionrecord.Transaction) error {
	if "" == s.secret {
		return fmt.Errorf("missing secret")
	}
	keyPair := account.NewKeyPairFromSecret(s.secret)
	tx.SenderPublicKey = []byte(keyPair.PublicKey)

	if err := tx.Sign(keyPair); nil != err {
		return err
	}
	if "" != s.secondSecret {
		if err := tx.SecondSign(account.NewKeyPairFromSecret(s.secondSecret)); nil != err {
			return err
		}
	}

	id, err := tx.ComputeID()
	if nil != err {
		return err
	}
	tx.ID = id
	tx.SenderID = tx.SenderAddress()
	return nil
}

func newTransaction(timestamp uint32, asset transactionrecord.Asset) *transactionrecord.Transaction {
	return &transactionrecord.Transaction{
		Kind:      asset.Kind(),
		Timestamp: timestamp,
		Asset:     asset,
	}
}

// "+key,-key" to a vote list, keys are checked as hex public keys
func parseVotes(text string) ([]string, error) {
	votes := []string{}
	for _, v := range strings.Split(text, ",") {
		v = strings.TrimSpace(v)
		if "" == v {
			continue
		}
		if len(v) < 2 || ('+' != v[0] && '-' != v[0]) {
			return nil, fmt.Errorf("vote: %q must start with + or -", v)
		}
		key, err := hex.DecodeString(v[1:])
		if nil != err || 32 != len(key) {
			return nil, fmt.Errorf("vote: %q is not a hex public key", v)
		}
		votes = append(votes, v[0:1]+strings.ToLower(v[1:]))
	}
	if 0 == len(votes) {
		return nil, fmt.Errorf("no votes given")
	}
	return votes, nil
}

// "address:amount"
func parseAllocation(text string) (string, int64, error) {
	parts := strings.Split(text, ":")
	if 2 != len(parts) || "" == parts[0] {
		return "", 0, fmt.Errorf("allocation: %q must be ADDRESS:AMOUNT", text)
	}
	amount, err := strconv.ParseInt(parts[1], 10, 64)
	if nil != err || amount <= 0 {
		return "", 0, fmt.Errorf("allocation: %q has invalid amount", text)
	}
	return parts[0], amount, nil
}

// "username:secret"
func parseDelegate(text string) (string, string, error) {
	n := strings.Index(text, ":")
	if n <= 0 || n == len(text)-1 {
		return "", "", fmt.Errorf("delegate: %q must be USERNAME:SECRET", text)
	}
	return text[:n], text[n+1:], nil
}

// genesis block: allocations paid from the genesis account, then
// delegate registrations, all at timestamp zero
func makeGenesis(secret string, allocations []string, delegates []string) (*block.Block, error) {
	b := &block.Block{
		Height:       block.GenesisHeight,
		Transactions: []*transactionrecord.Transaction{},
	}

	for _, a := range allocations {
		address, amount, err := parseAllocation(a)
		if nil != err {
			return nil, err
		}
		tx := newTransaction(0, &transactionrecord.Payment{})
		tx.RecipientID = address
		tx.Amount = amount
		if err := (signer{secret: secret}).seal(tx); nil != err {
			return nil, err
		}
		b.Transactions = append(b.Transactions, tx)
	}

	for _, d := range delegates {
		username, delegateSecret, err := parseDelegate(d)
		if nil != err {
			return nil, err
		}
		tx := newTransaction(0, &transactionrecord.Delegate{Username: username})
		if err := (signer{secret: delegateSecret}).seal(tx); nil != err {
			return nil, err
		}
		b.Transactions = append(b.Transactions, tx)
	}

	if 0 == len(b.Transactions) {
		return nil, fmt.Errorf("genesis block has no transactions")
	}
	if err := b.Seal(); nil != err {
		return nil, err
	}
	return b, nil
}
