// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/reservoir"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

func makeTransactions(secret string, n int) []*transactionrecord.Transaction {
	key := account.NewKeyPairFromSecret(secret)
	recipient := account.NewKeyPairFromSecret("recipient")
	txs := make([]*transactionrecord.Transaction, n)
	for i := range txs {
		tx := &transactionrecord.Transaction{
			Kind:            transactionrecord.PaymentKind,
			Timestamp:       uint32(100 + i),
			SenderPublicKey: key.PublicKey,
			RecipientID:     recipient.Address(),
			Amount:          int64(i + 1),
			Fee:             10,
			Asset:           &transactionrecord.Payment{},
		}
		_ = tx.Sign(key)
		tx.ID, _ = tx.ComputeID()
		txs[i] = tx
	}
	return txs
}

func ids(txs []*transactionrecord.Transaction) []string {
	s := make([]string, len(txs))
	for i, tx := range txs {
		s[i] = tx.ID
	}
	return s
}

func TestAddRemove(t *testing.T) {
	p := reservoir.New()
	txs := makeTransactions("alice", 4)

	for i, tx := range txs {
		assert.Nil(t, p.Add(tx), "%d: add", i)
	}
	assert.Equal(t, fault.TransactionAlreadyExists, p.Add(txs[0]), "duplicate add")
	assert.Equal(t, 4, p.Len(), "length")

	assert.True(t, p.Remove(txs[1].ID), "remove")
	assert.False(t, p.Remove(txs[1].ID), "remove twice")
	assert.False(t, p.Has(txs[1].ID), "has removed")

	tx, ok := p.Get(txs[2].ID)
	assert.True(t, ok, "get")
	assert.Equal(t, txs[2], tx, "get result")

	_, ok = p.Get(txs[1].ID)
	assert.False(t, ok, "get removed")

	assert.Equal(t, []string{txs[0].ID, txs[2].ID, txs[3].ID}, ids(p.List(false)), "forward")
	assert.Equal(t, []string{txs[3].ID, txs[2].ID, txs[0].ID}, ids(p.List(true)), "reverse")

	// removed ids may be added again, at the end
	assert.Nil(t, p.Add(txs[1]), "re-add")
	assert.Equal(t, []string{txs[0].ID, txs[2].ID, txs[3].ID, txs[1].ID}, ids(p.List(false)), "re-added order")

	assert.Equal(t, 1, p.Removed(), "removed markers")
	p.Compact()
	assert.Equal(t, 0, p.Removed(), "removed markers after compact")
	assert.Equal(t, []string{txs[0].ID, txs[2].ID, txs[3].ID, txs[1].ID}, ids(p.List(false)), "compacted order")
	assert.True(t, p.Remove(txs[3].ID), "remove after compact")
	assert.Equal(t, []string{txs[0].ID, txs[2].ID, txs[1].ID}, ids(p.List(false)), "after compact remove")
}

func TestQuarantine(t *testing.T) {
	p := reservoir.New()
	txs := makeTransactions("bob", 2)

	assert.Nil(t, p.Add(txs[0]), "add")
	p.Quarantine(txs[0])
	p.Quarantine(txs[1])

	assert.False(t, p.Has(txs[0].ID), "pooled after quarantine")
	assert.True(t, p.IsQuarantined(txs[0].ID), "quarantined")
	assert.True(t, p.IsQuarantined(txs[1].ID), "quarantined without pool")
	assert.Equal(t, 0, p.Len(), "length")
	assert.Equal(t, 2, p.QuarantineLen(), "quarantine length")

	assert.Equal(t, fault.TransactionAlreadyExists, p.Add(txs[1]), "add quarantined")
}

func TestAddresses(t *testing.T) {
	p := reservoir.New()
	a := makeTransactions("alice", 2)
	b := makeTransactions("bob", 1)

	for _, tx := range []*transactionrecord.Transaction{a[0], b[0], a[1]} {
		assert.Nil(t, p.Add(tx), "add")
	}
	assert.Equal(t, []string{a[0].SenderAddress(), b[0].SenderAddress()}, p.Addresses(), "addresses")

	match := p.Filter(func(tx *transactionrecord.Transaction) bool {
		return tx.SenderAddress() == b[0].SenderAddress()
	})
	assert.Equal(t, []string{b[0].ID}, ids(match), "filter")
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "reservoir-test")
	if !assert.Nil(t, err, "temp dir") {
		return
	}
	defer os.RemoveAll(dir)
	filename := filepath.Join(dir, "pool.backup")

	p := reservoir.New()
	txs := makeTransactions("carol", 5)
	for _, tx := range txs[:4] {
		assert.Nil(t, p.Add(tx), "add")
	}
	p.Remove(txs[2].ID)
	p.Quarantine(txs[4])

	err = p.SaveToFile(filename)
	assert.Nil(t, err, "save")

	backup, err := reservoir.LoadFromFile(filename)
	if !assert.Nil(t, err, "load") {
		return
	}
	assert.Equal(t, []string{txs[0].ID, txs[1].ID, txs[3].ID}, ids(backup.Transactions), "pooled")
	assert.Equal(t, []string{txs[4].ID}, ids(backup.Quarantined), "quarantined")

	restored := backup.Transactions[1]
	assert.Equal(t, txs[1].Amount, restored.Amount, "amount")
	assert.Equal(t, txs[1].Signature, restored.Signature, "signature")
	id, err := restored.ComputeID()
	assert.Nil(t, err, "compute id")
	assert.Equal(t, txs[1].ID, id, "id")
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "reservoir-test")
	if !assert.Nil(t, err, "temp dir") {
		return
	}
	defer os.RemoveAll(dir)

	items := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"wrong-bof", []byte{0, 0, 3, 'x', 'y', 'z'}},
		{"truncated", []byte{0, 0, 17, 'l', 'e', 'd'}},
		{"no-eof", append([]byte{0, 0, 17}, []byte("ledgerd-pool v1.0")...)},
		{"bad-tag", append(append([]byte{0, 0, 17}, []byte("ledgerd-pool v1.0")...), 9, 0, 0)},
	}
	for _, item := range items {
		filename := filepath.Join(dir, item.name)
		err := ioutil.WriteFile(filename, item.data, 0600)
		assert.Nil(t, err, "%s: write", item.name)

		backup, err := reservoir.LoadFromFile(filename)
		assert.NotNil(t, err, fmt.Sprintf("%s: expected error", item.name))
		assert.Nil(t, backup, "%s: backup", item.name)
	}

	_, err = reservoir.LoadFromFile(filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(err), "missing file")
}
