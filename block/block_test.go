// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identity"
)

func TestComputeID(t *testing.T) {
	a := makeBlock(t, 1, "", payment(t, alice, bob, 5, 1))
	b := makeBlock(t, 1, "", payment(t, alice, bob, 5, 1))
	assert.Equal(t, a.ID, b.ID, "same content gave different ids")
	assert.True(t, identity.Valid(a.ID), "block id not valid")

	c := makeBlock(t, 1, "", payment(t, alice, bob, 6, 1))
	assert.NotEqual(t, a.ID, c.ID, "different content gave same id")
}

func TestSealPlacesTransactions(t *testing.T) {
	b := makeBlock(t, 2, "77", payment(t, alice, bob, 5, 1))
	tx := b.Transactions[0]
	assert.Equal(t, b.ID, tx.BlockID, "block id")
	assert.Equal(t, uint64(2), tx.Height, "height")
	assert.Equal(t, alice.Address(), tx.SenderID, "sender id")
}

func TestCheck(t *testing.T) {
	b := makeBlock(t, 1, "", payment(t, alice, bob, 5, 1))

	// survives the wire
	buffer, err := json.Marshal(b)
	assert.Nil(t, err, "marshal")
	var received block.Block
	err = json.Unmarshal(buffer, &received)
	assert.Nil(t, err, "unmarshal")
	assert.Nil(t, received.Check(), "received block")

	received.Transactions[0].ID = "1"
	assert.Equal(t, fault.InvalidTransactionID, received.Check(), "bad transaction id")

	_ = json.Unmarshal(buffer, &received)
	received.ID = "1"
	assert.Equal(t, fault.InvalidBlockID, received.Check(), "bad block id")

	_ = json.Unmarshal(buffer, &received)
	received.PreviousBlock = "5"
	assert.Equal(t, fault.BlockOutOfSequence, received.Check(), "genesis with previous")

	tx := payment(t, alice, bob, 5, 1)
	dup := makeBlock(t, 2, "5", tx, tx)
	assert.Equal(t, fault.TransactionAlreadyExists, dup.Check(), "duplicate transaction")
}
