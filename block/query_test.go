// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/fault"
)

func TestParseOrder(t *testing.T) {
	items := []struct {
		orderBy    string
		field      string
		descending bool
		err        error
	}{
		{"", "", false, nil},
		{"amount", "amount", false, nil},
		{"amount:asc", "amount", false, nil},
		{"timestamp:desc", "timestamp", true, nil},
		{"password", "", false, fault.InvalidSortField},
		{"amount:sideways", "", false, fault.InvalidSortField},
	}
	for i, item := range items {
		field, descending, err := block.ParseOrder(item.orderBy)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.field, field, "%d: field", i)
		assert.Equal(t, item.descending, descending, "%d: descending", i)
	}
}

func TestFilterValidate(t *testing.T) {
	f := block.Filter{}
	assert.Nil(t, f.Validate(), "empty filter")
	assert.Equal(t, block.DefaultLimit, f.Limit, "default limit")

	f = block.Filter{Limit: 101}
	assert.Equal(t, fault.InvalidLimit, f.Validate(), "limit too large")

	f = block.Filter{Offset: -1}
	assert.Equal(t, fault.InvalidCount, f.Validate(), "negative offset")

	f = block.Filter{SenderPublicKey: "xyz"}
	assert.Equal(t, fault.InvalidHex, f.Validate(), "bad key")
}

func TestQuery(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	s, _ := block.NewStore()
	g := makeBlock(t, 1, "",
		payment(t, alice, bob, 30, 1),
		payment(t, alice, bob, 10, 2),
		payment(t, bob, alice, 20, 3),
	)
	err := s.Commit(g)
	assert.Nil(t, err, "commit")

	txs, count, err := s.Query(block.Filter{SenderID: alice.Address(), OrderBy: "amount:asc"})
	assert.Nil(t, err, "query")
	assert.Equal(t, 2, count, "alice count")
	assert.Equal(t, int64(10), txs[0].Amount, "ascending first")
	assert.Equal(t, int64(30), txs[1].Amount, "ascending second")

	txs, count, err = s.Query(block.Filter{OrderBy: "amount:desc", Limit: 1, Offset: 1})
	assert.Nil(t, err, "query")
	assert.Equal(t, 3, count, "total count")
	assert.Equal(t, 1, len(txs), "limited")
	assert.Equal(t, int64(20), txs[0].Amount, "offset into descending")

	// filters combine
	txs, count, err = s.Query(block.Filter{SenderID: alice.Address(), RecipientID: alice.Address()})
	assert.Nil(t, err, "query")
	assert.Equal(t, 0, count, "and filter")
	assert.Equal(t, 0, len(txs), "no results")

	txs, _, err = s.Query(block.Filter{SenderPublicKey: bob.PublicKeyHex(), BlockID: g.ID})
	assert.Nil(t, err, "query")
	assert.Equal(t, 1, len(txs), "by key and block")
	assert.Equal(t, uint64(1), txs[0].Confirmations, "confirmations")

	_, _, err = s.Query(block.Filter{OrderBy: "secret"})
	assert.Equal(t, fault.InvalidSortField, err, "bad order")
}
