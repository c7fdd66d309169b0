// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/rpc"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

func signedPayment(t *testing.T) *transactionrecord.Transaction {
	kp := account.NewKeyPairFromSecret(secret)
	tx := &transactionrecord.Transaction{
		Kind:            transactionrecord.PaymentKind,
		Timestamp:       100,
		SenderPublicKey: []byte(kp.PublicKey),
		RecipientID:     bobAddress,
		Amount:          10,
		Asset:           &transactionrecord.Payment{},
	}
	assert.Nil(t, tx.Sign(kp), "sign")
	id, err := tx.ComputeID()
	assert.Nil(t, err, "id")
	tx.ID = id
	return tx
}

func TestPeerTransaction(t *testing.T) {
	f := setup(t, rpc.Limits{})
	defer f.teardown()

	tx := signedPayment(t)

	f.engine.EXPECT().ProcessTransaction(gomock.Any(), gomock.Any(), true).DoAndReturn(
		func(ctx context.Context, received *transactionrecord.Transaction, relay bool) (string, error) {
			assert.Equal(t, tx.ID, received.ID, "id")
			assert.True(t, received.Verify(), "signature survives the wire")
			return received.ID, nil
		}).Times(1)
	f.engine.EXPECT().ProcessTransaction(gomock.Any(), gomock.Any(), true).Return("", fault.CannotApplyTransaction).Times(1)

	_, r := f.do(http.MethodPost, "/peer/processUnconfirmedTransaction", object{"transaction": tx})
	assert.True(t, r.Success, "accepted")
	assert.Equal(t, tx.ID, r.TransactionID, "transaction id")

	code, r := f.do(http.MethodPost, "/peer/processUnconfirmedTransaction", object{"transaction": tx})
	assert.Equal(t, http.StatusOK, code, "quarantine status")
	assert.Equal(t, fault.CannotApplyTransaction.Error(), r.Error, "quarantined")

	_, r = f.do(http.MethodPost, "/peer/processUnconfirmedTransaction", object{})
	assert.Equal(t, fault.MissingParameters.Error(), r.Error, "empty")
}

func TestPeerBlock(t *testing.T) {
	f := setup(t, rpc.Limits{})
	defer f.teardown()

	b := &block.Block{
		ID:            "555",
		Height:        7,
		PreviousBlock: "444",
		Timestamp:     100,
		Transactions:  []*transactionrecord.Transaction{},
	}

	gomock.InOrder(
		f.engine.EXPECT().ProcessBlock(gomock.Any(), gomock.Any()).Return(nil),
		f.engine.EXPECT().ProcessBlock(gomock.Any(), gomock.Any()).Return(fault.BlockOutOfSequence),
	)

	_, r := f.do(http.MethodPost, "/peer/processBlock", object{"block": b})
	assert.True(t, r.Success, "accepted")
	assert.Equal(t, "555", r.BlockID, "block id")

	_, r = f.do(http.MethodPost, "/peer/processBlock", object{"block": b})
	assert.Equal(t, fault.BlockOutOfSequence.Error(), r.Error, "out of sequence")
}

func TestPeerUnconfirmed(t *testing.T) {
	f := setup(t, rpc.Limits{})
	defer f.teardown()

	tx := signedPayment(t)
	tx.SenderID = tx.SenderAddress()
	assert.Nil(t, f.pool.Add(tx), "add")

	_, r := f.do(http.MethodGet, "/peer/getUnconfirmedTransactions", nil)
	assert.Equal(t, 1, len(r.Transactions), "transactions")

	_, r = f.do(http.MethodGet, "/peer/getUnconfirmedAddresses", nil)
	assert.Equal(t, []string{tx.SenderAddress()}, r.Addresses, "addresses")
}

func TestPeerNextBlocks(t *testing.T) {
	f := setup(t, rpc.Limits{})
	defer f.teardown()

	f.chain.EXPECT().NextBlockIDs("10", gomock.Any()).Return([]string{"11", "12"}, nil).Times(1)
	f.chain.EXPECT().NextBlockIDs("99", gomock.Any()).Return(nil, fault.BlockNotFound).Times(1)
	f.chain.EXPECT().NextBlocks("10", 60).Return([]*block.Block{{ID: "11", Height: 2, Transactions: []*transactionrecord.Transaction{}}}, nil).Times(1)
	f.chain.EXPECT().NextBlocks("10", 5).Return([]*block.Block{}, nil).Times(1)

	_, r := f.do(http.MethodGet, "/peer/getNextBlockIds?blockId=10", nil)
	assert.Equal(t, []string{"11", "12"}, r.IDs, "ids")

	_, r = f.do(http.MethodGet, "/peer/getNextBlockIds?blockId=99", nil)
	assert.Equal(t, fault.BlockNotFound.Error(), r.Error, "unknown block")

	_, r = f.do(http.MethodGet, "/peer/getNextBlockIds", nil)
	assert.Equal(t, fault.MissingParameters.Error(), r.Error, "no block id")

	w := f.raw(http.MethodGet, "/peer/getNextBlocks?blockId=10")
	assert.True(t, strings.Contains(w.Body.String(), `"id":"11"`), "default limit")

	_, r = f.do(http.MethodGet, "/peer/getNextBlocks?blockId=10&limit=5", nil)
	assert.True(t, r.Success, "explicit limit")

	_, r = f.do(http.MethodGet, "/peer/getNextBlocks?blockId=10&limit=61", nil)
	assert.Equal(t, fault.InvalidCount.Error(), r.Error, "over limit")
}

func TestPeerInfo(t *testing.T) {
	f := setup(t, rpc.Limits{})
	defer f.teardown()

	f.chain.EXPECT().Height().Return(uint64(9)).Times(1)
	f.chain.EXPECT().LastBlockID().Return("999").Times(1)

	_, r := f.do(http.MethodGet, "/peer/getInfo", nil)
	assert.True(t, r.Success, "success")
	assert.Equal(t, uint64(9), r.Height, "height")
	assert.Equal(t, "999", r.LastBlockID, "last block")
	assert.Equal(t, 0, r.Unconfirmed, "unconfirmed")
	assert.Equal(t, "1.0-test", r.Version, "version")
}

func TestRateLimit(t *testing.T) {
	f := setup(t, rpc.Limits{RequestRate: 0.001, RequestBurst: 1})
	defer f.teardown()

	code, r := f.do(http.MethodGet, "/peer/getUnconfirmedAddresses", nil)
	assert.Equal(t, http.StatusOK, code, "first")
	assert.True(t, r.Success, "first success")

	code, r = f.do(http.MethodGet, "/peer/getUnconfirmedAddresses", nil)
	assert.Equal(t, http.StatusTooManyRequests, code, "second")
	assert.Equal(t, fault.RateLimiting.Error(), r.Error, "second error")
}

func TestConnectionLimit(t *testing.T) {
	f := setup(t, rpc.Limits{MaximumConnections: 2})
	defer f.teardown()

	code, _ := f.do(http.MethodGet, "/peer/getUnconfirmedAddresses", nil)
	assert.Equal(t, http.StatusOK, code, "below limit")
	assert.True(t, f.connections.IsZero(), "released")

	f.connections.Increment()
	f.connections.Increment()
	code, _ = f.do(http.MethodGet, "/peer/getUnconfirmedAddresses", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code, "at limit")
	assert.Equal(t, uint64(2), f.connections.Uint64(), "unchanged")
}

func TestMetricsAndNotFound(t *testing.T) {
	f := setup(t, rpc.Limits{})
	defer f.teardown()

	_, _ = f.do(http.MethodGet, "/peer/getUnconfirmedAddresses", nil)

	w := f.raw(http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code, "metrics status")
	assert.True(t, strings.Contains(w.Body.String(), `ledgerd_rpc_requests_total{method="GET",path="/peer/getUnconfirmedAddresses",status="200"} 1`), "request counted")

	code, r := f.do(http.MethodGet, "/nothing/here", nil)
	assert.Equal(t, http.StatusNotFound, code, "not found")
	assert.False(t, r.Success, "not found success")
}
