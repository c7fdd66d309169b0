// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// GET /api/transactions
func (h *handlers) listTransactions(c *gin.Context) {
	limit, err := optionalInt(c.Query("limit"))
	if nil != err {
		failure(c, err)
		return
	}
	offset, err := optionalInt(c.Query("offset"))
	if nil != err {
		failure(c, err)
		return
	}

	f := block.Filter{
		BlockID:         c.Query("blockId"),
		SenderPublicKey: c.Query("senderPublicKey"),
		SenderID:        c.Query("senderId"),
		RecipientID:     c.Query("recipientId"),
		OrderBy:         c.Query("orderBy"),
		Limit:           limit,
		Offset:          offset,
	}

	txs, count, err := h.chain.Query(f)
	if nil != err {
		h.log.Debugf("list transactions error: %s", err)
		failure(c, err)
		return
	}
	success(c, gin.H{
		"transactions": txs,
		"count":        count,
	})
}

// GET /api/transactions/get?id=
func (h *handlers) getTransaction(c *gin.Context) {
	id := c.Query("id")
	if "" == id {
		failure(c, fault.MissingParameters)
		return
	}
	tx, err := h.chain.Transaction(id)
	if nil != err {
		failure(c, err)
		return
	}
	success(c, gin.H{"transaction": tx})
}

// GET /api/transactions/unconfirmed/get?id=
func (h *handlers) getUnconfirmed(c *gin.Context) {
	id := c.Query("id")
	if "" == id {
		failure(c, fault.MissingParameters)
		return
	}
	tx, ok := h.pool.Get(id)
	if !ok {
		failure(c, fault.TransactionNotFound)
		return
	}
	success(c, gin.H{"transaction": tx})
}

// GET /api/transactions/unconfirmed?senderPublicKey=&address=
//
// newest first, a transaction matches if either parameter matches
func (h *handlers) listUnconfirmed(c *gin.Context) {
	senderPublicKey := strings.ToLower(c.Query("senderPublicKey"))
	address := c.Query("address")

	if "" == senderPublicKey && "" == address {
		success(c, gin.H{"transactions": h.pool.List(true)})
		return
	}

	txs := h.pool.Filter(func(tx *transactionrecord.Transaction) bool {
		if "" != senderPublicKey && senderPublicKey == hex.EncodeToString(tx.SenderPublicKey) {
			return true
		}
		return "" != address && address == tx.RecipientID
	})
	for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
		txs[i], txs[j] = txs[j], txs[i]
	}
	success(c, gin.H{"transactions": txs})
}

type addTransactionRequest struct {
	Secret       string          `json:"secret"`
	Amount       json.Number     `json:"amount"`
	RecipientID  string          `json:"recipientId"`
	PublicKey    string          `json:"publicKey"`
	SecondSecret string          `json:"secondSecret"`
	ScriptID     string          `json:"scriptId"`
	Input        json.RawMessage `json:"input"`
}

// PUT /api/transactions
//
// build and sign a payment, or a script invocation when scriptId is
// present, on behalf of the holder of the secret
func (h *handlers) addTransaction(c *gin.Context) {
	var request addTransactionRequest
	if err := c.ShouldBindJSON(&request); nil != err {
		h.log.Debugf("add transaction: bad request: %s", err)
		failure(c, fault.InvalidJSON)
		return
	}

	tx, err := h.buildTransaction(&request)
	if nil != err {
		failure(c, err)
		return
	}

	id, err := h.engine.ProcessTransaction(c.Request.Context(), tx, true)
	if nil != err {
		h.log.Debugf("add transaction: %s  error: %s", tx.ID, err)
		failure(c, err)
		return
	}
	success(c, gin.H{"transactionId": id})
}

func (h *handlers) buildTransaction(request *addTransactionRequest) (*transactionrecord.Transaction, error) {
	if "" == request.Secret {
		return nil, fault.MissingParameters
	}

	keyPair := account.NewKeyPairFromSecret(request.Secret)
	if "" != request.PublicKey && !strings.EqualFold(request.PublicKey, keyPair.PublicKeyHex()) {
		return nil, fault.InvalidSecret
	}

	sender, ok := h.engine.AccountByPublicKey(keyPair.PublicKey)
	if !ok {
		return nil, fault.AccountWithoutBalance
	}
	if nil == sender.PublicKey {
		return nil, fault.AccountNotOpened
	}

	amount, err := parseAmount(request.Amount)
	if nil != err {
		return nil, err
	}

	tx := &transactionrecord.Transaction{
		Kind:            transactionrecord.PaymentKind,
		Timestamp:       h.engine.Now(),
		SenderPublicKey: []byte(keyPair.PublicKey),
		RecipientID:     request.RecipientID,
		Amount:          amount,
		Asset:           &transactionrecord.Payment{},
	}
	if "" != request.ScriptID {
		if 0 == len(request.Input) {
			return nil, fault.EmptyScriptInput
		}
		tx.Kind = transactionrecord.ScriptInvokeKind
		tx.Asset = &transactionrecord.ScriptInvoke{
			ScriptID: request.ScriptID,
			Data:     []byte(request.Input),
		}
	}

	if err := tx.Sign(keyPair); nil != err {
		return nil, err
	}
	if sender.SecondSignature {
		if "" == request.SecondSecret {
			return nil, fault.MissingSecondSecret
		}
		if err := tx.SecondSign(account.NewKeyPairFromSecret(request.SecondSecret)); nil != err {
			return nil, err
		}
	}

	tx.ID, err = tx.ComputeID()
	if nil != err {
		return nil, err
	}
	return tx, nil
}

// integer amounts only, exponent notation is refused
func parseAmount(n json.Number) (int64, error) {
	s := n.String()
	if "" == s {
		return 0, fault.InvalidAmount
	}
	if strings.ContainsAny(s, "eE.") {
		return 0, fault.InvalidAmount
	}
	amount, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.InvalidAmount
	}
	return amount, nil
}

// empty is zero
func optionalInt(s string) (int, error) {
	if "" == s {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.InvalidCount
	}
	return n, nil
}
