// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// sync limits
const (
	maximumNextBlockIDs = 1000
	maximumNextBlocks   = 60

	blockRate  = 600 // blocks per second served to all peers
	blockBurst = 2 * maximumNextBlocks
)

var blockLimiter = rate.NewLimiter(blockRate, blockBurst)

type transactionRequest struct {
	Transaction *transactionrecord.Transaction `json:"transaction"`
}

type blockRequest struct {
	Block *block.Block `json:"block"`
}

// POST /peer/processUnconfirmedTransaction
func (h *handlers) processUnconfirmedTransaction(c *gin.Context) {
	var request transactionRequest
	if err := c.ShouldBindJSON(&request); nil != err {
		h.log.Debugf("peer transaction: bad request: %s", err)
		failure(c, fault.InvalidJSON)
		return
	}
	if nil == request.Transaction {
		failure(c, fault.MissingParameters)
		return
	}

	id, err := h.engine.ProcessTransaction(c.Request.Context(), request.Transaction, true)
	if nil != err {
		h.log.Debugf("peer transaction: %s  client: %s  error: %s", request.Transaction.ID, c.ClientIP(), err)
		failure(c, err)
		return
	}
	success(c, gin.H{"transactionId": id})
}

// POST /peer/processBlock
func (h *handlers) processBlock(c *gin.Context) {
	var request blockRequest
	if err := c.ShouldBindJSON(&request); nil != err {
		h.log.Debugf("peer block: bad request: %s", err)
		failure(c, fault.InvalidJSON)
		return
	}
	if nil == request.Block {
		failure(c, fault.MissingParameters)
		return
	}

	if err := h.engine.ProcessBlock(c.Request.Context(), request.Block); nil != err {
		h.log.Infof("peer block: %s  height: %d  error: %s", request.Block.ID, request.Block.Height, err)
		failure(c, err)
		return
	}
	success(c, gin.H{"blockId": request.Block.ID})
}

// GET /peer/getUnconfirmedTransactions
func (h *handlers) getUnconfirmedTransactions(c *gin.Context) {
	success(c, gin.H{"transactions": h.pool.List(false)})
}

// GET /peer/getUnconfirmedAddresses
func (h *handlers) getUnconfirmedAddresses(c *gin.Context) {
	success(c, gin.H{"addresses": h.pool.Addresses()})
}

// GET /peer/getNextBlockIds?blockId=
func (h *handlers) getNextBlockIDs(c *gin.Context) {
	id := c.Query("blockId")
	if "" == id {
		failure(c, fault.MissingParameters)
		return
	}
	ids, err := h.chain.NextBlockIDs(id, maximumNextBlockIDs)
	if nil != err {
		failure(c, err)
		return
	}
	success(c, gin.H{"ids": ids})
}

// GET /peer/getNextBlocks?blockId=&limit=
func (h *handlers) getNextBlocks(c *gin.Context) {
	id := c.Query("blockId")
	if "" == id {
		failure(c, fault.MissingParameters)
		return
	}
	limit, err := optionalInt(c.Query("limit"))
	if nil != err {
		failure(c, err)
		return
	}
	if 0 == limit {
		limit = maximumNextBlocks
	}
	if err := ratelimit.LimitN(blockLimiter, limit, maximumNextBlocks); nil != err {
		failure(c, err)
		return
	}

	blocks, err := h.chain.NextBlocks(id, limit)
	if nil != err {
		failure(c, err)
		return
	}
	success(c, gin.H{"blocks": blocks})
}

// GET /peer/getInfo
func (h *handlers) getInfo(c *gin.Context) {
	success(c, gin.H{
		"version":     h.version,
		"height":      h.chain.Height(),
		"lastBlockId": h.chain.LastBlockID(),
		"unconfirmed": h.pool.Len(),
		"uptime":      time.Since(h.start).Truncate(time.Second).String(),
	})
}
