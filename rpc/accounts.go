// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identity"
)

// GET /api/accounts/getBalance?address=
func (h *handlers) getBalance(c *gin.Context) {
	address := c.Query("address")
	if _, err := identity.ParseAddress(address); nil != err {
		failure(c, fault.InvalidAddress)
		return
	}

	balance := int64(0)
	unconfirmed := int64(0)
	if a, ok := h.engine.Account(address); ok {
		balance = a.Balance
		unconfirmed = a.UnconfirmedBalance
	}
	success(c, gin.H{
		"balance":            strconv.FormatInt(balance, 10),
		"unconfirmedBalance": strconv.FormatInt(unconfirmed, 10),
	})
}
