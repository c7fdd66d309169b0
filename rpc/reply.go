// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ledgerd/fault"
)

func success(c *gin.Context, body gin.H) {
	if nil == body {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(http.StatusOK, body)
}

func failure(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusOf(err), gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// HTTP status for an error class
func statusOf(err error) int {
	switch {
	case fault.RateLimiting == err:
		return http.StatusTooManyRequests
	case fault.IsErrStorage(err):
		return http.StatusInternalServerError
	case fault.IsRejection(err), fault.IsErrQuarantine(err):
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
