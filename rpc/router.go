// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
)

// Limits - request limiting for a router
type Limits struct {
	MaximumConnections uint64
	RequestRate        float64 // per client per second
	RequestBurst       int
}

// Metrics - where the router registers its collectors and where
// /metrics gathers from, nil disables both
type Metrics struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

type handlers struct {
	log     *logger.L
	engine  Engine
	pool    Pool
	chain   Chain
	version string
	start   time.Time
}

// NewRouter - all client and peer routes
func NewRouter(log *logger.L, engine Engine, pool Pool, chain Chain, version string, limits Limits, metrics Metrics, connections *counter.Counter) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	h := &handlers{
		log:     log,
		engine:  engine,
		pool:    pool,
		chain:   chain,
		version: version,
		start:   time.Now(),
	}

	r := gin.New()
	r.Use(recovery(log))
	r.Use(requestLogger(log))
	if nil != metrics.Registerer {
		r.Use(newHTTPMetrics(metrics.Registerer).middleware())
	}
	if limits.MaximumConnections > 0 {
		r.Use(connectionLimit(connections, limits.MaximumConnections))
	}
	if limits.RequestRate > 0 {
		r.Use(rateLimit(ratelimit.NewClients(limits.RequestRate, limits.RequestBurst)))
	}

	api := r.Group("/api")
	{
		api.GET("/transactions", h.listTransactions)
		api.PUT("/transactions", h.addTransaction)
		api.GET("/transactions/get", h.getTransaction)
		api.GET("/transactions/unconfirmed", h.listUnconfirmed)
		api.GET("/transactions/unconfirmed/get", h.getUnconfirmed)
		api.GET("/accounts/getBalance", h.getBalance)
	}

	peer := r.Group("/peer")
	{
		peer.POST("/processUnconfirmedTransaction", h.processUnconfirmedTransaction)
		peer.POST("/processBlock", h.processBlock)
		peer.GET("/getUnconfirmedTransactions", h.getUnconfirmedTransactions)
		peer.GET("/getUnconfirmedAddresses", h.getUnconfirmedAddresses)
		peer.GET("/getNextBlockIds", h.getNextBlockIDs)
		peer.GET("/getNextBlocks", h.getNextBlocks)
		peer.GET("/getInfo", h.getInfo)
	}

	if nil != metrics.Gatherer {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Gatherer, promhttp.HandlerOpts{})))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "error": "API endpoint not found"})
	})

	return r
}
