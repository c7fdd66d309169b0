// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/reservoir"
)

// result labels
const (
	resultPooled      = "pooled"
	resultRejected    = "rejected"
	resultDuplicate   = "duplicate"
	resultQuarantined = "quarantined"
	resultError       = "error"
)

type metrics struct {
	transactions *prometheus.CounterVec
	blocks       *prometheus.CounterVec
	poolSize     prometheus.GaugeFunc
	quarantine   prometheus.GaugeFunc
	height       prometheus.GaugeFunc
}

func newMetrics(pool *reservoir.Pool, blocks BlockStore) *metrics {
	return &metrics{
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ledgerd",
				Subsystem: "processor",
				Name:      "transactions_total",
				Help:      "Submitted transactions by result",
			},
			[]string{"result"},
		),
		blocks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ledgerd",
				Subsystem: "processor",
				Name:      "blocks_total",
				Help:      "Block operations by kind and result",
			},
			[]string{"operation", "result"},
		),
		poolSize: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "ledgerd",
				Subsystem: "pool",
				Name:      "transactions",
				Help:      "Unconfirmed transactions in the pool",
			},
			func() float64 { return float64(pool.Len()) },
		),
		quarantine: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "ledgerd",
				Subsystem: "pool",
				Name:      "quarantined",
				Help:      "Transactions in the double spend quarantine",
			},
			func() float64 { return float64(pool.QuarantineLen()) },
		),
		height: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "ledgerd",
				Subsystem: "chain",
				Name:      "height",
				Help:      "Height of the last confirmed block",
			},
			func() float64 { return float64(blocks.Height()) },
		),
	}
}

func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.transactions,
		m.blocks,
		m.poolSize,
		m.quarantine,
		m.height,
	}
}

func (m *metrics) transaction(err error) {
	m.transactions.WithLabelValues(resultOf(err)).Inc()
}

func (m *metrics) block(operation string, err error) {
	result := "ok"
	if nil != err {
		result = resultOf(err)
	}
	m.blocks.WithLabelValues(operation, result).Inc()
}

func resultOf(err error) string {
	switch {
	case nil == err:
		return resultPooled
	case fault.IsErrQuarantine(err):
		return resultQuarantined
	case fault.IsErrExists(err):
		return resultDuplicate
	case fault.IsErrStorage(err):
		return resultError
	default:
		return resultRejected
	}
}
