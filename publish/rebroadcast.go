// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/processor"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// PoolLister - source of the pooled transactions
type PoolLister interface {
	List(reverse bool) []*transactionrecord.Transaction
}

// periodically announce every pooled transaction again so peers
// that missed the first broadcast eventually receive it
type rebroadcaster struct {
	log      *logger.L
	pool     PoolLister
	notifier processor.Notifier
	interval time.Duration
}

func newRebroadcaster(pool PoolLister, notifier processor.Notifier, interval time.Duration) *rebroadcaster {
	return &rebroadcaster{
		log:      logger.New("rebroadcast"),
		pool:     pool,
		notifier: notifier,
		interval: interval,
	}
}

// Run - background loop
func (r *rebroadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Infof("starting…  interval: %s", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n := r.once()
			r.log.Debugf("rebroadcast: %d transactions", n)
		}
	}
	r.log.Info("stopped")
}

// queue every pooled transaction, oldest first
func (r *rebroadcaster) once() int {
	txs := r.pool.List(false)
	for _, tx := range txs {
		r.notifier.Notify(tx, true)
	}
	return len(txs)
}
