// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/delegate"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/reservoir"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
	"github.com/bitmark-inc/ledgerd/typeregistry"
)

// BlockStore - confirmed storage as used by the processor
type BlockStore interface {
	Height() uint64
	GenesisID() string
	Follows(b *block.Block) error
	Commit(b *block.Block) error
	BlockAt(height uint64) (*block.Block, error)
	RemoveLast() (*block.Block, error)
	HasTransaction(id string) (bool, error)
	Blocks(f func(*block.Block) error) error
}

// Notifier - receives every newly pooled transaction
type Notifier interface {
	Notify(tx *transactionrecord.Transaction, relay bool)
}

// Processor - transaction and block pipeline
type Processor struct {
	sync.Mutex

	log      *logger.L
	registry *typeregistry.Registry
	ledger   *ledger.Applier
	pool     *reservoir.Pool
	blocks   BlockStore
	notifier Notifier
	metrics  *metrics
}

// New - create a processor
//
// metrics are registered with reg when it is not nil
func New(registry *typeregistry.Registry, pool *reservoir.Pool, blocks BlockStore, notifier Notifier, reg prometheus.Registerer) *Processor {
	p := &Processor{
		log:      logger.New("processor"),
		registry: registry,
		ledger:   ledger.New(registry),
		pool:     pool,
		blocks:   blocks,
		notifier: notifier,
	}
	p.metrics = newMetrics(pool, blocks)
	if nil != reg {
		reg.MustRegister(p.metrics.collectors()...)
	}
	return p
}

// Pool - the unconfirmed pool, safe for concurrent reads
func (p *Processor) Pool() *reservoir.Pool {
	return p.pool
}

// Now - current time in seconds since the epoch
func (p *Processor) Now() uint32 {
	return p.registry.Environment().Clock.Time()
}

// Account - snapshot of an account by address
func (p *Processor) Account(address string) (account.Account, bool) {
	p.Lock()
	defer p.Unlock()

	a := p.registry.Environment().Accounts.GetByAddress(address)
	if nil == a {
		return account.Account{}, false
	}
	return a.Copy(), true
}

// AccountByPublicKey - snapshot of an account by its key
func (p *Processor) AccountByPublicKey(publicKey []byte) (account.Account, bool) {
	p.Lock()
	defer p.Unlock()

	a := p.registry.Environment().Accounts.GetByPublicKey(publicKey)
	if nil == a {
		return account.Account{}, false
	}
	return a.Copy(), true
}

// Delegates - confirmed delegates
func (p *Processor) Delegates() []delegate.Delegate {
	p.Lock()
	defer p.Unlock()
	return p.registry.Environment().Delegates.List()
}
