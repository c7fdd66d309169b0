// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"context"

	"github.com/bitmark-inc/ledgerd/reservoir"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// remove every pooled transaction from the unconfirmed balances,
// newest first, and return them oldest first
//
// the entries stay in the pool
func (p *Processor) undoPool() []*transactionrecord.Transaction {
	txs := p.pool.List(true)
	for _, tx := range txs {
		if err := p.ledger.UndoUnconfirmed(tx); nil != err {
			p.log.Criticalf("pool transaction: %s  undo error: %s", tx.ID, err)
		}
	}
	for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
		txs[i], txs[j] = txs[j], txs[i]
	}
	return txs
}

// re-apply transactions still in the pool, quarantining any that no
// longer fit
func (p *Processor) applyPool(txs []*transactionrecord.Transaction) {
	for _, tx := range txs {
		if !p.pool.Has(tx.ID) {
			continue
		}
		if err := p.ledger.ApplyUnconfirmed(tx); nil != err {
			p.log.Warnf("pool transaction: %s  quarantined: %s", tx.ID, err)
			p.pool.Quarantine(tx)
		}
	}
}

// SavePool - write the pool and quarantine to a backup file
func (p *Processor) SavePool(filename string) error {
	p.Lock()
	defer p.Unlock()

	p.pool.Compact()
	err := p.pool.SaveToFile(filename)
	if nil != err {
		p.log.Errorf("save pool: %s  error: %s", filename, err)
		return err
	}
	p.log.Infof("saved pool: %s  transactions: %d  quarantined: %d", filename, p.pool.Len(), p.pool.QuarantineLen())
	return nil
}

// RestorePool - reload a backup
//
// quarantined entries are restored directly, pooled transactions are
// processed again, those that fail are logged and dropped
func (p *Processor) RestorePool(ctx context.Context, backup *reservoir.Backup) int {
	p.Lock()
	for _, tx := range backup.Quarantined {
		p.pool.Quarantine(tx)
	}
	p.Unlock()

	restored := 0
	for _, tx := range backup.Transactions {
		if _, err := p.ProcessTransaction(ctx, tx, false); nil != err {
			p.log.Infof("restore transaction: %s  dropped: %s", tx.ID, err)
			continue
		}
		restored += 1
	}
	p.log.Infof("restored: %d of %d transactions", restored, len(backup.Transactions))
	return restored
}
