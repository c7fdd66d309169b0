// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"context"

	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// removed pool markers tolerated before positions are reclaimed
const compactThreshold = 4096

// ProcessBlock - apply a delivered block to the confirmed ledger
//
// the pool is unwound first so every transaction in the block is
// validated against confirmed state, on any failure all changes are
// rolled back and the pool is restored
func (p *Processor) ProcessBlock(ctx context.Context, b *block.Block) error {
	err := p.processBlock(ctx, b)
	p.metrics.block("apply", err)
	return err
}

func (p *Processor) processBlock(ctx context.Context, b *block.Block) error {
	if err := b.Check(); nil != err {
		return err
	}

	p.Lock()
	defer p.Unlock()

	if err := p.blocks.Follows(b); nil != err {
		return err
	}

	for _, tx := range b.Transactions {
		if err := p.registry.Check(tx); nil != err {
			return err
		}
		if !tx.Verify() {
			p.log.Debugf("block: %d  transaction: %s  bad signature", b.Height, tx.ID)
			return fault.InvalidSignature
		}
		confirmed, err := p.blocks.HasTransaction(tx.ID)
		if nil != err {
			return err
		}
		if confirmed {
			return fault.TransactionAlreadyConfirmed
		}
	}

	previousGenesis := p.ledger.GenesisID()
	if b.IsGenesis() {
		p.ledger.SetGenesis(b.ID)
	}

	pooled := p.undoPool()

	applied, err := p.applyConfirmed(ctx, b.Transactions, true)
	if nil == err {
		err = p.blocks.Commit(b)
		if nil != err {
			p.log.Errorf("block: %d  commit error: %s", b.Height, err)
		}
	}
	if nil != err {
		if _, e := p.undoConfirmed(ctx, applied); nil != e {
			p.log.Criticalf("block: %d  cannot roll back: %s", b.Height, e)
		}
		p.ledger.SetGenesis(previousGenesis)
		p.applyPool(pooled)
		return err
	}

	for _, tx := range b.Transactions {
		p.pool.Remove(tx.ID)
	}
	p.applyPool(pooled)
	if p.pool.Removed() >= compactThreshold {
		p.log.Debugf("compacting pool: %d removed", p.pool.Removed())
		p.pool.Compact()
	}

	p.log.Infof("block: %d  id: %s  applied: %d transactions", b.Height, b.ID, len(b.Transactions))
	return nil
}

// UndoBlock - remove the last block, its transactions are returned to
// the pipeline for re-validation
func (p *Processor) UndoBlock(ctx context.Context) (*block.Block, error) {
	b, err := p.undoBlock(ctx)
	p.metrics.block("undo", err)
	return b, err
}

func (p *Processor) undoBlock(ctx context.Context) (*block.Block, error) {
	p.Lock()
	defer p.Unlock()

	height := p.blocks.Height()
	if 0 == height {
		return nil, fault.BlockNotFound
	}
	if block.GenesisHeight == height {
		return nil, fault.CannotUndoGenesis
	}

	b, err := p.blocks.BlockAt(height)
	if nil != err {
		return nil, err
	}

	pooled := p.undoPool()

	undone, err := p.undoConfirmed(ctx, b.Transactions)
	if nil == err {
		_, err = p.blocks.RemoveLast()
	}
	if nil != err {
		p.log.Errorf("block: %d  undo error: %s", height, err)
		if _, e := p.applyConfirmed(ctx, b.Transactions[len(b.Transactions)-undone:], false); nil != e {
			p.log.Criticalf("block: %d  cannot restore after failed undo: %s", height, e)
		}
		p.applyPool(pooled)
		return nil, err
	}

	p.applyPool(pooled)

	for _, tx := range b.Transactions {
		err := p.prepare(tx)
		if nil == err {
			err = p.process(ctx, tx, true)
		}
		if nil != err {
			p.log.Debugf("block: %d  transaction: %s  not returned to pool: %s", height, tx.ID, err)
		}
	}

	p.log.Infof("block: %d  id: %s  undone", height, b.ID)
	return b, nil
}

// apply each transaction to both balances, returns the ones fully
// applied so a failure can be rolled back
func (p *Processor) applyConfirmed(ctx context.Context, txs []*transactionrecord.Transaction, verify bool) ([]*transactionrecord.Transaction, error) {
	applied := make([]*transactionrecord.Transaction, 0, len(txs))
	for _, tx := range txs {
		if verify {
			sender, err := p.ledger.Sender(tx)
			if nil != err {
				return applied, err
			}
			if err := p.registry.Verify(ctx, tx, sender); nil != err {
				p.log.Debugf("block transaction: %s  rejected: %s", tx.ID, err)
				return applied, err
			}
		}

		if err := p.ledger.ApplyUnconfirmed(tx); nil != err {
			return applied, err
		}
		if err := p.ledger.Apply(ctx, tx); nil != err {
			_ = p.ledger.UndoUnconfirmed(tx)
			return applied, err
		}
		applied = append(applied, tx)
	}
	return applied, nil
}

// reverse applyConfirmed newest first, returns the number of
// transactions undone, always a suffix of the list
func (p *Processor) undoConfirmed(ctx context.Context, txs []*transactionrecord.Transaction) (int, error) {
	n := 0
	for i := len(txs) - 1; i >= 0; i -= 1 {
		tx := txs[i]
		if err := p.ledger.Undo(ctx, tx); nil != err {
			return n, err
		}
		if err := p.ledger.UndoUnconfirmed(tx); nil != err {
			_ = p.ledger.Apply(ctx, tx)
			return n, err
		}
		n += 1
	}
	return n, nil
}
