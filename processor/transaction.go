// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"context"
	"encoding/hex"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// ProcessTransaction - validate, apply to the unconfirmed balances and
// pool a transaction, returns its id
//
// a transaction that validates but cannot be applied is quarantined
// and fault.CannotApplyTransaction is returned
func (p *Processor) ProcessTransaction(ctx context.Context, tx *transactionrecord.Transaction, relay bool) (string, error) {
	err := p.prepare(tx)
	if nil == err {
		p.Lock()
		err = p.process(ctx, tx, relay)
		p.Unlock()
	}
	p.metrics.transaction(err)
	if nil != err {
		return "", err
	}
	return tx.ID, nil
}

// ReceiveTransactions - process a list in order, stopping at the
// first failure
func (p *Processor) ReceiveTransactions(ctx context.Context, txs []*transactionrecord.Transaction, relay bool) error {
	for _, tx := range txs {
		if _, err := p.ProcessTransaction(ctx, tx, relay); nil != err {
			return err
		}
	}
	return nil
}

// checks that need no shared state
func (p *Processor) prepare(tx *transactionrecord.Transaction) error {
	id, err := tx.ComputeID()
	if nil != err {
		return err
	}
	if "" != tx.ID && id != tx.ID {
		return fault.InvalidTransactionID
	}
	tx.ID = id

	if err := p.registry.Check(tx); nil != err {
		p.log.Debugf("transaction: %s  check failed: %s", id, err)
		return err
	}

	if !tx.Verify() {
		p.log.Debugf("transaction: %s  bad signature: %s  key: %s", id, hex.EncodeToString(tx.Signature), hex.EncodeToString(tx.SenderPublicKey))
		return fault.InvalidSignature
	}
	return nil
}

// the serialised section, lock must be held
func (p *Processor) process(ctx context.Context, tx *transactionrecord.Transaction, relay bool) error {
	tx.BlockID = ""
	tx.Height = 0
	tx.Confirmations = 0

	confirmed, err := p.blocks.HasTransaction(tx.ID)
	if nil != err {
		p.log.Errorf("transaction: %s  confirmed lookup error: %s", tx.ID, err)
		return err
	}
	if confirmed {
		return fault.TransactionAlreadyConfirmed
	}
	if p.pool.Has(tx.ID) || p.pool.IsQuarantined(tx.ID) {
		return fault.TransactionAlreadyExists
	}

	sender, err := p.ledger.Sender(tx)
	if nil != err {
		return err
	}
	tx.SenderID = sender.Address

	if err := p.registry.Verify(ctx, tx, sender); nil != err {
		p.log.Debugf("transaction: %s  rejected: %s", tx.ID, err)
		return err
	}

	if err := p.ledger.ApplyUnconfirmed(tx); nil != err {
		p.log.Warnf("transaction: %s  quarantined: %s", tx.ID, err)
		p.pool.Quarantine(tx)
		return fault.CannotApplyTransaction
	}

	if err := p.pool.Add(tx); nil != err {
		p.log.Criticalf("transaction: %s  pool add after apply: %s", tx.ID, err)
		_ = p.ledger.UndoUnconfirmed(tx)
		return err
	}

	p.log.Infof("transaction: %s  pooled  sender: %s", tx.ID, tx.SenderID)
	if nil != p.notifier {
		p.notifier.Notify(tx, relay)
	}
	return nil
}
