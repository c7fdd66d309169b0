// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - balance movements for unconfirmed and confirmed
// transactions
//
// the kind specific side effect is applied first, then the balance;
// a failed balance check reverts the side effect so that no partial
// state remains
package ledger

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
	"github.com/bitmark-inc/ledgerd/typeregistry"
)

// Applier - the four symmetric ledger operations
//
// not safe for concurrent use, callers hold the processor lock
type Applier struct {
	log       *logger.L
	registry  *typeregistry.Registry
	genesisID string
}

// New - create an applier over the registry's environment
func New(registry *typeregistry.Registry) *Applier {
	return &Applier{
		log:      logger.New("ledger"),
		registry: registry,
	}
}

// SetGenesis - transactions carrying this block id are exempt from
// balance checks and may create their sender
func (a *Applier) SetGenesis(blockID string) {
	a.genesisID = blockID
}

// GenesisID - the current genesis block id, empty if not yet known
func (a *Applier) GenesisID() string {
	return a.genesisID
}

// IsGenesis - transaction belongs to the genesis block
func (a *Applier) IsGenesis(tx *transactionrecord.Transaction) bool {
	return "" != a.genesisID && tx.BlockID == a.genesisID
}

func (a *Applier) accounts() *account.Registry {
	return a.registry.Environment().Accounts
}

// Sender - resolve the sending account
//
// genesis transactions create their sender, all others must refer to
// an existing account
func (a *Applier) Sender(tx *transactionrecord.Transaction) (*account.Account, error) {
	sender := a.accounts().GetByPublicKey(tx.SenderPublicKey)
	if nil != sender {
		return sender, nil
	}
	if a.IsGenesis(tx) {
		return a.accounts().GetOrCreateByPublicKey(tx.SenderPublicKey), nil
	}
	return nil, fault.SenderNotFound
}

// ApplyUnconfirmed - side effect then debit the unconfirmed balance
func (a *Applier) ApplyUnconfirmed(tx *transactionrecord.Transaction) error {
	sender, err := a.Sender(tx)
	if nil != err {
		return err
	}

	if sender.SecondSignature && 0 == len(tx.SecondSignature) {
		return fault.MissingSecondSignature
	}

	total, ok := tx.Total()
	if !ok {
		return fault.InvalidTransactionFee
	}

	err = a.registry.ApplyUnconfirmed(tx, sender)
	if nil != err {
		return err
	}

	if sender.UnconfirmedBalance < total && !a.IsGenesis(tx) {
		_ = a.registry.UndoUnconfirmed(tx, sender)
		a.log.Debugf("insufficient unconfirmed balance: %s  has: %d  needs: %d", sender.Address, sender.UnconfirmedBalance, total)
		return fault.InsufficientBalance
	}

	sender.UnconfirmedBalance -= total
	if nil == sender.PublicKey {
		sender.PublicKey = append([]byte(nil), tx.SenderPublicKey...)
	}
	return nil
}

// UndoUnconfirmed - credit the unconfirmed balance then reverse the
// side effect
func (a *Applier) UndoUnconfirmed(tx *transactionrecord.Transaction) error {
	sender, err := a.Sender(tx)
	if nil != err {
		return err
	}
	total, ok := tx.Total()
	if !ok {
		return fault.InvalidTransactionFee
	}
	sender.UnconfirmedBalance += total
	return a.registry.UndoUnconfirmed(tx, sender)
}

// Apply - confirmed debit of the sender and permanent side effect
func (a *Applier) Apply(ctx context.Context, tx *transactionrecord.Transaction) error {
	sender, err := a.Sender(tx)
	if nil != err {
		return err
	}
	total, ok := tx.Total()
	if !ok {
		return fault.InvalidTransactionFee
	}
	if sender.Balance < total && !a.IsGenesis(tx) {
		a.log.Debugf("insufficient balance: %s  has: %d  needs: %d", sender.Address, sender.Balance, total)
		return fault.InsufficientBalance
	}

	err = a.registry.Apply(ctx, tx, sender)
	if nil != err {
		return err
	}
	sender.Balance -= total
	return nil
}

// Undo - reverse Apply for a reorganisation
func (a *Applier) Undo(ctx context.Context, tx *transactionrecord.Transaction) error {
	sender, err := a.Sender(tx)
	if nil != err {
		return err
	}
	total, ok := tx.Total()
	if !ok {
		return fault.InvalidTransactionFee
	}

	err = a.registry.Undo(ctx, tx, sender)
	if nil != err {
		return err
	}
	sender.Balance += total
	return nil
}
