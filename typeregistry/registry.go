// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package typeregistry - the rules for each transaction kind
//
// Every kind has a handler.  Check is stateless and may run
// concurrently; all other operations read or mutate shared registries
// and must be called by the single transaction processor.
package typeregistry

import (
	"context"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/delegate"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/slot"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
	"github.com/bitmark-inc/ledgerd/username"
)

// MaximumAmount - largest transferable amount
const MaximumAmount = 10000000000000000

// ScriptStore - deployed scripts
type ScriptStore interface {
	Get(id string) (*transactionrecord.Script, error)
	Put(id string, script *transactionrecord.Script) error
	Delete(id string) error
}

// Environment - the shared state visible to handlers
type Environment struct {
	Accounts  *account.Registry
	Delegates *delegate.Registry
	Usernames *username.Registry
	Scripts   ScriptStore
	Clock     *slot.Clock
}

// Handler - rules for one kind
//
// ApplyUnconfirmed performs only the kind specific side effect, the
// balance is handled by the caller which calls UndoUnconfirmed if the
// balance turns out to be insufficient
type Handler interface {
	Check(tx *transactionrecord.Transaction) error
	Fee(tx *transactionrecord.Transaction) int64
	Validate(ctx context.Context, env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error
	ApplyUnconfirmed(env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error
	UndoUnconfirmed(env *Environment, tx *transactionrecord.Transaction, sender *account.Account)
	Apply(ctx context.Context, env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error
	Undo(ctx context.Context, env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error
}

// Registry - kind to handler table
type Registry struct {
	env      *Environment
	handlers [transactionrecord.InvalidKind]Handler
}

// New - registry with every known kind
func New(env *Environment) *Registry {
	r := &Registry{
		env: env,
	}
	r.Register(transactionrecord.PaymentKind, paymentHandler{})
	r.Register(transactionrecord.SecondSignatureKind, secondSignatureHandler{})
	r.Register(transactionrecord.DelegateKind, delegateHandler{})
	r.Register(transactionrecord.VoteKind, voteHandler{})
	r.Register(transactionrecord.ScriptDeployKind, scriptDeployHandler{})
	r.Register(transactionrecord.ScriptInvokeKind, scriptInvokeHandler{})
	r.Register(transactionrecord.UsernameKind, usernameHandler{})
	return r
}

// Register - install or replace a handler
func (r *Registry) Register(kind transactionrecord.Kind, handler Handler) {
	if kind.Valid() {
		r.handlers[kind] = handler
	}
}

// Environment - the shared state given to handlers
func (r *Registry) Environment() *Environment {
	return r.env
}

// Handler - lookup by kind
func (r *Registry) Handler(kind transactionrecord.Kind) (Handler, error) {
	if !kind.Valid() || nil == r.handlers[kind] {
		return nil, fault.UnknownTransactionType
	}
	return r.handlers[kind], nil
}

// Check - structural checks that need no shared state
func (r *Registry) Check(tx *transactionrecord.Transaction) error {
	handler, err := r.Handler(tx.Kind)
	if nil != err {
		return err
	}
	if nil == tx.Asset {
		return fault.EmptyTransactionAsset
	}
	if tx.Asset.Kind() != tx.Kind {
		return fault.AssetKindMismatch
	}
	if tx.Amount < 0 || tx.Amount > MaximumAmount {
		return fault.InvalidAmount
	}
	return handler.Check(tx)
}

// Fee - the fee due for a transaction
func (r *Registry) Fee(tx *transactionrecord.Transaction) (int64, error) {
	handler, err := r.Handler(tx.Kind)
	if nil != err {
		return 0, err
	}
	return handler.Fee(tx), nil
}

// Verify - checks against the current state, sets the fee
//
// the primary signature is expected to have been verified already
func (r *Registry) Verify(ctx context.Context, tx *transactionrecord.Transaction, sender *account.Account) error {
	handler, err := r.Handler(tx.Kind)
	if nil != err {
		return err
	}

	if sender.SecondSignature {
		if 0 == len(tx.SecondSignature) {
			return fault.MissingSecondSignature
		}
		if !tx.VerifySecond(sender.SecondPublicKey) {
			return fault.InvalidSecondSignature
		}
	}

	tx.Fee = handler.Fee(tx)
	if _, ok := tx.Total(); !ok {
		return fault.InvalidTransactionFee
	}

	if r.env.Clock.IsFuture(tx.Timestamp) {
		return fault.InvalidTimestamp
	}

	return handler.Validate(ctx, r.env, tx, sender)
}

// ApplyUnconfirmed - kind side effect for a pooled transaction
func (r *Registry) ApplyUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	handler, err := r.Handler(tx.Kind)
	if nil != err {
		return err
	}
	return handler.ApplyUnconfirmed(r.env, tx, sender)
}

// UndoUnconfirmed - reverse ApplyUnconfirmed
func (r *Registry) UndoUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	handler, err := r.Handler(tx.Kind)
	if nil != err {
		return err
	}
	handler.UndoUnconfirmed(r.env, tx, sender)
	return nil
}

// Apply - kind side effect for a confirmed transaction
func (r *Registry) Apply(ctx context.Context, tx *transactionrecord.Transaction, sender *account.Account) error {
	handler, err := r.Handler(tx.Kind)
	if nil != err {
		return err
	}
	return handler.Apply(ctx, r.env, tx, sender)
}

// Undo - reverse Apply
func (r *Registry) Undo(ctx context.Context, tx *transactionrecord.Transaction, sender *account.Account) error {
	handler, err := r.Handler(tx.Kind)
	if nil != err {
		return err
	}
	return handler.Undo(ctx, r.env, tx, sender)
}

// no side effects
type noEffects struct{}

func (noEffects) ApplyUnconfirmed(*Environment, *transactionrecord.Transaction, *account.Account) error {
	return nil
}

func (noEffects) UndoUnconfirmed(*Environment, *transactionrecord.Transaction, *account.Account) {}

// no recipient allowed
func checkNoRecipient(tx *transactionrecord.Transaction) error {
	if "" != tx.RecipientID {
		return fault.IncorrectRecipient
	}
	return nil
}
