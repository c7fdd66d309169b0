// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package typeregistry

import (
	"context"
	"encoding/hex"
	"unicode/utf8"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

const maximumDelegateNameLength = 20

type delegateHandler struct{}

func asDelegate(tx *transactionrecord.Transaction) *transactionrecord.Delegate {
	return tx.Asset.(*transactionrecord.Delegate)
}

// the sender account may not carry its key yet if it has only received
func delegateKey(tx *transactionrecord.Transaction) string {
	return hex.EncodeToString(tx.SenderPublicKey)
}

func (delegateHandler) Check(tx *transactionrecord.Transaction) error {
	if err := checkNoRecipient(tx); nil != err {
		return err
	}
	if n := utf8.RuneCountInString(asDelegate(tx).Username); 0 == n || n > maximumDelegateNameLength {
		return fault.IncorrectDelegateNameLength
	}
	return nil
}

func (delegateHandler) Fee(*transactionrecord.Transaction) int64 {
	return delegateFee
}

// delegate names and usernames share one namespace
func (delegateHandler) Validate(_ context.Context, env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	name := asDelegate(tx).Username
	if env.Delegates.ExistsName(name) || env.Usernames.ExistsName(name) {
		return fault.NameAlreadyRegistered
	}
	if env.Delegates.ExistsDelegate(delegateKey(tx)) {
		return fault.DelegateAlreadyRegistered
	}
	return nil
}

func (delegateHandler) ApplyUnconfirmed(env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	name := asDelegate(tx).Username
	key := delegateKey(tx)
	if env.Delegates.UnconfirmedDelegate(key) {
		return fault.DelegateAlreadyRegistered
	}
	if env.Delegates.UnconfirmedName(name) || env.Usernames.UnconfirmedName(name) {
		return fault.NameAlreadyRegistered
	}
	env.Delegates.AddUnconfirmed(name, key)
	return nil
}

func (delegateHandler) UndoUnconfirmed(env *Environment, tx *transactionrecord.Transaction, sender *account.Account) {
	env.Delegates.RemoveUnconfirmed(asDelegate(tx).Username, delegateKey(tx))
}

func (delegateHandler) Apply(_ context.Context, env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	name := asDelegate(tx).Username
	key := delegateKey(tx)
	env.Delegates.RemoveUnconfirmed(name, key)
	env.Delegates.Cache(name, key)
	return nil
}

func (delegateHandler) Undo(_ context.Context, env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	name := asDelegate(tx).Username
	key := delegateKey(tx)
	env.Delegates.Uncache(name, key)
	env.Delegates.AddUnconfirmed(name, key)
	return nil
}
