// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package typeregistry

import (
	"context"
	"unicode/utf8"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

const maximumUsernameLength = 16

type usernameHandler struct{}

func asUsername(tx *transactionrecord.Transaction) *transactionrecord.Username {
	return tx.Asset.(*transactionrecord.Username)
}

func (usernameHandler) Check(tx *transactionrecord.Transaction) error {
	if err := checkNoRecipient(tx); nil != err {
		return err
	}
	if n := utf8.RuneCountInString(asUsername(tx).Username); 0 == n || n > maximumUsernameLength {
		return fault.IncorrectUsernameLength
	}
	return nil
}

func (usernameHandler) Fee(*transactionrecord.Transaction) int64 {
	return usernameFee
}

func (usernameHandler) Validate(_ context.Context, env *Environment, tx *transactionrecord.Transaction, _ *account.Account) error {
	name := asUsername(tx).Username
	if env.Delegates.ExistsName(name) || env.Usernames.ExistsName(name) {
		return fault.NameAlreadyRegistered
	}
	return nil
}

func (usernameHandler) ApplyUnconfirmed(env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	name := asUsername(tx).Username
	if env.Delegates.UnconfirmedName(name) || env.Usernames.UnconfirmedName(name) {
		return fault.NameAlreadyRegistered
	}
	env.Usernames.AddUnconfirmed(name, sender.Address)
	return nil
}

func (usernameHandler) UndoUnconfirmed(env *Environment, tx *transactionrecord.Transaction, _ *account.Account) {
	env.Usernames.RemoveUnconfirmed(asUsername(tx).Username)
}

func (usernameHandler) Apply(_ context.Context, env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	name := asUsername(tx).Username
	env.Usernames.RemoveUnconfirmed(name)
	env.Usernames.Cache(name, sender.Address)
	return nil
}

func (usernameHandler) Undo(_ context.Context, env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	name := asUsername(tx).Username
	env.Usernames.Uncache(name)
	env.Usernames.AddUnconfirmed(name, sender.Address)
	return nil
}
