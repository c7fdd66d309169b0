// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package typeregistry

import (
	"context"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identity"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// fees
const (
	minimumPaymentFee  = 10
	paymentFeeDivisor  = 1000
	secondSignatureFee = 500
	delegateFee        = 10000
	voteFee            = 100
	scriptDeployFee    = 1000
	scriptInvokeFee    = 10
	usernameFee        = 100
)

type paymentHandler struct {
	noEffects
}

func (paymentHandler) Check(tx *transactionrecord.Transaction) error {
	if "" == tx.RecipientID {
		return fault.RecipientRequired
	}
	if _, err := identity.ParseAddress(tx.RecipientID); nil != err {
		return fault.IncorrectRecipient
	}
	return nil
}

// one tenth of one percent with a minimum
func (paymentHandler) Fee(tx *transactionrecord.Transaction) int64 {
	fee := tx.Amount / paymentFeeDivisor
	if fee < minimumPaymentFee {
		return minimumPaymentFee
	}
	return fee
}

func (paymentHandler) Validate(context.Context, *Environment, *transactionrecord.Transaction, *account.Account) error {
	return nil
}

func (paymentHandler) Apply(_ context.Context, env *Environment, tx *transactionrecord.Transaction, _ *account.Account) error {
	recipient := env.Accounts.GetOrCreateByAddress(tx.RecipientID)
	recipient.Balance += tx.Amount
	recipient.UnconfirmedBalance += tx.Amount
	return nil
}

func (paymentHandler) Undo(_ context.Context, env *Environment, tx *transactionrecord.Transaction, _ *account.Account) error {
	recipient := env.Accounts.GetOrCreateByAddress(tx.RecipientID)
	recipient.Balance -= tx.Amount
	recipient.UnconfirmedBalance -= tx.Amount
	return nil
}
