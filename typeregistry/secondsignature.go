// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package typeregistry

import (
	"context"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

type secondSignatureHandler struct{}

func asSecondSignature(tx *transactionrecord.Transaction) *transactionrecord.SecondSignature {
	return tx.Asset.(*transactionrecord.SecondSignature)
}

func (secondSignatureHandler) Check(tx *transactionrecord.Transaction) error {
	if err := checkNoRecipient(tx); nil != err {
		return err
	}
	if len(asSecondSignature(tx).PublicKey) != ed25519.PublicKeySize {
		return fault.InvalidPublicKey
	}
	return nil
}

func (secondSignatureHandler) Fee(*transactionrecord.Transaction) int64 {
	return secondSignatureFee
}

func (secondSignatureHandler) Validate(_ context.Context, _ *Environment, _ *transactionrecord.Transaction, sender *account.Account) error {
	if sender.SecondSignature || sender.UnconfirmedSignature {
		return fault.SecondSignatureAlreadyExists
	}
	return nil
}

func (secondSignatureHandler) ApplyUnconfirmed(_ *Environment, _ *transactionrecord.Transaction, sender *account.Account) error {
	if sender.SecondSignature || sender.UnconfirmedSignature {
		return fault.SecondSignatureAlreadyExists
	}
	sender.UnconfirmedSignature = true
	return nil
}

func (secondSignatureHandler) UndoUnconfirmed(_ *Environment, _ *transactionrecord.Transaction, sender *account.Account) {
	sender.UnconfirmedSignature = false
}

func (secondSignatureHandler) Apply(_ context.Context, _ *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	sender.UnconfirmedSignature = false
	sender.SecondSignature = true
	sender.SecondPublicKey = append([]byte(nil), asSecondSignature(tx).PublicKey...)
	return nil
}

// the registration returns to the pending state
func (secondSignatureHandler) Undo(_ context.Context, _ *Environment, _ *transactionrecord.Transaction, sender *account.Account) error {
	sender.SecondSignature = false
	sender.UnconfirmedSignature = true
	sender.SecondPublicKey = nil
	return nil
}
