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
	"github.com/bitmark-inc/ledgerd/script"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

type scriptDeployHandler struct {
	noEffects
}

func asScript(tx *transactionrecord.Transaction) *transactionrecord.Script {
	return tx.Asset.(*transactionrecord.Script)
}

func (scriptDeployHandler) Check(tx *transactionrecord.Transaction) error {
	if err := checkNoRecipient(tx); nil != err {
		return err
	}
	return script.CheckDeploy(asScript(tx))
}

func (scriptDeployHandler) Fee(*transactionrecord.Transaction) int64 {
	return scriptDeployFee
}

func (scriptDeployHandler) Validate(context.Context, *Environment, *transactionrecord.Transaction, *account.Account) error {
	return nil
}

// the script is keyed by the deploying transaction
func (scriptDeployHandler) Apply(ctx context.Context, env *Environment, tx *transactionrecord.Transaction, _ *account.Account) error {
	if err := ctx.Err(); nil != err {
		return fault.NewStorageError(err, "script deploy")
	}
	return env.Scripts.Put(tx.ID, asScript(tx))
}

func (scriptDeployHandler) Undo(ctx context.Context, env *Environment, tx *transactionrecord.Transaction, _ *account.Account) error {
	return env.Scripts.Delete(tx.ID)
}

type scriptInvokeHandler struct {
	noEffects
}

func asScriptInvoke(tx *transactionrecord.Transaction) *transactionrecord.ScriptInvoke {
	return tx.Asset.(*transactionrecord.ScriptInvoke)
}

func (scriptInvokeHandler) Check(tx *transactionrecord.Transaction) error {
	invoke := asScriptInvoke(tx)
	if "" == invoke.ScriptID {
		return fault.EmptyScriptID
	}
	if !identity.Valid(invoke.ScriptID) {
		return fault.InvalidTransactionID
	}
	if 0 == len(invoke.Data) {
		return fault.EmptyScriptInput
	}
	return nil
}

func (scriptInvokeHandler) Fee(*transactionrecord.Transaction) int64 {
	return scriptInvokeFee
}

// the stored script is checked again before the input is matched
// against its parameter schema
func (scriptInvokeHandler) Validate(ctx context.Context, env *Environment, tx *transactionrecord.Transaction, _ *account.Account) error {
	invoke := asScriptInvoke(tx)

	if err := ctx.Err(); nil != err {
		return fault.NewStorageError(err, "script lookup")
	}
	s, err := env.Scripts.Get(invoke.ScriptID)
	if nil != err {
		return err
	}
	if err := script.CheckDeploy(s); nil != err {
		return err
	}
	return script.ValidateInput(s.Parameters, invoke.Data)
}

func (scriptInvokeHandler) Apply(context.Context, *Environment, *transactionrecord.Transaction, *account.Account) error {
	return nil
}

func (scriptInvokeHandler) Undo(context.Context, *Environment, *transactionrecord.Transaction, *account.Account) error {
	return nil
}
