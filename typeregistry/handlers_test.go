// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package typeregistry_test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

func TestPaymentApplyUndo(t *testing.T) {
	r := newRegistry()
	sender := funded(r)
	ctx := context.Background()

	tx := newTransaction(transactionrecord.PaymentKind, &transactionrecord.Payment{})
	tx.RecipientID = otherKey.Address()
	tx.Amount = 50

	err := r.Apply(ctx, tx, sender)
	assert.Nil(t, err, "apply")
	recipient := r.Environment().Accounts.GetByAddress(otherKey.Address())
	assert.Equal(t, int64(50), recipient.Balance, "recipient balance")
	assert.Equal(t, int64(50), recipient.UnconfirmedBalance, "recipient unconfirmed")

	err = r.Undo(ctx, tx, sender)
	assert.Nil(t, err, "undo")
	assert.Equal(t, int64(0), recipient.Balance, "recipient balance after undo")
	assert.Equal(t, int64(0), recipient.UnconfirmedBalance, "recipient unconfirmed after undo")
}

func TestSecondSignatureLifecycle(t *testing.T) {
	r := newRegistry()
	sender := funded(r)
	ctx := context.Background()

	tx := newTransaction(transactionrecord.SecondSignatureKind, &transactionrecord.SecondSignature{PublicKey: []byte(secondKey.PublicKey)})
	assert.Nil(t, r.Check(tx), "check")
	assert.Nil(t, r.Verify(ctx, tx, sender), "verify")

	assert.Nil(t, r.ApplyUnconfirmed(tx, sender), "apply unconfirmed")
	assert.True(t, sender.UnconfirmedSignature, "pending flag")

	// a second registration is refused while one is pending
	assert.Equal(t, fault.SecondSignatureAlreadyExists, r.Verify(ctx, tx, sender), "pending verify")
	assert.Equal(t, fault.SecondSignatureAlreadyExists, r.ApplyUnconfirmed(tx, sender), "pending apply")

	assert.Nil(t, r.Apply(ctx, tx, sender), "apply")
	assert.True(t, sender.SecondSignature, "active")
	assert.False(t, sender.UnconfirmedSignature, "pending cleared")
	assert.Equal(t, []byte(secondKey.PublicKey), sender.SecondPublicKey, "key stored")

	assert.Nil(t, r.Undo(ctx, tx, sender), "undo")
	assert.False(t, sender.SecondSignature, "inactive after undo")
	assert.True(t, sender.UnconfirmedSignature, "pending after undo")

	assert.Nil(t, r.UndoUnconfirmed(tx, sender), "undo unconfirmed")
	assert.False(t, sender.UnconfirmedSignature, "clear after undo unconfirmed")

	bad := newTransaction(transactionrecord.SecondSignatureKind, &transactionrecord.SecondSignature{PublicKey: []byte{1, 2}})
	assert.Equal(t, fault.InvalidPublicKey, r.Check(bad), "short key")
}

func TestDelegateAndUsernameShareNames(t *testing.T) {
	r := newRegistry()
	sender := funded(r)
	ctx := context.Background()

	d := newTransaction(transactionrecord.DelegateKind, &transactionrecord.Delegate{Username: "alice"})
	assert.Nil(t, r.Check(d), "check delegate")
	assert.Nil(t, r.Verify(ctx, d, sender), "verify delegate")
	assert.Nil(t, r.ApplyUnconfirmed(d, sender), "reserve delegate")

	u := newTransaction(transactionrecord.UsernameKind, &transactionrecord.Username{Username: "ALICE"})
	assert.Nil(t, r.Check(u), "check username")
	assert.Equal(t, fault.NameAlreadyRegistered, r.ApplyUnconfirmed(u, sender), "reserved name")

	assert.Nil(t, r.Apply(ctx, d, sender), "confirm delegate")
	assert.Equal(t, fault.NameAlreadyRegistered, r.Verify(ctx, u, sender), "registered name")
	assert.Equal(t, fault.DelegateAlreadyRegistered, func() error {
		again := newTransaction(transactionrecord.DelegateKind, &transactionrecord.Delegate{Username: "bob"})
		return r.Verify(ctx, again, sender)
	}(), "already a delegate")

	assert.Nil(t, r.Undo(ctx, d, sender), "undo delegate")
	assert.False(t, r.Environment().Delegates.ExistsName("alice"), "name still confirmed")
	assert.True(t, r.Environment().Delegates.UnconfirmedName("alice"), "reservation not restored")

	long := newTransaction(transactionrecord.DelegateKind, &transactionrecord.Delegate{Username: "abcdefghijklmnopqrstu"})
	assert.Equal(t, fault.IncorrectDelegateNameLength, r.Check(long), "delegate name too long")

	longUser := newTransaction(transactionrecord.UsernameKind, &transactionrecord.Username{Username: "abcdefghijklmnopq"})
	assert.Equal(t, fault.IncorrectUsernameLength, r.Check(longUser), "username too long")

	withRecipient := newTransaction(transactionrecord.UsernameKind, &transactionrecord.Username{Username: "carol"})
	withRecipient.RecipientID = otherKey.Address()
	assert.Equal(t, fault.IncorrectRecipient, r.Check(withRecipient), "username with recipient")
}

func TestVoteRules(t *testing.T) {
	r := newRegistry()
	sender := funded(r)
	ctx := context.Background()

	delegateKey := otherKey.PublicKeyHex()

	vote := newTransaction(transactionrecord.VoteKind, &transactionrecord.Vote{Votes: []string{"+" + delegateKey}})
	vote.RecipientID = senderKey.Address()
	assert.Nil(t, r.Check(vote), "check")

	assert.Equal(t, fault.DelegateNotFound, r.Verify(ctx, vote, sender), "unknown delegate")

	r.Environment().Delegates.Cache("other", delegateKey)
	assert.Nil(t, r.Verify(ctx, vote, sender), "known delegate")

	assert.Nil(t, r.ApplyUnconfirmed(vote, sender), "apply unconfirmed")
	assert.Equal(t, fault.DuplicateVote, r.Verify(ctx, vote, sender), "pending duplicate")

	unvote := newTransaction(transactionrecord.VoteKind, &transactionrecord.Vote{Votes: []string{"-" + delegateKey}})
	unvote.RecipientID = senderKey.Address()
	assert.Equal(t, fault.VoteNotFound, r.Verify(ctx, unvote, sender), "remove unconfirmed-only vote")

	assert.Nil(t, r.Apply(ctx, vote, sender), "apply")
	assert.Nil(t, r.Verify(ctx, unvote, sender), "remove confirmed vote")

	assert.Nil(t, r.Undo(ctx, vote, sender), "undo")
	assert.Equal(t, 0, len(sender.Delegates), "confirmed list after undo")

	wrongRecipient := newTransaction(transactionrecord.VoteKind, &transactionrecord.Vote{Votes: []string{"+" + delegateKey}})
	wrongRecipient.RecipientID = otherKey.Address()
	assert.Equal(t, fault.IncorrectRecipient, r.Check(wrongRecipient), "recipient not sender")

	malformed := newTransaction(transactionrecord.VoteKind, &transactionrecord.Vote{Votes: []string{"*" + delegateKey}})
	malformed.RecipientID = senderKey.Address()
	assert.Equal(t, fault.InvalidVote, r.Check(malformed), "bad prefix")

	twice := newTransaction(transactionrecord.VoteKind, &transactionrecord.Vote{Votes: []string{"+" + delegateKey, "-" + delegateKey}})
	twice.RecipientID = senderKey.Address()
	assert.Equal(t, fault.DuplicateVote, r.Check(twice), "same delegate twice")
}

func TestScriptDeployAndInvoke(t *testing.T) {
	r := newRegistry()
	sender := funded(r)
	ctx := context.Background()

	deploy := newTransaction(transactionrecord.ScriptDeployKind, &transactionrecord.Script{
		Code:       []byte("return 1"),
		Parameters: []byte(`{"type":"object","required":["n"]}`),
		Name:       "one",
	})
	assert.Nil(t, r.Check(deploy), "check deploy")
	assert.Nil(t, r.Verify(ctx, deploy, sender), "verify deploy")

	invoke := newTransaction(transactionrecord.ScriptInvokeKind, &transactionrecord.ScriptInvoke{
		ScriptID: deploy.ID,
		Data:     []byte(`{"n":1}`),
	})
	assert.Nil(t, r.Check(invoke), "check invoke")
	assert.Equal(t, fault.ScriptNotFound, r.Verify(ctx, invoke, sender), "before deploy")

	assert.Nil(t, r.Apply(ctx, deploy, sender), "apply deploy")
	assert.Nil(t, r.Verify(ctx, invoke, sender), "after deploy")

	wrongInput := newTransaction(transactionrecord.ScriptInvokeKind, &transactionrecord.ScriptInvoke{
		ScriptID: deploy.ID,
		Data:     []byte(`{"m":1}`),
	})
	err := r.Verify(ctx, wrongInput, sender)
	assert.True(t, fault.IsErrInvalid(err), "input not matching schema: %v", err)

	// a corrupted stored script is caught at invoke time
	stored, _ := r.Environment().Scripts.Get(deploy.ID)
	stored.Code = []byte("local = =")
	assert.Equal(t, fault.InvalidScriptCode, r.Verify(ctx, invoke, sender), "corrupt script")

	assert.Nil(t, r.Undo(ctx, deploy, sender), "undo deploy")
	_, err = r.Environment().Scripts.Get(deploy.ID)
	assert.Equal(t, fault.ScriptNotFound, err, "script after undo")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err = r.Verify(cancelled, invoke, sender)
	assert.True(t, fault.IsErrStorage(err), "cancelled lookup: %v", err)

	empty := newTransaction(transactionrecord.ScriptInvokeKind, &transactionrecord.ScriptInvoke{ScriptID: "", Data: []byte("{}")})
	assert.Equal(t, fault.EmptyScriptID, r.Check(empty), "empty script id")

	badParams := newTransaction(transactionrecord.ScriptDeployKind, &transactionrecord.Script{
		Code:       []byte("return 1"),
		Parameters: []byte(hex.EncodeToString([]byte("{"))),
		Name:       "bad",
	})
	assert.Equal(t, fault.IncorrectScriptParameters, r.Check(badParams), "parameters not json")
}
