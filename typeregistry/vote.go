// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package typeregistry

import (
	"context"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// MaximumVotes - entries in one vote transaction
const MaximumVotes = 33

type voteHandler struct{}

func asVote(tx *transactionrecord.Transaction) *transactionrecord.Vote {
	return tx.Asset.(*transactionrecord.Vote)
}

// the count is checked first so an oversize list is rejected
// whatever its content
func (voteHandler) Check(tx *transactionrecord.Transaction) error {
	votes := asVote(tx).Votes
	if len(votes) > MaximumVotes {
		return fault.TooManyDelegates
	}
	if 0 == len(votes) {
		return fault.EmptyTransactionAsset
	}
	if tx.RecipientID != tx.SenderAddress() {
		return fault.IncorrectRecipient
	}

	seen := make(map[string]struct{}, len(votes))
	for _, v := range votes {
		if len(v) != 1+2*ed25519.PublicKeySize {
			return fault.InvalidVote
		}
		if account.VoteAdd != v[0] && account.VoteRemove != v[0] {
			return fault.InvalidVote
		}
		if _, err := hex.DecodeString(v[1:]); nil != err {
			return fault.InvalidVote
		}
		if _, ok := seen[v[1:]]; ok {
			return fault.DuplicateVote
		}
		seen[v[1:]] = struct{}{}
	}
	return nil
}

func (voteHandler) Fee(*transactionrecord.Transaction) int64 {
	return voteFee
}

// an added delegate must exist and not be voted for in either the
// confirmed or pending list, a removed one must be in both
func (voteHandler) Validate(_ context.Context, env *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	for _, v := range asVote(tx).Votes {
		key := v[1:]
		switch v[0] {
		case account.VoteAdd:
			if !env.Delegates.ExistsDelegate(key) {
				return fault.DelegateNotFound
			}
			if sender.HasVote(key) || sender.HasUnconfirmedVote(key) {
				return fault.DuplicateVote
			}
		case account.VoteRemove:
			if !sender.HasVote(key) || !sender.HasUnconfirmedVote(key) {
				return fault.VoteNotFound
			}
		}
	}
	return nil
}

func (voteHandler) ApplyUnconfirmed(_ *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	if !sender.ApplyUnconfirmedDelegateList(asVote(tx).Votes) {
		return fault.DuplicateVote
	}
	return nil
}

func (voteHandler) UndoUnconfirmed(_ *Environment, tx *transactionrecord.Transaction, sender *account.Account) {
	sender.UndoUnconfirmedDelegateList(asVote(tx).Votes)
}

func (voteHandler) Apply(_ context.Context, _ *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	if !sender.ApplyDelegateList(asVote(tx).Votes) {
		return fault.DuplicateVote
	}
	return nil
}

func (voteHandler) Undo(_ context.Context, _ *Environment, tx *transactionrecord.Transaction, sender *account.Account) error {
	sender.UndoDelegateList(asVote(tx).Votes)
	return nil
}
