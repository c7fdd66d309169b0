// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
)

// Account - the ledger state of one address
//
// Balance is the confirmed view, UnconfirmedBalance additionally
// reflects every pooled transaction sent from this account
type Account struct {
	Address              string
	PublicKey            []byte
	Balance              int64
	UnconfirmedBalance   int64
	SecondSignature      bool
	UnconfirmedSignature bool
	SecondPublicKey      []byte
	Delegates            []string // confirmed votes, delegate public keys in hex
	UnconfirmedDelegates []string // votes including pooled transactions
}

// vote prefixes
const (
	VoteAdd    = '+'
	VoteRemove = '-'
)

// Copy - an independent copy of the account
func (a *Account) Copy() Account {
	c := *a
	c.PublicKey = copyBytes(a.PublicKey)
	c.SecondPublicKey = copyBytes(a.SecondPublicKey)
	c.Delegates = append([]string(nil), a.Delegates...)
	c.UnconfirmedDelegates = append([]string(nil), a.UnconfirmedDelegates...)
	return c
}

// PublicKeyHex - hex form of the public key, empty if not yet known
func (a *Account) PublicKeyHex() string {
	return hex.EncodeToString(a.PublicKey)
}

// HasVote - check the confirmed vote list
func (a *Account) HasVote(delegate string) bool {
	return contains(a.Delegates, delegate)
}

// HasUnconfirmedVote - check the pending vote list
func (a *Account) HasUnconfirmedVote(delegate string) bool {
	return contains(a.UnconfirmedDelegates, delegate)
}

// ApplyUnconfirmedDelegateList - apply +key/-key votes to the
// pending list, the list is unchanged if any entry conflicts
func (a *Account) ApplyUnconfirmedDelegateList(votes []string) bool {
	updated, ok := applyVotes(a.UnconfirmedDelegates, votes)
	if !ok {
		return false
	}
	a.UnconfirmedDelegates = updated
	return true
}

// UndoUnconfirmedDelegateList - reverse ApplyUnconfirmedDelegateList
func (a *Account) UndoUnconfirmedDelegateList(votes []string) {
	a.UnconfirmedDelegates = undoVotes(a.UnconfirmedDelegates, votes)
}

// ApplyDelegateList - commit votes to the confirmed list
func (a *Account) ApplyDelegateList(votes []string) bool {
	updated, ok := applyVotes(a.Delegates, votes)
	if !ok {
		return false
	}
	a.Delegates = updated
	return true
}

// UndoDelegateList - reverse ApplyDelegateList
func (a *Account) UndoDelegateList(votes []string) {
	a.Delegates = undoVotes(a.Delegates, votes)
}

// returns a new list so a failure leaves the original untouched
func applyVotes(list []string, votes []string) ([]string, bool) {
	result := append([]string(nil), list...)
	for _, v := range votes {
		if len(v) < 2 {
			return nil, false
		}
		key := v[1:]
		switch v[0] {
		case VoteAdd:
			if contains(result, key) {
				return nil, false
			}
			result = append(result, key)
		case VoteRemove:
			i := indexOf(result, key)
			if i < 0 {
				return nil, false
			}
			result = append(result[:i], result[i+1:]...)
		default:
			return nil, false
		}
	}
	return result, true
}

func undoVotes(list []string, votes []string) []string {
	result := append([]string(nil), list...)
	for i := len(votes) - 1; i >= 0; i -= 1 {
		v := votes[i]
		if len(v) < 2 {
			continue
		}
		key := v[1:]
		switch v[0] {
		case VoteAdd:
			if n := indexOf(result, key); n >= 0 {
				result = append(result[:n], result[n+1:]...)
			}
		case VoteRemove:
			if !contains(result, key) {
				result = append(result, key)
			}
		}
	}
	return result
}

func indexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return -1
}

func contains(list []string, s string) bool {
	return indexOf(list, s) >= 0
}

func copyBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	return append([]byte(nil), b...)
}
