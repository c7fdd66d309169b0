// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"sort"

	"github.com/bitmark-inc/ledgerd/identity"
)

// Registry - in-memory set of accounts keyed by address
//
// not safe for concurrent use, the transaction processor serialises
// all access
type Registry struct {
	accounts map[string]*Account
}

// NewRegistry - create an empty registry
func NewRegistry() *Registry {
	return &Registry{
		accounts: make(map[string]*Account),
	}
}

// GetByAddress - nil if the address has never been seen
func (r *Registry) GetByAddress(address string) *Account {
	return r.accounts[address]
}

// GetByPublicKey - lookup using the address derived from the key
func (r *Registry) GetByPublicKey(publicKey []byte) *Account {
	return r.accounts[identity.Address(publicKey)]
}

// GetOrCreateByAddress - used for payment recipients
func (r *Registry) GetOrCreateByAddress(address string) *Account {
	a, ok := r.accounts[address]
	if !ok {
		a = &Account{
			Address: address,
		}
		r.accounts[address] = a
	}
	return a
}

// GetOrCreateByPublicKey - also records the public key on an account
// that was only known by address
func (r *Registry) GetOrCreateByPublicKey(publicKey []byte) *Account {
	a := r.GetOrCreateByAddress(identity.Address(publicKey))
	if nil == a.PublicKey {
		a.PublicKey = copyBytes(publicKey)
	}
	return a
}

// Addresses - sorted list of all known addresses
func (r *Registry) Addresses() []string {
	addresses := make([]string, 0, len(r.accounts))
	for address := range r.accounts {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	return addresses
}

// Len - number of accounts
func (r *Registry) Len() int {
	return len(r.accounts)
}
