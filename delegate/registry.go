// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package delegate - registered block producers
//
// Each delegate owns a unique name and is identified by its public
// key.  Confirmed registrations come from blocks, unconfirmed ones are
// reservations held by pooled transactions.
package delegate

import (
	"sort"
	"strings"
)

// Registry - confirmed and reserved delegates
//
// not safe for concurrent use
type Registry struct {
	names            map[string]string // name -> public key hex
	keys             map[string]string // public key hex -> name
	unconfirmedNames map[string]string
	unconfirmedKeys  map[string]string
}

// Delegate - one registered delegate
type Delegate struct {
	Name      string `json:"username"`
	PublicKey string `json:"publicKey"`
}

// NewRegistry - empty registry
func NewRegistry() *Registry {
	return &Registry{
		names:            make(map[string]string),
		keys:             make(map[string]string),
		unconfirmedNames: make(map[string]string),
		unconfirmedKeys:  make(map[string]string),
	}
}

// names compare without case
func normalise(name string) string {
	return strings.ToLower(name)
}

// ExistsName - confirmed name check
func (r *Registry) ExistsName(name string) bool {
	_, ok := r.names[normalise(name)]
	return ok
}

// ExistsDelegate - confirmed public key check
func (r *Registry) ExistsDelegate(publicKey string) bool {
	_, ok := r.keys[publicKey]
	return ok
}

// UnconfirmedName - name reserved by a pooled transaction
func (r *Registry) UnconfirmedName(name string) bool {
	_, ok := r.unconfirmedNames[normalise(name)]
	return ok
}

// UnconfirmedDelegate - key reserved by a pooled transaction
func (r *Registry) UnconfirmedDelegate(publicKey string) bool {
	_, ok := r.unconfirmedKeys[publicKey]
	return ok
}

// AddUnconfirmed - reserve a name for a key
func (r *Registry) AddUnconfirmed(name string, publicKey string) {
	r.unconfirmedNames[normalise(name)] = publicKey
	r.unconfirmedKeys[publicKey] = name
}

// RemoveUnconfirmed - release a reservation
func (r *Registry) RemoveUnconfirmed(name string, publicKey string) {
	delete(r.unconfirmedNames, normalise(name))
	delete(r.unconfirmedKeys, publicKey)
}

// Cache - make a registration permanent
func (r *Registry) Cache(name string, publicKey string) {
	r.names[normalise(name)] = publicKey
	r.keys[publicKey] = name
}

// Uncache - remove a permanent registration
func (r *Registry) Uncache(name string, publicKey string) {
	delete(r.names, normalise(name))
	delete(r.keys, publicKey)
}

// List - all confirmed delegates sorted by name
func (r *Registry) List() []Delegate {
	list := make([]Delegate, 0, len(r.keys))
	for key, name := range r.keys {
		list = append(list, Delegate{Name: name, PublicKey: key})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
