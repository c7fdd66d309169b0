// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package username - names registered to account addresses
package username

import (
	"strings"
)

// Registry - confirmed and reserved usernames
//
// not safe for concurrent use
type Registry struct {
	names       map[string]string // name -> address
	unconfirmed map[string]string
}

// NewRegistry - empty registry
func NewRegistry() *Registry {
	return &Registry{
		names:       make(map[string]string),
		unconfirmed: make(map[string]string),
	}
}

func normalise(name string) string {
	return strings.ToLower(name)
}

// ExistsName - confirmed name check
func (r *Registry) ExistsName(name string) bool {
	_, ok := r.names[normalise(name)]
	return ok
}

// UnconfirmedName - name reserved by a pooled transaction
func (r *Registry) UnconfirmedName(name string) bool {
	_, ok := r.unconfirmed[normalise(name)]
	return ok
}

// Owner - address holding a confirmed name
func (r *Registry) Owner(name string) (string, bool) {
	address, ok := r.names[normalise(name)]
	return address, ok
}

// AddUnconfirmed - reserve a name
func (r *Registry) AddUnconfirmed(name string, address string) {
	r.unconfirmed[normalise(name)] = address
}

// RemoveUnconfirmed - release a reservation
func (r *Registry) RemoveUnconfirmed(name string) {
	delete(r.unconfirmed, normalise(name))
}

// Cache - make a registration permanent
func (r *Registry) Cache(name string, address string) {
	r.names[normalise(name)] = address
}

// Uncache - remove a permanent registration
func (r *Registry) Uncache(name string) {
	delete(r.names, normalise(name))
}
