// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// a removed entry keeps its position
type entry struct {
	tx      *transactionrecord.Transaction
	removed bool
}

// Pool - ordered unconfirmed transactions plus the quarantine set
//
// an id is in at most one of pool and quarantine
type Pool struct {
	sync.RWMutex
	entries    []entry
	index      map[string]int
	quarantine map[string]*transactionrecord.Transaction
}

// New - empty pool
func New() *Pool {
	return &Pool{
		entries:    make([]entry, 0, 256),
		index:      make(map[string]int),
		quarantine: make(map[string]*transactionrecord.Transaction),
	}
}

// Add - append a transaction
func (p *Pool) Add(tx *transactionrecord.Transaction) error {
	p.Lock()
	defer p.Unlock()

	if _, ok := p.index[tx.ID]; ok {
		return fault.TransactionAlreadyExists
	}
	if _, ok := p.quarantine[tx.ID]; ok {
		return fault.TransactionAlreadyExists
	}

	p.index[tx.ID] = len(p.entries)
	p.entries = append(p.entries, entry{tx: tx})
	return nil
}

// Remove - mark the entry removed, false if it was not pooled
func (p *Pool) Remove(id string) bool {
	p.Lock()
	defer p.Unlock()

	return p.remove(id)
}

func (p *Pool) remove(id string) bool {
	n, ok := p.index[id]
	if !ok {
		return false
	}
	p.entries[n].removed = true
	p.entries[n].tx = nil
	delete(p.index, id)
	return true
}

// Get - a pooled transaction
func (p *Pool) Get(id string) (*transactionrecord.Transaction, bool) {
	p.RLock()
	defer p.RUnlock()

	n, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return p.entries[n].tx, true
}

// Has - id is pooled
func (p *Pool) Has(id string) bool {
	p.RLock()
	_, ok := p.index[id]
	p.RUnlock()
	return ok
}

// List - live entries oldest first, or newest first if reverse
func (p *Pool) List(reverse bool) []*transactionrecord.Transaction {
	p.RLock()
	defer p.RUnlock()

	txs := make([]*transactionrecord.Transaction, 0, len(p.index))
	if reverse {
		for i := len(p.entries) - 1; i >= 0; i -= 1 {
			if !p.entries[i].removed {
				txs = append(txs, p.entries[i].tx)
			}
		}
	} else {
		for _, e := range p.entries {
			if !e.removed {
				txs = append(txs, e.tx)
			}
		}
	}
	return txs
}

// Filter - live entries oldest first matching a predicate
func (p *Pool) Filter(match func(*transactionrecord.Transaction) bool) []*transactionrecord.Transaction {
	txs := make([]*transactionrecord.Transaction, 0)
	for _, tx := range p.List(false) {
		if match(tx) {
			txs = append(txs, tx)
		}
	}
	return txs
}

// Quarantine - move a transaction permanently to the quarantine
func (p *Pool) Quarantine(tx *transactionrecord.Transaction) {
	p.Lock()
	defer p.Unlock()

	p.remove(tx.ID)
	p.quarantine[tx.ID] = tx
}

// IsQuarantined - id was quarantined
func (p *Pool) IsQuarantined(id string) bool {
	p.RLock()
	_, ok := p.quarantine[id]
	p.RUnlock()
	return ok
}

// Len - number of live entries
func (p *Pool) Len() int {
	p.RLock()
	defer p.RUnlock()
	return len(p.index)
}

// Removed - number of removed markers still holding positions
func (p *Pool) Removed() int {
	p.RLock()
	defer p.RUnlock()
	return len(p.entries) - len(p.index)
}

// QuarantineLen - number of quarantined transactions
func (p *Pool) QuarantineLen() int {
	p.RLock()
	defer p.RUnlock()
	return len(p.quarantine)
}

// Addresses - distinct sender addresses with pooled transactions in
// pool order
func (p *Pool) Addresses() []string {
	seen := make(map[string]struct{})
	addresses := make([]string, 0)
	for _, tx := range p.List(false) {
		address := tx.SenderAddress()
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		addresses = append(addresses, address)
	}
	return addresses
}

// Compact - drop removed entries and rebuild the index
//
// positions change, callers must not hold any
func (p *Pool) Compact() {
	p.Lock()
	defer p.Unlock()

	entries := make([]entry, 0, len(p.index))
	for _, e := range p.entries {
		if !e.removed {
			p.index[e.tx.ID] = len(entries)
			entries = append(entries, e)
		}
	}
	p.entries = entries
}
