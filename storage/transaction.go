// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/ledgerd/fault"
)

// Transaction - a batch of pool writes applied atomically
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

type transactionData struct {
	access DataAccess
}

func newTransaction(access DataAccess) Transaction {
	return &transactionData{
		access: access,
	}
}

func (t *transactionData) Begin() error {
	return t.access.Begin()
}

func (t *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	t.access.PutBatch(handle.prefixKey(key), value)
}

func (t *transactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.access.PutBatch(handle.prefixKey(key), encodeN(value))
}

func (t *transactionData) Delete(handle *PoolHandle, key []byte) {
	t.access.DeleteBatch(handle.prefixKey(key))
}

func (t *transactionData) Commit() error {
	if !t.access.InUse() {
		return fault.TransactionNotStarted
	}
	return fault.NewStorageError(t.access.Commit(), "commit")
}

func (t *transactionData) Abort() {
	t.access.Abort()
}

func (t *transactionData) InUse() bool {
	return t.access.InUse()
}
