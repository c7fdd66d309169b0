// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"context"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Engine - the processing pipeline
type Engine interface {
	ProcessTransaction(ctx context.Context, tx *transactionrecord.Transaction, relay bool) (string, error)
	ProcessBlock(ctx context.Context, b *block.Block) error
	Now() uint32
	Account(address string) (account.Account, bool)
	AccountByPublicKey(publicKey []byte) (account.Account, bool)
}

// Pool - read access to the unconfirmed transactions
type Pool interface {
	Get(id string) (*transactionrecord.Transaction, bool)
	List(reverse bool) []*transactionrecord.Transaction
	Filter(match func(*transactionrecord.Transaction) bool) []*transactionrecord.Transaction
	Addresses() []string
	Len() int
}

// Chain - read access to the confirmed blocks
type Chain interface {
	Height() uint64
	LastBlockID() string
	Query(f block.Filter) ([]*transactionrecord.Transaction, int, error)
	Transaction(id string) (*transactionrecord.Transaction, error)
	NextBlockIDs(id string, limit int) ([]string, error)
	NextBlocks(id string, limit int) ([]*block.Block, error)
}
