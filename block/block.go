// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block - confirmed blocks and their transactions
package block

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identity"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// GenesisHeight - height of the first block
const GenesisHeight = 1

// Block - a confirmed group of transactions
//
// address entries are kept verbatim, their registration is handled
// elsewhere
type Block struct {
	ID            string                           `json:"id"`
	Height        uint64                           `json:"height"`
	PreviousBlock string                           `json:"previousBlock"`
	Timestamp     uint32                           `json:"timestamp"`
	Transactions  []*transactionrecord.Transaction `json:"transactions"`
	Addresses     []json.RawMessage                `json:"addresses,omitempty"`
}

// ComputeID - identity over height, previous block, timestamp and
// the transaction ids in order
func (b *Block) ComputeID() string {
	buffer := bytes.Buffer{}

	n := make([]byte, 8)
	binary.LittleEndian.PutUint64(n, b.Height)
	buffer.Write(n)

	buffer.WriteString(b.PreviousBlock)

	binary.LittleEndian.PutUint32(n[:4], b.Timestamp)
	buffer.Write(n[:4])

	for _, tx := range b.Transactions {
		buffer.WriteString(tx.ID)
	}
	return identity.FromDigest(sha256.Sum256(buffer.Bytes()))
}

// IsGenesis - the first block of the chain
func (b *Block) IsGenesis() bool {
	return GenesisHeight == b.Height
}

// Check - internal consistency of a received block
//
// every transaction id is recomputed, the block id must match its
// content and all transactions take the block's position
func (b *Block) Check() error {
	if b.IsGenesis() {
		if "" != b.PreviousBlock {
			return fault.BlockOutOfSequence
		}
	} else if 0 == b.Height || "" == b.PreviousBlock {
		return fault.BlockOutOfSequence
	}

	seen := make(map[string]struct{}, len(b.Transactions))
	for _, tx := range b.Transactions {
		if nil == tx {
			return fault.InvalidJSON
		}
		id, err := tx.ComputeID()
		if nil != err {
			return err
		}
		if id != tx.ID {
			return fault.InvalidTransactionID
		}
		if _, ok := seen[id]; ok {
			return fault.TransactionAlreadyExists
		}
		seen[id] = struct{}{}
	}

	if b.ComputeID() != b.ID {
		return fault.InvalidBlockID
	}

	b.place()
	return nil
}

// Seal - fill in the ids of a locally built block
func (b *Block) Seal() error {
	for _, tx := range b.Transactions {
		id, err := tx.ComputeID()
		if nil != err {
			return err
		}
		tx.ID = id
	}
	b.ID = b.ComputeID()
	b.place()
	return nil
}

func (b *Block) place() {
	for _, tx := range b.Transactions {
		tx.BlockID = b.ID
		tx.Height = b.Height
		tx.SenderID = tx.SenderAddress()
	}
}
