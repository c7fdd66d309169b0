// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// Store - confirmed blocks in the storage pools
//
//   blocks:       height -> block JSON
//   heights:      block id -> height
//   transactions: tx id -> height ++ tx JSON
type Store struct {
	sync.RWMutex

	log *logger.L

	height  uint64
	lastID  string
	genesis string
}

// NewStore - open the store positioned at the last stored block
func NewStore() (*Store, error) {
	s := &Store{
		log: logger.New("block"),
	}

	element, found, err := storage.Pool.Blocks.LastElement()
	if nil != err {
		return nil, err
	}
	if found {
		var b Block
		if err := json.Unmarshal(element.Value, &b); nil != err {
			return nil, fault.NewStorageError(err, "decode last block")
		}
		s.height = b.Height
		s.lastID = b.ID

		g, err := s.BlockAt(GenesisHeight)
		if nil != err {
			return nil, err
		}
		s.genesis = g.ID
	}
	s.log.Infof("last block: %d  id: %s", s.height, s.lastID)
	return s, nil
}

func heightKey(height uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, height)
	return key
}

// Height - height of the last block, zero when empty
func (s *Store) Height() uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.height
}

// LastBlockID - id of the last block, empty when no block stored
func (s *Store) LastBlockID() string {
	s.RLock()
	defer s.RUnlock()
	return s.lastID
}

// GenesisID - id of the first block
func (s *Store) GenesisID() string {
	s.RLock()
	defer s.RUnlock()
	return s.genesis
}

// Follows - check a block is the next in sequence
func (s *Store) Follows(b *Block) error {
	s.RLock()
	defer s.RUnlock()
	if b.Height != s.height+1 || b.PreviousBlock != s.lastID {
		return fault.BlockOutOfSequence
	}
	return nil
}

// Commit - store a block and all of its transactions in one batch
func (s *Store) Commit(b *Block) error {
	if err := s.Follows(b); nil != err {
		return err
	}

	packedBlock, err := json.Marshal(b)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := heightKey(b.Height)
	trx.Put(storage.Pool.Blocks, key, packedBlock)
	trx.PutN(storage.Pool.BlockHeights, []byte(b.ID), b.Height)
	for _, tx := range b.Transactions {
		packedTx, err := json.Marshal(tx)
		if nil != err {
			trx.Abort()
			return err
		}
		trx.Put(storage.Pool.Transactions, []byte(tx.ID), append(heightKey(b.Height), packedTx...))
	}

	if err := trx.Commit(); nil != err {
		s.log.Errorf("commit block: %d  error: %s", b.Height, err)
		return err
	}

	s.Lock()
	s.height = b.Height
	s.lastID = b.ID
	if b.IsGenesis() {
		s.genesis = b.ID
	}
	s.Unlock()

	s.log.Infof("stored block: %d  id: %s  transactions: %d", b.Height, b.ID, len(b.Transactions))
	return nil
}

// RemoveLast - delete the last block and its transactions
func (s *Store) RemoveLast() (*Block, error) {
	s.RLock()
	height := s.height
	s.RUnlock()

	if 0 == height {
		return nil, fault.BlockNotFound
	}

	b, err := s.BlockAt(height)
	if nil != err {
		return nil, err
	}

	previousID := ""
	if height > GenesisHeight {
		p, err := s.BlockAt(height - 1)
		if nil != err {
			return nil, err
		}
		previousID = p.ID
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Delete(storage.Pool.Blocks, heightKey(height))
	trx.Delete(storage.Pool.BlockHeights, []byte(b.ID))
	for _, tx := range b.Transactions {
		trx.Delete(storage.Pool.Transactions, []byte(tx.ID))
	}
	if err := trx.Commit(); nil != err {
		return nil, err
	}

	s.Lock()
	s.height = height - 1
	s.lastID = previousID
	if 0 == s.height {
		s.genesis = ""
	}
	s.Unlock()

	s.log.Infof("removed block: %d  id: %s", height, b.ID)
	return b, nil
}

// BlockAt - read the block at a height
func (s *Store) BlockAt(height uint64) (*Block, error) {
	packed, err := storage.Pool.Blocks.Get(heightKey(height))
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, fault.BlockNotFound
	}
	var b Block
	if err := json.Unmarshal(packed, &b); nil != err {
		return nil, fault.NewStorageError(err, "decode block")
	}
	return &b, nil
}

// BlockHeight - height of a stored block id
func (s *Store) BlockHeight(id string) (uint64, bool, error) {
	return storage.Pool.BlockHeights.GetN([]byte(id))
}

// HasTransaction - check for a confirmed transaction
func (s *Store) HasTransaction(id string) (bool, error) {
	return storage.Pool.Transactions.Has([]byte(id))
}

// Transaction - a confirmed transaction with its confirmation count
func (s *Store) Transaction(id string) (*transactionrecord.Transaction, error) {
	height, packed, err := storage.Pool.Transactions.GetNB([]byte(id))
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, fault.TransactionNotFound
	}
	tx, err := decodeTransaction(packed)
	if nil != err {
		return nil, err
	}
	tx.Confirmations = s.confirmations(height)
	return tx, nil
}

func (s *Store) confirmations(height uint64) uint64 {
	s.RLock()
	defer s.RUnlock()
	if height > s.height {
		return 0
	}
	return s.height - height + 1
}

func decodeTransaction(packed []byte) (*transactionrecord.Transaction, error) {
	var tx transactionrecord.Transaction
	if err := json.Unmarshal(packed, &tx); nil != err {
		return nil, fault.NewStorageError(err, "decode transaction")
	}
	return &tx, nil
}

// Blocks - run a function on every stored block in height order
func (s *Store) Blocks(f func(*Block) error) error {
	return storage.Pool.Blocks.NewFetchCursor().Map(func(key []byte, value []byte) error {
		var b Block
		if err := json.Unmarshal(value, &b); nil != err {
			return fault.NewStorageError(err, "decode block")
		}
		return f(&b)
	})
}

// NextBlockIDs - ids of the blocks following a block
func (s *Store) NextBlockIDs(id string, limit int) ([]string, error) {
	blocks, err := s.NextBlocks(id, limit)
	if nil != err {
		return nil, err
	}
	ids := make([]string, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	return ids, nil
}

// NextBlocks - the blocks following a block, oldest first
func (s *Store) NextBlocks(id string, limit int) ([]*Block, error) {
	if limit <= 0 {
		return nil, fault.InvalidCount
	}
	height, found, err := s.BlockHeight(id)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.BlockNotFound
	}

	elements, err := storage.Pool.Blocks.NewFetchCursor().Seek(heightKey(height + 1)).Fetch(limit)
	if nil != err {
		return nil, err
	}
	blocks := make([]*Block, 0, len(elements))
	for _, e := range elements {
		var b Block
		if err := json.Unmarshal(e.Value, &b); nil != err {
			return nil, fault.NewStorageError(err, "decode block")
		}
		blocks = append(blocks, &b)
	}
	return blocks, nil
}
