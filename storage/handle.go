// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/ledgerd/fault"
)

// PoolHandle - access to one prefixed section of the database
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess DataAccess
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

func encodeN(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

// Put - store a key/value bytes pair immediately
func (p *PoolHandle) Put(key []byte, value []byte) error {
	if nil == p || nil == p.dataAccess {
		return fault.NotInitialised
	}
	return fault.NewStorageError(p.dataAccess.Put(p.prefixKey(key), value), "pool.Put")
}

// PutN - store a big endian uint64
func (p *PoolHandle) PutN(key []byte, value uint64) error {
	return p.Put(key, encodeN(value))
}

// Delete - remove a key immediately
func (p *PoolHandle) Delete(key []byte) error {
	if nil == p || nil == p.dataAccess {
		return fault.NotInitialised
	}
	return fault.NewStorageError(p.dataAccess.Delete(p.prefixKey(key)), "pool.Delete")
}

// Get - read a value for a given key
//
// a nil value with a nil error means the key was not found
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	if nil == p || nil == p.dataAccess {
		return nil, fault.NotInitialised
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if nil != err {
		return nil, fault.NewStorageError(err, "pool.Get")
	}
	return value, nil
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, err := p.Get(key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fault.NewStorageError(fault.TruncatedRecord, "pool.GetN")
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// GetNB - read a record as a big endian uint64 followed by data
//
// the byte slice is nil if record was not found
func (p *PoolHandle) GetNB(key []byte) (uint64, []byte, error) {
	buffer, err := p.Get(key)
	if nil != err || nil == buffer {
		return 0, nil, err
	}
	if len(buffer) < 9 { // must have at least one byte after the N value
		return 0, nil, fault.NewStorageError(fault.TruncatedRecord, "pool.GetNB")
	}
	return binary.BigEndian.Uint64(buffer[:8]), buffer[8:], nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	if nil == p || nil == p.dataAccess {
		return false, fault.NotInitialised
	}
	found, err := p.dataAccess.Has(p.prefixKey(key))
	return found, fault.NewStorageError(err, "pool.Has")
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool, error) {
	if nil == p || nil == p.dataAccess {
		return Element{}, false, fault.NotInitialised
	}

	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	iter := p.dataAccess.Iterator(&maxRange)

	found := false
	result := Element{}
	if iter.Last() {
		result = copyElement(iter.Key(), iter.Value())
		found = true
	}
	iter.Release()
	err := iter.Error()
	return result, found, fault.NewStorageError(err, "pool.LastElement")
}

// contents of iterator slices must not be modified, and are only
// valid until the next call to Next
func copyElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
