// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/script"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// in-memory pool that counts reads
type memoryPool struct {
	data  map[string][]byte
	reads int
	fail  error
}

func newMemoryPool() *memoryPool {
	return &memoryPool{data: make(map[string][]byte)}
}

func (p *memoryPool) Get(key []byte) ([]byte, error) {
	p.reads += 1
	if nil != p.fail {
		return nil, p.fail
	}
	return p.data[string(key)], nil
}

func (p *memoryPool) Put(key []byte, value []byte) error {
	p.data[string(key)] = value
	return nil
}

func (p *memoryPool) Delete(key []byte) error {
	delete(p.data, string(key))
	return nil
}

func TestStorePutGet(t *testing.T) {
	pool := newMemoryPool()
	store := script.NewStoreWithPool(pool, time.Minute)

	s := &transactionrecord.Script{
		Code:        []byte(validCode),
		Parameters:  []byte(validSchema),
		Name:        "counter",
		Description: "counts",
	}
	err := store.Put("1234", s)
	assert.Nil(t, err, "put")

	got, err := store.Get("1234")
	assert.Nil(t, err, "get")
	assert.Equal(t, s, got, "stored script")

	// second read comes from the cache
	_, _ = store.Get("1234")
	assert.Equal(t, 1, pool.reads, "cache not used")

	err = store.Delete("1234")
	assert.Nil(t, err, "delete")

	_, err = store.Get("1234")
	assert.Equal(t, fault.ScriptNotFound, err, "deleted script found")
}

func TestStorePassesStorageErrors(t *testing.T) {
	pool := newMemoryPool()
	pool.fail = fault.NewStorageError(errors.New("io"), "pool.Get")
	store := script.NewStoreWithPool(pool, time.Minute)

	_, err := store.Get("1")
	assert.True(t, fault.IsErrStorage(err), "storage error lost: %v", err)
}

func TestStoreCorruptRecord(t *testing.T) {
	pool := newMemoryPool()
	pool.data["9"] = []byte("not json")
	store := script.NewStoreWithPool(pool, time.Minute)

	_, err := store.Get("9")
	assert.True(t, fault.IsErrStorage(err), "corrupt record: %v", err)
}

// bad hex in a stored record is never truncated into a shorter script
func TestStoreCorruptHex(t *testing.T) {
	pool := newMemoryPool()
	pool.data["7"] = []byte(`{"code":"72657475726e2031ZZ","parameters":"7b7d","name":"x"}`)
	pool.data["8"] = []byte(`{"code":"72657475726e2031","parameters":"7b7dXX","name":"x"}`)
	store := script.NewStoreWithPool(pool, time.Minute)

	s, err := store.Get("7")
	assert.True(t, fault.IsErrStorage(err), "corrupt code: %v", err)
	assert.Nil(t, s, "script from corrupt code")

	s, err = store.Get("8")
	assert.True(t, fault.IsErrStorage(err), "corrupt parameters: %v", err)
	assert.Nil(t, s, "script from corrupt parameters")

	_, err = store.Get("7")
	assert.True(t, fault.IsErrStorage(err), "corrupt record cached: %v", err)
	assert.Equal(t, 3, pool.reads, "reads")
}
