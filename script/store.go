// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// Pool - the part of a storage pool used by the store
type Pool interface {
	Get([]byte) ([]byte, error)
	Put([]byte, []byte) error
	Delete([]byte) error
}

// Store - deployed scripts keyed by the id of the deploying transaction
type Store struct {
	log   *logger.L
	pool  Pool
	cache *cache.Cache
}

type storedScript struct {
	Code        string `json:"code"`
	Parameters  string `json:"parameters"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NewStore - scripts in the storage script pool with a lookup cache
func NewStore(expiry time.Duration) *Store {
	return NewStoreWithPool(storage.Pool.Scripts, expiry)
}

// NewStoreWithPool - scripts in a specific pool
func NewStoreWithPool(pool Pool, expiry time.Duration) *Store {
	return &Store{
		log:   logger.New("script"),
		pool:  pool,
		cache: cache.New(expiry, 2*expiry),
	}
}

// Get - fetch a deployed script
func (s *Store) Get(id string) (*transactionrecord.Script, error) {
	if item, found := s.cache.Get(id); found {
		return item.(*transactionrecord.Script), nil
	}

	buffer, err := s.pool.Get([]byte(id))
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.ScriptNotFound
	}

	var stored storedScript
	if err := json.Unmarshal(buffer, &stored); nil != err {
		s.log.Errorf("script: %s  corrupt record: %s", id, err)
		return nil, fault.NewStorageError(err, "decode script")
	}

	code, err := hex.DecodeString(stored.Code)
	if nil != err {
		s.log.Errorf("script: %s  corrupt code: %s", id, err)
		return nil, fault.NewStorageError(err, "decode script code")
	}
	parameters, err := hex.DecodeString(stored.Parameters)
	if nil != err {
		s.log.Errorf("script: %s  corrupt parameters: %s", id, err)
		return nil, fault.NewStorageError(err, "decode script parameters")
	}

	script := &transactionrecord.Script{
		Code:        code,
		Parameters:  parameters,
		Name:        stored.Name,
		Description: stored.Description,
	}
	s.cache.Set(id, script, cache.DefaultExpiration)
	s.log.Debugf("script: %s  loaded", id)
	return script, nil
}

// Put - save a deployed script
func (s *Store) Put(id string, script *transactionrecord.Script) error {
	stored := storedScript{
		Code:        hex.EncodeToString(script.Code),
		Parameters:  hex.EncodeToString(script.Parameters),
		Name:        script.Name,
		Description: script.Description,
	}
	buffer, err := json.Marshal(stored)
	if nil != err {
		return err
	}
	if err := s.pool.Put([]byte(id), buffer); nil != err {
		return err
	}
	s.cache.Delete(id)
	return nil
}

// Delete - remove a script when its deployment is undone
func (s *Store) Delete(id string) error {
	s.cache.Delete(id)
	return s.pool.Delete([]byte(id))
}
