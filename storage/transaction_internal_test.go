// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *mocks.MockDataAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockDataAccess(ctl)
	return newTransaction(mock), mock, ctl
}

func TestTransactionPrefixesKeys(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	pool := &PoolHandle{prefix: 'T', dataAccess: mock}

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().PutBatch([]byte("Tkey"), []byte("value")).Times(1)
	mock.EXPECT().PutBatch([]byte("Tn"), []byte{0, 0, 0, 0, 0, 0, 0, 7}).Times(1)
	mock.EXPECT().DeleteBatch([]byte("Told")).Times(1)
	mock.EXPECT().InUse().Return(true).Times(1)
	mock.EXPECT().Commit().Return(nil).Times(1)

	assert.Nil(t, trx.Begin(), "begin")
	trx.Put(pool, []byte("key"), []byte("value"))
	trx.PutN(pool, []byte("n"), 7)
	trx.Delete(pool, []byte("old"))
	assert.Nil(t, trx.Commit(), "commit")
}

func TestTransactionCommitWithoutBegin(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().InUse().Return(false).Times(1)

	assert.Equal(t, fault.TransactionNotStarted, trx.Commit(), "commit without begin")
}

func TestTransactionCommitFailure(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().InUse().Return(true).Times(1)
	mock.EXPECT().Commit().Return(errors.New("disk full")).Times(1)

	err := trx.Commit()
	assert.True(t, fault.IsErrStorage(err), "wrapped storage error")
	assert.Contains(t, err.Error(), "disk full", "cause kept")
}

func TestTransactionAbortDelegates(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Abort().Times(1)
	trx.Abort()
}
