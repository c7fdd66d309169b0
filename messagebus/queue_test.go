// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/messagebus"
)

func TestQueue(t *testing.T) {
	queue := messagebus.NewQueue(2)

	assert.True(t, queue.Send("one", []byte{1}), "first send")
	assert.True(t, queue.Send("two", []byte{2}, []byte{3}), "second send")
	assert.False(t, queue.Send("three"), "send to full queue")
	assert.Equal(t, uint64(1), queue.Dropped(), "dropped count")

	m := <-queue.Chan()
	assert.Equal(t, "one", m.Command)
	assert.Equal(t, [][]byte{{1}}, m.Parameters)

	m = <-queue.Chan()
	assert.Equal(t, "two", m.Command)
	assert.Equal(t, 2, len(m.Parameters))
}

func TestBusIsReady(t *testing.T) {
	assert.NotNil(t, messagebus.Bus.Broadcast, "broadcast queue missing")
}
