// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "after increment")

	for i := 0; i < 5; i += 1 {
		c.Decrement()
	}
	assert.True(t, c.IsZero(), "counter did not return to zero")
}

func TestIncrementBelow(t *testing.T) {
	var c counter.Counter

	wg := sync.WaitGroup{}
	var accepted counter.Counter
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.IncrementBelow(10) {
				accepted.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10), c.Uint64(), "counter exceeded limit")
	assert.Equal(t, uint64(10), accepted.Uint64(), "wrong number accepted")

	c.Decrement()
	assert.True(t, c.IncrementBelow(10), "slot freed but not reusable")
	assert.False(t, c.IncrementBelow(10), "limit not enforced")
}
