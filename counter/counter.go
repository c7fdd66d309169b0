// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free counters for connection slots and
// dropped message tallies
package counter

import (
	"sync/atomic"
)

// Counter - atomic unsigned count, the zero value is ready to use
type Counter struct {
	n uint64
}

// Increment - add one and return the new count
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64(&c.n, 1)
}

// Decrement - remove one and return the new count
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64(&c.n, ^uint64(0))
}

// IncrementBelow - take a slot only while the count is below limit
func (c *Counter) IncrementBelow(limit uint64) bool {
	for {
		current := atomic.LoadUint64(&c.n)
		if current >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64(&c.n, current, current+1) {
			return true
		}
	}
}

// Uint64 - current count
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.n)
}

// IsZero - no slots held
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
