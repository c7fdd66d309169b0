// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package slot - discrete time used for transaction timestamps
package slot

import (
	"time"
)

// fixed network parameters
const (
	Interval = 10 // seconds per slot
)

// Epoch - start of network time
var Epoch = time.Date(2014, time.May, 2, 0, 0, 0, 0, time.UTC)

// Clock - converts between wall time and slots
type Clock struct {
	epoch    time.Time
	interval uint32
	now      func() time.Time
}

// New - a clock on the network epoch using the system time
func New() *Clock {
	return &Clock{
		epoch:    Epoch,
		interval: Interval,
		now:      time.Now,
	}
}

// NewFixed - a clock stuck at a particular time
func NewFixed(now time.Time) *Clock {
	c := New()
	c.now = func() time.Time { return now }
	return c
}

// Time - seconds since the epoch for the current time
func (c *Clock) Time() uint32 {
	return c.TimeAt(c.now())
}

// TimeAt - seconds since the epoch for a given time
func (c *Clock) TimeAt(t time.Time) uint32 {
	d := t.Sub(c.epoch)
	if d < 0 {
		return 0
	}
	return uint32(d / time.Second)
}

// SlotNumber - the slot containing a timestamp
func (c *Clock) SlotNumber(timestamp uint32) uint32 {
	return timestamp / c.interval
}

// CurrentSlot - the slot containing now
func (c *Clock) CurrentSlot() uint32 {
	return c.SlotNumber(c.Time())
}

// IsFuture - true if the timestamp lies in a slot after the current one
func (c *Clock) IsFuture(timestamp uint32) bool {
	return c.SlotNumber(timestamp) > c.CurrentSlot()
}
