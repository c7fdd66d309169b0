// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/ledgerd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command with its packed parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a bounded message queue
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

type busses struct {
	Broadcast *Queue
}

// Bus - the set of queues
var Bus = busses{
	Broadcast: NewQueue(queueSize),
}

// NewQueue - create a queue holding up to size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, drop it if the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		queue.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded because the queue was full
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
