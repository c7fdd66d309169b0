// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/messagebus"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// broadcast commands
const (
	TransactionCommand = "transaction"
	RelayFlag          = "relay"
	LocalFlag          = "local"
)

// BusNotifier - queue pooled transactions for the publishers
type BusNotifier struct {
	log   *logger.L
	queue *messagebus.Queue
}

// NewBusNotifier - notifier sending to a message queue
func NewBusNotifier(queue *messagebus.Queue) *BusNotifier {
	return &BusNotifier{
		log:   logger.New("notify"),
		queue: queue,
	}
}

// Notify - queue {transaction, relay}, never blocks
func (n *BusNotifier) Notify(tx *transactionrecord.Transaction, relay bool) {
	packed, err := json.Marshal(tx)
	if nil != err {
		n.log.Errorf("transaction: %s  marshal error: %s", tx.ID, err)
		return
	}
	flag := LocalFlag
	if relay {
		flag = RelayFlag
	}
	if !n.queue.Send(TransactionCommand, packed, []byte(flag)) {
		n.log.Warnf("transaction: %s  broadcast queue full", tx.ID)
	}
}
