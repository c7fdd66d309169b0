// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues for passing notifications between
// the transaction pipeline and the background publishers
//
// Sending never blocks the caller, when a queue is full the message
// is dropped and counted
package messagebus
