// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - storage for:
// 1. unconfirmed transactions that have been applied to the
//    unconfirmed balances and are waiting to be confirmed
// 2. quarantined transactions that passed validation but could not be
//    applied, these are never processed again
package reservoir
