// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - the single writer for the pool and all balances
//
// Id computation, structural checks and signature verification run
// before the lock is taken.  Everything that reads or mutates shared
// state, from the duplicate check to the pool insert, runs with the
// processor lock held so no two transactions interleave.
package processor
