// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++     = concatenation of byte data
// 3. height = big endian uint64 (8 bytes)
// 4. id     = decimal identity string of a block or transaction
//
// Blocks:
//
//   B ++ height      - confirmed block
//                      data: JSON block with its transactions
//   H ++ block id    - height of a block
//                      data: height
//
// Transactions:
//
//   T ++ tx id       - confirmed transaction
//                      data: height ++ JSON transaction
//
// Scripts:
//
//   S ++ tx id       - deployed script, keyed by the deploying transaction
//                      data: JSON script
package storage
