// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read a Lua configuration file
//
// The file is executed and must return a table, which is mapped onto
// a Go structure using the `gluamapper` field tags
package configuration
