// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - HTTP client and peer interfaces
//
// Replies are JSON objects with a "success" flag; a rejected request
// is still a 200 response carrying the reason in "error" so older
// peers keep working.  Storage failures are 500, rate limited
// requests are 429 and requests beyond the connection limit are 503.
package rpc
