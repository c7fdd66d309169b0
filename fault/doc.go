// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// The class of an error decides how a caller reacts to it:
//
//   InvalidError, NotFoundError  - rejected before any mutation
//   ExistsError                  - duplicate or already confirmed
//   QuarantineError              - validated but could not be applied
//   EncodingError                - malformed hex, bytes or script text
//   StorageError                 - persistent storage failed, retry is safe
//   ProcessError                 - internal lifecycle problems
package fault
