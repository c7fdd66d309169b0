// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// StorageError - an external lookup or the database failed
//
// nothing was changed so the operation can be retried
type StorageError struct {
	err error
}

// NewStorageError - wrap a lower level error with a message
func NewStorageError(err error, message string) error {
	if nil == err {
		return nil
	}
	return StorageError{err: errors.Wrap(err, message)}
}

func (e StorageError) Error() string { return e.err.Error() }

// Unwrap - access the wrapped error
func (e StorageError) Unwrap() error { return e.err }

// IsErrStorage - check for a storage error anywhere in the chain
func IsErrStorage(e error) bool {
	var s StorageError
	return errors.As(e, &s)
}
