// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - a relative path is taken to be inside directory,
// an empty path stays empty so optional files remain disabled
func EnsureAbsolute(directory string, filePath string) string {
	if "" == filePath {
		return ""
	}
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// ResolvePaths - apply EnsureAbsolute to each path in place
func ResolvePaths(directory string, paths ...*string) {
	for _, p := range paths {
		*p = EnsureAbsolute(directory, *p)
	}
}

// MakeDirectories - create any missing directories, owner access only
func MakeDirectories(directories ...string) error {
	for _, d := range directories {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}
	return nil
}

// AnyFileExists - true if at least one of the names exists; used to
// refuse overwriting generated key material
func AnyFileExists(names ...string) bool {
	for _, name := range names {
		if _, err := os.Stat(name); nil == err {
			return true
		}
	}
	return false
}
