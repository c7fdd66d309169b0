// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/bitmark-inc/ledgerd/fault"
)

// InputError - the schema issues for a rejected invocation
type InputError struct {
	issues []gojsonschema.ResultError
}

func (e InputError) Error() string {
	s := make([]string, 0, len(e.issues))
	for _, issue := range e.issues {
		s = append(s, issue.String())
	}
	return fault.InvalidScriptInput.Error() + ": " + strings.Join(s, "; ")
}

// Cause - the underlying rejection class
func (e InputError) Cause() error {
	return fault.InvalidScriptInput
}

// Issues - number of schema violations
func (e InputError) Issues() int {
	return len(e.issues)
}
