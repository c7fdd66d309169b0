// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - well-formedness of deployed Lua scripts and their
// JSON-schema parameters
package script

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"
	"github.com/yuin/gopher-lua/parse"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// limits on decoded sizes
const (
	MaxCodeLength        = 4096
	MaxParametersLength  = 4096
	MaxNameLength        = 16
	MaxDescriptionLength = 140
)

// Check - code and parameters are well formed
//
// lengths are checked before the parser is run so oversize code
// is never parsed
func Check(code []byte, parameters []byte) error {
	if 0 == len(code) || len(code) > MaxCodeLength {
		return fault.IncorrectScriptCodeLength
	}
	if _, err := parse.Parse(bytes.NewReader(code), "script"); nil != err {
		return fault.InvalidScriptCode
	}
	if len(parameters) > MaxParametersLength {
		return fault.IncorrectScriptParamsLength
	}
	if !json.Valid(parameters) {
		return fault.IncorrectScriptParameters
	}
	return nil
}

// CheckLengths - the size limits alone, no parsing
func CheckLengths(s *transactionrecord.Script) error {
	if 0 == len(s.Code) || len(s.Code) > MaxCodeLength {
		return fault.IncorrectScriptCodeLength
	}
	if len(s.Parameters) > MaxParametersLength {
		return fault.IncorrectScriptParamsLength
	}
	return checkText(s)
}

// CheckDeploy - a complete deployment asset
func CheckDeploy(s *transactionrecord.Script) error {
	if nil == s {
		return fault.EmptyTransactionAsset
	}
	if err := Check(s.Code, s.Parameters); nil != err {
		return err
	}
	return checkText(s)
}

func checkText(s *transactionrecord.Script) error {
	if n := utf8.RuneCountInString(s.Name); 0 == n || n > MaxNameLength {
		return fault.IncorrectNameLength
	}
	if utf8.RuneCountInString(s.Description) > MaxDescriptionLength {
		return fault.IncorrectDescriptionLength
	}
	return nil
}

// ValidateInput - invocation data must satisfy the parameter schema
func ValidateInput(parameters []byte, data []byte) error {
	if 0 == len(data) {
		return fault.EmptyScriptInput
	}
	if !json.Valid(data) {
		return fault.InvalidJSON
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(parameters),
		gojsonschema.NewBytesLoader(data),
	)
	if nil != err {
		return fault.IncorrectScriptParameters
	}
	if !result.Valid() {
		return InputError{issues: result.Errors()}
	}
	return nil
}
