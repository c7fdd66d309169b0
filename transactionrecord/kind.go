// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strconv"
)

// Kind - the transaction type, also the first byte of the canonical encoding
type Kind uint8

// enumerate the possible transaction kinds
// this value is sent on the wire so never change existing values
const (
	PaymentKind         Kind = iota // 0
	SecondSignatureKind Kind = iota // 1
	DelegateKind        Kind = iota // 2
	VoteKind            Kind = iota // 3
	ScriptDeployKind    Kind = iota // 4
	ScriptInvokeKind    Kind = iota // 5
	UsernameKind        Kind = iota // 6

	// this item must be last
	InvalidKind Kind = iota
)

var kindNames = [...]string{
	PaymentKind:         "payment",
	SecondSignatureKind: "second signature",
	DelegateKind:        "delegate",
	VoteKind:            "vote",
	ScriptDeployKind:    "script deploy",
	ScriptInvokeKind:    "script invoke",
	UsernameKind:        "username",
}

// Valid - check for a known kind
func (k Kind) Valid() bool {
	return k < InvalidKind
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}
