// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strings"
)

// Asset - kind specific payload of a transaction
type Asset interface {
	Kind() Kind
	Bytes() []byte
}

// Payment - transfer of an amount to the recipient, no payload
type Payment struct{}

// SecondSignature - activate a second signing key
type SecondSignature struct {
	PublicKey []byte
}

// Delegate - register the sender as a delegate
type Delegate struct {
	Username string
}

// Vote - add (+key) or remove (-key) delegate votes
type Vote struct {
	Votes []string
}

// Script - deploy a script, Code and Parameters hold the decoded bytes
type Script struct {
	Code        []byte
	Parameters  []byte
	Name        string
	Description string
}

// ScriptInvoke - call a deployed script, Data holds decoded JSON input
type ScriptInvoke struct {
	ScriptID string
	Data     []byte
}

// Username - register a username for the sender
type Username struct {
	Username string
}

func (a *Payment) Kind() Kind         { return PaymentKind }
func (a *SecondSignature) Kind() Kind { return SecondSignatureKind }
func (a *Delegate) Kind() Kind        { return DelegateKind }
func (a *Vote) Kind() Kind            { return VoteKind }
func (a *Script) Kind() Kind          { return ScriptDeployKind }
func (a *ScriptInvoke) Kind() Kind    { return ScriptInvokeKind }
func (a *Username) Kind() Kind        { return UsernameKind }

// Bytes - the asset part of the canonical encoding
func (a *Payment) Bytes() []byte { return nil }

func (a *SecondSignature) Bytes() []byte { return append([]byte(nil), a.PublicKey...) }

func (a *Delegate) Bytes() []byte { return []byte(a.Username) }

func (a *Vote) Bytes() []byte { return []byte(strings.Join(a.Votes, "")) }

func (a *Script) Bytes() []byte {
	b := make([]byte, 0, len(a.Code)+len(a.Parameters)+len(a.Name)+len(a.Description))
	b = append(b, a.Code...)
	b = append(b, a.Parameters...)
	b = append(b, a.Name...)
	return append(b, a.Description...)
}

func (a *ScriptInvoke) Bytes() []byte {
	b := make([]byte, 0, len(a.ScriptID)+len(a.Data))
	b = append(b, a.ScriptID...)
	return append(b, a.Data...)
}

func (a *Username) Bytes() []byte { return []byte(a.Username) }
