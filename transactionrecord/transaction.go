// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identity"
)

// Transaction - a signed ledger transaction
//
// the signed fields are immutable once signed; ID, SenderID, Fee,
// BlockID, Height and Confirmations are derived during processing
type Transaction struct {
	ID              string
	BlockID         string
	Height          uint64
	Kind            Kind
	Timestamp       uint32
	SenderPublicKey []byte
	SenderID        string
	RecipientID     string
	Amount          int64
	Fee             int64
	Signature       []byte
	SecondSignature []byte
	Asset           Asset
	Confirmations   uint64
}

// Bytes - canonical encoding
//
//   kind            1 byte
//   timestamp       4 bytes little endian
//   sender key      32 bytes
//   recipient       8 bytes big endian number part of address, or zero
//   amount          8 bytes little endian
//   asset           kind specific
//   signature       64 bytes if present
//   second sig      64 bytes if present
func (tx *Transaction) Bytes() ([]byte, error) {
	if len(tx.SenderPublicKey) != ed25519.PublicKeySize {
		return nil, fault.InvalidSenderPublicKey
	}
	if nil != tx.Asset && tx.Asset.Kind() != tx.Kind {
		return nil, fault.AssetKindMismatch
	}

	buffer := bytes.Buffer{}
	buffer.WriteByte(byte(tx.Kind))

	n := make([]byte, 8)
	binary.LittleEndian.PutUint32(n[:4], tx.Timestamp)
	buffer.Write(n[:4])

	buffer.Write(tx.SenderPublicKey)

	recipient := uint64(0)
	if "" != tx.RecipientID {
		r, err := identity.ParseAddress(tx.RecipientID)
		if nil != err {
			return nil, err
		}
		recipient = r
	}
	binary.BigEndian.PutUint64(n, recipient)
	buffer.Write(n)

	binary.LittleEndian.PutUint64(n, uint64(tx.Amount))
	buffer.Write(n)

	if nil != tx.Asset {
		buffer.Write(tx.Asset.Bytes())
	}

	buffer.Write(tx.Signature)
	buffer.Write(tx.SecondSignature)

	return buffer.Bytes(), nil
}

// ComputeID - identity of the canonical bytes
func (tx *Transaction) ComputeID() (string, error) {
	data, err := tx.Bytes()
	if nil != err {
		return "", err
	}
	return identity.FromBytes(data), nil
}

// SenderAddress - address derived from the sender public key
func (tx *Transaction) SenderAddress() string {
	return identity.Address(tx.SenderPublicKey)
}

// Total - amount plus fee, false on overflow or negative values
func (tx *Transaction) Total() (int64, bool) {
	if tx.Amount < 0 || tx.Fee < 0 {
		return 0, false
	}
	total := tx.Amount + tx.Fee
	if total < tx.Amount {
		return 0, false
	}
	return total, true
}
