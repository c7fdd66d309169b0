// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"crypto/sha256"

	"golang.org/x/crypto/ed25519"
)

// Signer - anything able to produce an ed25519 signature
type Signer interface {
	Sign(message []byte) []byte
}

// Sign - set the primary signature, any existing signatures are discarded
func (tx *Transaction) Sign(signer Signer) error {
	tx.Signature = nil
	tx.SecondSignature = nil
	digest, err := tx.digest(0)
	if nil != err {
		return err
	}
	tx.Signature = signer.Sign(digest[:])
	return nil
}

// SecondSign - set the second signature over the primary signed bytes
func (tx *Transaction) SecondSign(signer Signer) error {
	tx.SecondSignature = nil
	digest, err := tx.digest(0)
	if nil != err {
		return err
	}
	tx.SecondSignature = signer.Sign(digest[:])
	return nil
}

// Verify - check the primary signature against the sender key
//
// the trailing signature bytes are removed before hashing: 64 with
// only a primary signature, 128 when a second signature is present
func (tx *Transaction) Verify() bool {
	if len(tx.SenderPublicKey) != ed25519.PublicKeySize || len(tx.Signature) != ed25519.SignatureSize {
		return false
	}
	strip := ed25519.SignatureSize
	if 0 != len(tx.SecondSignature) {
		if len(tx.SecondSignature) != ed25519.SignatureSize {
			return false
		}
		strip = 2 * ed25519.SignatureSize
	}
	digest, err := tx.digest(strip)
	if nil != err {
		return false
	}
	return ed25519.Verify(tx.SenderPublicKey, digest[:], tx.Signature)
}

// VerifySecond - check the second signature, only the second
// signature is removed before hashing
func (tx *Transaction) VerifySecond(publicKey []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(tx.Signature) != ed25519.SignatureSize || len(tx.SecondSignature) != ed25519.SignatureSize {
		return false
	}
	digest, err := tx.digest(ed25519.SignatureSize)
	if nil != err {
		return false
	}
	return ed25519.Verify(publicKey, digest[:], tx.SecondSignature)
}

// hash of the canonical bytes less a number of trailing bytes
func (tx *Transaction) digest(strip int) ([sha256.Size]byte, error) {
	data, err := tx.Bytes()
	if nil != err {
		return [sha256.Size]byte{}, err
	}
	return sha256.Sum256(data[:len(data)-strip]), nil
}
