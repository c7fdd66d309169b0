// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - decimal identifiers derived from SHA-256 digests
//
// Both transaction ids and account addresses take the first eight
// bytes of a digest as a big endian unsigned 64 bit integer and render
// it in decimal.  Addresses carry an extra suffix character.
package identity

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
)

// AddressSuffix - final character of every account address
const AddressSuffix = "C"

// FromDigest - the identity of a digest
func FromDigest(digest [sha256.Size]byte) string {
	return strconv.FormatUint(binary.BigEndian.Uint64(digest[:8]), 10)
}

// FromBytes - hash the data and return its identity
func FromBytes(data []byte) string {
	return FromDigest(sha256.Sum256(data))
}

// Valid - check that an id is a canonical decimal uint64
func Valid(id string) bool {
	_, err := Parse(id)
	return nil == err
}

// Parse - decode a canonical decimal id
func Parse(id string) (uint64, error) {
	if "" == id || len(id) > 20 {
		return 0, fault.InvalidTransactionID
	}
	if len(id) > 1 && '0' == id[0] {
		return 0, fault.InvalidTransactionID
	}
	n, err := strconv.ParseUint(id, 10, 64)
	if nil != err {
		return 0, fault.InvalidTransactionID
	}
	return n, nil
}

// Address - account address for an ed25519 public key
func Address(publicKey []byte) string {
	return FromBytes(publicKey) + AddressSuffix
}

// ParseAddress - numeric part of an address
func ParseAddress(address string) (uint64, error) {
	if !strings.HasSuffix(address, AddressSuffix) {
		return 0, fault.InvalidAddress
	}
	n, err := Parse(strings.TrimSuffix(address, AddressSuffix))
	if nil != err {
		return 0, fault.InvalidAddress
	}
	return n, nil
}
