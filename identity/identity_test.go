// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/identity"
)

func TestFromDigest(t *testing.T) {
	digest := [sha256.Size]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0xff}
	assert.Equal(t, "72623859790382856", identity.FromDigest(digest), "big endian read")

	all := [sha256.Size]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	assert.Equal(t, "18446744073709551615", identity.FromDigest(all), "uint64 maximum")

	zero := [sha256.Size]byte{}
	assert.Equal(t, "0", identity.FromDigest(zero), "zero")
}

func TestFromBytesIsDeterministic(t *testing.T) {
	a := identity.FromBytes([]byte("payload"))
	b := identity.FromBytes([]byte("payload"))
	c := identity.FromBytes([]byte("payload!"))
	assert.Equal(t, a, b, "same input gave different ids")
	assert.NotEqual(t, a, c, "different input gave same id")
	assert.True(t, identity.Valid(a), "derived id not valid")
}

func TestParse(t *testing.T) {
	items := []struct {
		id    string
		value uint64
		err   error
	}{
		{"0", 0, nil},
		{"12345", 12345, nil},
		{"18446744073709551615", 18446744073709551615, nil},
		{"18446744073709551616", 0, fault.InvalidTransactionID},
		{"", 0, fault.InvalidTransactionID},
		{"0123", 0, fault.InvalidTransactionID},
		{"12a", 0, fault.InvalidTransactionID},
		{"-1", 0, fault.InvalidTransactionID},
	}
	for i, item := range items {
		n, err := identity.Parse(item.id)
		assert.Equal(t, item.err, err, "%d: %q", i, item.id)
		assert.Equal(t, item.value, n, "%d: %q", i, item.id)
	}
}

func TestAddress(t *testing.T) {
	publicKey := make([]byte, 32)
	address := identity.Address(publicKey)
	assert.Equal(t, identity.FromBytes(publicKey)+"C", address)

	n, err := identity.ParseAddress(address)
	assert.Nil(t, err)
	assert.Equal(t, address, identity.FromDigest(sha256.Sum256(publicKey))+"C")
	assert.NotZero(t, n)

	_, err = identity.ParseAddress("12345")
	assert.Equal(t, fault.InvalidAddress, err, "missing suffix")
	_, err = identity.ParseAddress("C")
	assert.Equal(t, fault.InvalidAddress, err, "missing number")
	_, err = identity.ParseAddress("1x2C")
	assert.Equal(t, fault.InvalidAddress, err, "bad digits")
}
