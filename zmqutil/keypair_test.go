// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/zmqutil"
)

func TestParseKey(t *testing.T) {
	key := strings.Repeat("ab", 32)

	data, private, err := zmqutil.ParseKey("PUBLIC:" + key + "\n")
	assert.Nil(t, err, "public")
	assert.False(t, private, "public flag")
	assert.Equal(t, 32, len(data), "public length")

	data, private, err = zmqutil.ParseKey(" PRIVATE:" + key)
	assert.Nil(t, err, "private")
	assert.True(t, private, "private flag")
	assert.Equal(t, 32, len(data), "private length")

	_, err = zmqutil.ReadPublicKey("PRIVATE:" + key)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private as public")

	_, err = zmqutil.ReadPrivateKey("PUBLIC:" + key)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public as private")

	_, _, err = zmqutil.ParseKey("PUBLIC:abcd")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short")

	_, _, err = zmqutil.ParseKey("PUBLIC:xy")
	assert.Equal(t, fault.InvalidHex, err, "hex")

	_, _, err = zmqutil.ParseKey(key)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged")
}

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil-test")
	if !assert.Nil(t, err, "temp dir") {
		return
	}
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "publish.public")
	private := filepath.Join(dir, "publish.private")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Nil(t, err, "make")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(publicKey), "public length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(privateKey), "private length")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "overwrite")
}
