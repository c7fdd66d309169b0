// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/ledgerd.log", util.EnsureAbsolute("/data", "ledgerd.log"))
	assert.Equal(t, "/var/log/x.log", util.EnsureAbsolute("/data", "/var/log/x.log"))
	assert.Equal(t, "/data/sub/y", util.EnsureAbsolute("/data", "sub/../sub/y"))
	assert.Equal(t, "", util.EnsureAbsolute("/data", ""))
}

func TestResolvePaths(t *testing.T) {
	genesis := "genesis.json"
	pid := ""
	key := "/etc/ledgerd/rpc.key"

	util.ResolvePaths("/data", &genesis, &pid, &key)
	assert.Equal(t, "/data/genesis.json", genesis)
	assert.Equal(t, "", pid)
	assert.Equal(t, "/etc/ledgerd/rpc.key", key)
}

func TestFilesAndDirectories(t *testing.T) {
	dir, err := ioutil.TempDir("", "util-test")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "a", "b")
	second := filepath.Join(dir, "c")
	assert.Nil(t, util.MakeDirectories(first, second))
	assert.Nil(t, util.MakeDirectories(first), "existing directory")

	name := filepath.Join(dir, "publish.private")
	other := filepath.Join(dir, "publish.public")
	assert.False(t, util.AnyFileExists(name, other), "files should not exist")
	assert.True(t, util.AnyFileExists(name, first), "directory exists")

	err = ioutil.WriteFile(other, []byte("x"), 0600)
	assert.Nil(t, err)
	assert.True(t, util.AnyFileExists(name, other), "file should exist")
	assert.False(t, util.AnyFileExists())
}
