// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "ledgerd-configuration")
	assert.Nil(t, err)

	fileName := filepath.Join(dir, "ledgerd.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	assert.Nil(t, err)
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	sample, err := ioutil.ReadFile("ledgerd.conf.sample")
	assert.Nil(t, err)

	dir, fileName := writeConfiguration(t, string(sample))
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "sample configuration")

	assert.Equal(t, filepath.Join(dir, "data", "ledgerd.leveldb"), c.Database.Name)
	assert.Equal(t, filepath.Join(dir, "genesis.json"), c.GenesisFile)
	assert.Equal(t, filepath.Join(dir, "reservoir.cache"), c.ReservoirDataFile)
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate)
	assert.Equal(t, filepath.Join(dir, "publish.private"), c.Publishing.PrivateKey)
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory)
	assert.Equal(t, uint64(100), c.ClientRPC.MaximumConnections)
	assert.Equal(t, 40, c.ClientRPC.RequestBurst)
	assert.Equal(t, []string{"0.0.0.0:2135", "[::]:2135"}, c.Publishing.Broadcast)
	assert.Equal(t, 300, c.Publishing.Rebroadcast)
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"])

	_, err = os.Stat(filepath.Join(dir, "data"))
	assert.Nil(t, err, "database directory not created")
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = variables.data_directory
return M
`)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err)

	assert.Equal(t, defaultScriptCacheExpiry, c.ScriptCacheExpiry)
	assert.Equal(t, float64(defaultRequestRate), c.ClientRPC.RequestRate)
	assert.Equal(t, 0, len(c.ClientRPC.Listen))
	assert.Equal(t, 0, len(c.Publishing.Broadcast))
	assert.Equal(t, "", c.PidFile)
}

func TestGetConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no data directory", "return {}\n"},
		{"missing data directory", `return { data_directory = "/nonexistent/ledgerd" }` + "\n"},
		{"path as database name", `return { data_directory = ".", database = { name = "a/b.leveldb" } }` + "\n"},
		{"zero script expiry", `return { data_directory = ".", script_cache_expiry = 0 }` + "\n"},
	}

	for _, test := range tests {
		dir, fileName := writeConfiguration(t, test.text)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, test.name)
		os.RemoveAll(dir)
	}
}
