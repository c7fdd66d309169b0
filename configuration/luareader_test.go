// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/configuration"
)

type listenerConfig struct {
	Listen             []string `gluamapper:"listen"`
	MaximumConnections int      `gluamapper:"maximum_connections"`
}

type testConfig struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	API           listenerConfig    `gluamapper:"api"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testFile = `
local M = {}
M.data_directory = variables.data_directory
M.chain = "local"
M.api = {
    listen = { "127.0.0.1:2130", "[::1]:2130" },
    maximum_connections = 50,
}
M.levels = { DEFAULT = "info", processor = "debug" }
return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "ledgerd.conf")
	err = ioutil.WriteFile(fileName, []byte(testFile), 0600)
	assert.Nil(t, err)

	config := testConfig{
		Chain: "testing",
	}
	err = configuration.ParseConfigurationFile(fileName, &config, map[string]string{"data_directory": dir})
	assert.Nil(t, err, "parse error")

	assert.Equal(t, dir, config.DataDirectory)
	assert.Equal(t, "local", config.Chain)
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, config.API.Listen)
	assert.Equal(t, 50, config.API.MaximumConnections)
	assert.Equal(t, "debug", config.Levels["processor"])
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	config := testConfig{}
	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &config, nil)
	assert.NotNil(t, err, "missing file accepted")

	fileName := filepath.Join(dir, "notable.conf")
	err = ioutil.WriteFile(fileName, []byte("return 42\n"), 0600)
	assert.Nil(t, err)
	err = configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.NotNil(t, err, "non-table result accepted")
}

func TestReadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	err = ioutil.WriteFile(filepath.Join(dir, "publish.public"), []byte("PUBLIC:abcd"), 0600)
	assert.Nil(t, err)

	fileName := filepath.Join(dir, "ledgerd.conf")
	err = ioutil.WriteFile(fileName, []byte(`
return {
    chain = read_file("publish.public"),
    data_directory = read_file("missing") or "absent",
}
`), 0600)
	assert.Nil(t, err)

	config := testConfig{}
	err = configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "PUBLIC:abcd", config.Chain)
	assert.Equal(t, "absent", config.DataDirectory)
}
