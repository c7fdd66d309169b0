// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
)

func TestListenAddress(t *testing.T) {
	items := []struct {
		in  string
		out string
		v6  bool
	}{
		{"127.0.0.1:2135", "tcp://127.0.0.1:2135", false},
		{" 127.0.0.1:1 ", "tcp://127.0.0.1:1", false},
		{"0.0.0.0:65535", "tcp://0.0.0.0:65535", false},
		{"[::1]:2135", "tcp://[::1]:2135", true},
		{"[0:0::0:0]:2135", "tcp://[::]:2135", true},
		{"*:2130", "tcp://[::]:2130", true},
		{"[::ffff:10.0.0.1]:80", "tcp://10.0.0.1:80", false},
	}
	for i, item := range items {
		c, v6, err := util.ListenAddress("tcp://", item.in)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.out, c, "%d: address", i)
		assert.Equal(t, item.v6, v6, "%d: v6", i)
	}
}

func TestListenAddressInvalid(t *testing.T) {
	items := []struct {
		in  string
		err error
	}{
		{"", fault.InvalidIPAddress},
		{"localhost:2130", fault.InvalidIPAddress},
		{"127.0.0.1", fault.InvalidIPAddress},
		{"*", fault.InvalidIPAddress},
		{"127.0.0.1:0", fault.InvalidPortNumber},
		{"127.0.0.1:65536", fault.InvalidPortNumber},
		{"[::1]:x", fault.InvalidPortNumber},
	}
	for i, item := range items {
		_, _, err := util.ListenAddress("", item.in)
		assert.Equal(t, item.err, err, "%d: %q", i, item.in)
	}
}
