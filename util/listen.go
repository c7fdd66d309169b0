// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
)

// ListenAddress - normalise a configured "IP:port" for binding and
// add a prefix such as "tcp://"
//
// "*:port" means all interfaces and becomes "[::]:port", which the
// kernel normally shares with IPv4; the boolean result is true for
// an IPv6 address
func ListenAddress(prefix string, hostPort string) (string, bool, error) {
	hostPort = strings.TrimSpace(hostPort)
	if strings.HasPrefix(hostPort, "*:") {
		hostPort = "[::]" + hostPort[1:]
	}

	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return "", false, fault.InvalidIPAddress
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.InvalidIPAddress
	}

	n, err := strconv.Atoi(port)
	if nil != err || n < 1 || n > 65535 {
		return "", false, fault.InvalidPortNumber
	}

	if ip4 := ip.To4(); nil != ip4 {
		return prefix + net.JoinHostPort(ip4.String(), strconv.Itoa(n)), false, nil
	}
	return prefix + net.JoinHostPort(ip.String(), strconv.Itoa(n)), true, nil
}
