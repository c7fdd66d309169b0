// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/rpc/certificate"
	"github.com/bitmark-inc/ledgerd/util"
)

const (
	serverName         = "http_rpc"
	minConnectionCount = 1
	readWriteTimeout   = 10 * time.Second
	shutdownTimeout    = 5 * time.Second
)

// Configuration - configuration file data for the HTTPS listener
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	RequestRate        float64  `gluamapper:"request_rate" json:"request_rate"`
	RequestBurst       int      `gluamapper:"request_burst" json:"request_burst"`
}

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	connections counter.Counter
	servers     []*http.Server

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the HTTPS servers
func Initialise(configuration *Configuration, engine Engine, pool Pool, chain Chain, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", serverName)
		globalData.initialised = true
		return nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", serverName, configuration.MaximumConnections)
		return fault.MissingParameters
	}

	tlsConfiguration, fingerprint, err := certificate.Load(log, serverName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", serverName, fingerprint)

	router := NewRouter(
		log,
		engine,
		pool,
		chain,
		version,
		Limits{
			MaximumConnections: configuration.MaximumConnections,
			RequestRate:        configuration.RequestRate,
			RequestBurst:       configuration.RequestBurst,
		},
		Metrics{
			Registerer: prometheus.DefaultRegisterer,
			Gatherer:   prometheus.DefaultGatherer,
		},
		&globalData.connections,
	)

	listeners := make([]net.Listener, 0, len(configuration.Listen))
	closeAll := func() {
		for _, l := range listeners {
			l.Close()
		}
	}
	for _, listen := range configuration.Listen {
		address, _, err := util.ListenAddress("", listen)
		if nil != err {
			log.Errorf("%s: invalid listen: %q  error: %s", serverName, listen, err)
			closeAll()
			return err
		}
		l, err := net.Listen("tcp", address)
		if nil != err {
			log.Errorf("%s: listen: %q  error: %s", serverName, address, err)
			closeAll()
			return err
		}
		listeners = append(listeners, l)
	}

	tlsConfiguration.NextProtos = []string{"http/1.1"}
	for _, l := range listeners {
		s := &http.Server{
			Handler:        router,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		globalData.servers = append(globalData.servers, s)

		log.Infof("starting server: %s on: %q", serverName, l.Addr())
		go func(s *http.Server, l net.Listener) {
			tlsListener := tls.NewListener(tcpKeepAliveListener{l.(*net.TCPListener)}, tlsConfiguration)
			if err := s.Serve(tlsListener); nil != err && http.ErrServerClosed != err {
				log.Errorf("%s: serve error: %s", serverName, err)
			}
		}(s, l)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the servers
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, s := range globalData.servers {
		if err := s.Shutdown(ctx); nil != err {
			globalData.log.Errorf("server shutdown error: %s", err)
		}
	}
	globalData.servers = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	tc.SetKeepAlive(true)
	tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}
