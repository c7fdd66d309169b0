// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/background"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/messagebus"
	"github.com/bitmark-inc/ledgerd/processor"
	"github.com/bitmark-inc/ledgerd/zmqutil"
)

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast   []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey  string   `gluamapper:"private_key" json:"private_key"`
	PublicKey   string   `gluamapper:"public_key" json:"public_key"`
	Rebroadcast int      `gluamapper:"rebroadcast" json:"rebroadcast"` // seconds, zero disables
}

// globals for background proccess
type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc  broadcaster
	rebrd *rebroadcaster

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the broadcaster and the optional rebroadcaster
//
// nothing is started when no broadcast addresses are configured
func Initialise(configuration *Configuration, pool PoolLister) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	processes := background.Processes{}

	if 0 != len(configuration.Broadcast) {
		privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		globalData.log.Tracef("public key:  %x", publicKey)

		if err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast, messagebus.Bus.Broadcast); nil != err {
			return err
		}
		processes = append(processes, &globalData.brdc)

		if configuration.Rebroadcast > 0 {
			globalData.rebrd = newRebroadcaster(
				pool,
				processor.NewBusNotifier(messagebus.Bus.Broadcast),
				time.Duration(configuration.Rebroadcast)*time.Second,
			)
			processes = append(processes, globalData.rebrd)
		}
	} else {
		globalData.log.Warn("no broadcast addresses: publishing disabled")
	}

	// all data initialised
	globalData.initialised = true

	globalData.log.Info("start background…")
	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
