// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/delegate"
	"github.com/bitmark-inc/ledgerd/messagebus"
	"github.com/bitmark-inc/ledgerd/processor"
	"github.com/bitmark-inc/ledgerd/publish"
	"github.com/bitmark-inc/ledgerd/reservoir"
	"github.com/bitmark-inc/ledgerd/rpc"
	"github.com/bitmark-inc/ledgerd/script"
	"github.com/bitmark-inc/ledgerd/slot"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/typeregistry"
	"github.com/bitmark-inc/ledgerd/username"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %s", spew.Sdump(theConfiguration))

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database.Name)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// block data storage - depends on storage
	log.Info("initialise block")
	blocks, err := block.NewStore()
	if nil != err {
		log.Criticalf("block initialise error: %s", err)
		exitwithstatus.Message("block initialise error: %s", err)
	}

	// these commands are allowed to access the internal block store
	if len(arguments) > 0 && processDataCommand(log, arguments, blocks) {
		return
	}

	env := &typeregistry.Environment{
		Accounts:  account.NewRegistry(),
		Delegates: delegate.NewRegistry(),
		Usernames: username.NewRegistry(),
		Scripts:   script.NewStore(time.Duration(theConfiguration.ScriptCacheExpiry) * time.Second),
		Clock:     slot.New(),
	}

	// relay notifications are only queued when something publishes them
	var notifier processor.Notifier
	if len(theConfiguration.Publishing.Broadcast) > 0 {
		notifier = processor.NewBusNotifier(messagebus.Bus.Broadcast)
	}

	pool := reservoir.New()
	engine := processor.New(
		typeregistry.New(env),
		pool,
		blocks,
		notifier,
		prometheus.DefaultRegisterer,
	)

	// rebuild the in-memory state from the confirmed blocks
	log.Info("replay blocks")
	genesis, err := readGenesis(theConfiguration.GenesisFile)
	if nil != err {
		log.Criticalf("genesis file: %q  error: %s", theConfiguration.GenesisFile, err)
		exitwithstatus.Message("genesis file: %q  error: %s", theConfiguration.GenesisFile, err)
	}
	err = engine.Replay(context.Background(), genesis)
	if nil != err {
		log.Criticalf("replay error: %s", err)
		exitwithstatus.Message("replay error: %s", err)
	}
	log.Infof("height: %d  accounts: %d", blocks.Height(), env.Accounts.Len())

	// restore any previously saved transactions before any
	// network services are started
	backup, err := reservoir.LoadFromFile(theConfiguration.ReservoirDataFile)
	if nil != err && !os.IsNotExist(err) {
		log.Criticalf("reservoir reload error: %s", err)
		exitwithstatus.Message("reservoir reload error: %s", err)
	}
	if nil != backup {
		n := engine.RestorePool(context.Background(), backup)
		log.Infof("restored: %d of %d pooled transactions", n, len(backup.Transactions))
	}
	defer func() {
		if err := engine.SavePool(theConfiguration.ReservoirDataFile); nil != err {
			log.Errorf("reservoir save error: %s", err)
		}
	}()

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing, pool)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc servers
	err = rpc.Initialise(&theConfiguration.ClientRPC, engine, pool, blocks, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// the genesis block is only needed for an empty database
func readGenesis(fileName string) (*block.Block, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var b block.Block
	if err := json.Unmarshal(data, &b); nil != err {
		return nil, err
	}
	return &b, nil
}
