// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/ledgerd/messagebus"
	"github.com/bitmark-inc/ledgerd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
)

// sender - the part of a zmq socket used for publishing
type sender interface {
	Send(data string, flags zmq.Flag) (int, error)
	SendBytes(data []byte, flags zmq.Flag) (int, error)
}

type broadcaster struct {
	log     *logger.L
	queue   *messagebus.Queue
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, queue *messagebus.Queue) error {
	log := logger.New("broadcaster")
	brdc.log = log
	brdc.queue = queue

	log.Info("initialising…")

	// allocate IPv4 and IPv6 sockets
	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - publish every queued message until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  parameters: %d", item.Command, len(item.Parameters))
			if nil != brdc.socket4 {
				if err := publishMessage(brdc.socket4, &item); nil != err {
					log.Warnf("IPv4 send error: %s", err)
				}
			}
			if nil != brdc.socket6 {
				if err := publishMessage(brdc.socket6, &item); nil != err {
					log.Warnf("IPv6 send error: %s", err)
				}
			}
		}
	}
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send the command followed by its parameters as one multipart message
func publishMessage(socket sender, item *messagebus.Message) error {
	flags := zmq.DONTWAIT
	if 0 != len(item.Parameters) {
		flags |= zmq.SNDMORE
	}
	if _, err := socket.Send(item.Command, flags); nil != err {
		return err
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		if _, err := socket.SendBytes(p, flags); nil != err {
			return err
		}
	}
	return nil
}
