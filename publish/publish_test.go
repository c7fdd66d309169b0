// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"errors"
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/background"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/messagebus"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "publish-test")
	if nil != err {
		panic(err)
	}
	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      50000,
		Count:     10,
		Levels:    map[string]string{logger.DefaultTag: "critical"},
	})
	rc := m.Run()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

type frame struct {
	data  []byte
	flags zmq.Flag
}

type fakeSocket struct {
	frames []frame
	fail   bool
}

func (s *fakeSocket) Send(data string, flags zmq.Flag) (int, error) {
	return s.SendBytes([]byte(data), flags)
}

func (s *fakeSocket) SendBytes(data []byte, flags zmq.Flag) (int, error) {
	if s.fail {
		return 0, errors.New("resource temporarily unavailable")
	}
	s.frames = append(s.frames, frame{data: data, flags: flags})
	return len(data), nil
}

func TestPublishMessage(t *testing.T) {
	s := &fakeSocket{}
	item := messagebus.Message{
		Command:    "transaction",
		Parameters: [][]byte{[]byte(`{"id":"1"}`), []byte("relay")},
	}

	err := publishMessage(s, &item)
	assert.Nil(t, err, "publish")
	if assert.Equal(t, 3, len(s.frames), "frame count") {
		assert.Equal(t, "transaction", string(s.frames[0].data), "command")
		assert.Equal(t, zmq.SNDMORE|zmq.DONTWAIT, s.frames[0].flags, "command flags")
		assert.Equal(t, zmq.SNDMORE|zmq.DONTWAIT, s.frames[1].flags, "middle flags")
		assert.Equal(t, "relay", string(s.frames[2].data), "last frame")
		assert.Equal(t, zmq.DONTWAIT, s.frames[2].flags, "last flags")
	}

	bare := &fakeSocket{}
	err = publishMessage(bare, &messagebus.Message{Command: "ping"})
	assert.Nil(t, err, "bare command")
	if assert.Equal(t, 1, len(bare.frames), "bare frame count") {
		assert.Equal(t, zmq.DONTWAIT, bare.frames[0].flags, "bare flags")
	}

	err = publishMessage(&fakeSocket{fail: true}, &item)
	assert.NotNil(t, err, "send failure")
}

type listPool []*transactionrecord.Transaction

func (l listPool) List(reverse bool) []*transactionrecord.Transaction {
	return l
}

type recorder struct {
	ids   []string
	relay []bool
}

func (r *recorder) Notify(tx *transactionrecord.Transaction, relay bool) {
	r.ids = append(r.ids, tx.ID)
	r.relay = append(r.relay, relay)
}

func TestRebroadcast(t *testing.T) {
	pool := listPool{
		{ID: "11"},
		{ID: "22"},
	}
	r := &recorder{}
	rb := newRebroadcaster(pool, r, time.Hour)

	n := rb.once()
	assert.Equal(t, 2, n, "count")
	assert.Equal(t, []string{"11", "22"}, r.ids, "order")
	assert.Equal(t, []bool{true, true}, r.relay, "relay flags")
}

func TestRebroadcastStops(t *testing.T) {
	rb := newRebroadcaster(listPool{}, &recorder{}, time.Millisecond)
	bg := background.Start(background.Processes{rb}, nil)

	done := make(chan struct{})
	go func() {
		bg.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("rebroadcaster did not stop")
	}
}

func TestDisabledPublishing(t *testing.T) {
	err := Initialise(&Configuration{}, listPool{})
	assert.Nil(t, err, "initialise")

	err = Initialise(&Configuration{}, listPool{})
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	err = Finalise()
	assert.Nil(t, err, "finalise")

	err = Finalise()
	assert.Equal(t, fault.NotInitialised, err, "second finalise")
}
