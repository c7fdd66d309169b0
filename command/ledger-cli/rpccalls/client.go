// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

const requestTimeout = 30 * time.Second

// Reply - decoded JSON response body
type Reply map[string]interface{}

// Client - connection to a ledgerd HTTP server
type Client struct {
	base    string
	client  *http.Client
	verbose bool
	e       io.Writer
}

// NewClient - create a client for "https://host:port" or "host:port"
//
// insecure disables certificate verification for self-signed servers
func NewClient(connect string, insecure bool, verbose bool, e io.Writer) (*Client, error) {
	if "" == connect {
		return nil, errors.New("no connection given")
	}
	if !strings.Contains(connect, "://") {
		connect = "https://" + connect
	}
	u, err := url.Parse(connect)
	if nil != err {
		return nil, errors.Wrapf(err, "connection: %q", connect)
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecure,
		},
	}
	return &Client{
		base: strings.TrimSuffix(u.String(), "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
		},
		verbose: verbose,
		e:       e,
	}, nil
}

// Close - release idle connections
func (client *Client) Close() {
	client.client.CloseIdleConnections()
}

// perform a request and decode the reply, a reply with success false
// is returned as an error carrying the server's message
func (client *Client) call(method string, path string, query url.Values, body interface{}) (Reply, error) {
	target := client.base + path
	if 0 != len(query) {
		target += "?" + query.Encode()
	}

	var content io.Reader
	if nil != body {
		data, err := json.Marshal(body)
		if nil != err {
			return nil, err
		}
		if client.verbose {
			fmt.Fprintf(client.e, "request: %s %s\n%s\n", method, target, data)
		}
		content = bytes.NewReader(data)
	} else if client.verbose {
		fmt.Fprintf(client.e, "request: %s %s\n", method, target)
	}

	request, err := http.NewRequest(method, target, content)
	if nil != err {
		return nil, err
	}
	if nil != body {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.client.Do(request)
	if nil != err {
		return nil, errors.Wrap(err, "request failed")
	}
	defer response.Body.Close()

	data, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return nil, errors.Wrap(err, "read reply")
	}
	if client.verbose {
		fmt.Fprintf(client.e, "reply: %s\n%s\n", response.Status, data)
	}

	reply := Reply{}
	if err := json.Unmarshal(data, &reply); nil != err {
		return nil, errors.Wrapf(err, "status: %s  invalid reply", response.Status)
	}
	if ok, _ := reply["success"].(bool); !ok {
		message, _ := reply["error"].(string)
		if "" == message {
			message = response.Status
		}
		return reply, errors.New(message)
	}
	delete(reply, "success")
	return reply, nil
}

// Info - server status
func (client *Client) Info() (Reply, error) {
	return client.call(http.MethodGet, "/peer/getInfo", nil, nil)
}

// Balance - confirmed and unconfirmed balance of an address
func (client *Client) Balance(address string) (Reply, error) {
	return client.call(http.MethodGet, "/api/accounts/getBalance", url.Values{"address": {address}}, nil)
}

// SendData - server side built payment or script invocation
type SendData struct {
	Secret       string          `json:"secret"`
	SecondSecret string          `json:"secondSecret,omitempty"`
	PublicKey    string          `json:"publicKey,omitempty"`
	Amount       json.Number     `json:"amount"`
	RecipientID  string          `json:"recipientId,omitempty"`
	ScriptID     string          `json:"scriptId,omitempty"`
	Input        json.RawMessage `json:"input,omitempty"`
}

// Send - have the server build, sign and process a transaction
func (client *Client) Send(data *SendData) (Reply, error) {
	return client.call(http.MethodPut, "/api/transactions", nil, data)
}

// Transaction - fetch a confirmed or an unconfirmed transaction
func (client *Client) Transaction(id string, unconfirmed bool) (Reply, error) {
	path := "/api/transactions/get"
	if unconfirmed {
		path = "/api/transactions/unconfirmed/get"
	}
	return client.call(http.MethodGet, path, url.Values{"id": {id}}, nil)
}

// ListData - confirmed transaction filter, empty fields are omitted
type ListData struct {
	BlockID     string
	SenderID    string
	RecipientID string
	OrderBy     string
	Limit       int
	Offset      int
}

// List - confirmed transactions matching all of the given fields
func (client *Client) List(data *ListData) (Reply, error) {
	query := url.Values{}
	add := func(key string, value string) {
		if "" != value {
			query.Set(key, value)
		}
	}
	add("blockId", data.BlockID)
	add("senderId", data.SenderID)
	add("recipientId", data.RecipientID)
	add("orderBy", data.OrderBy)
	if data.Limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", data.Limit))
	}
	if data.Offset > 0 {
		query.Set("offset", fmt.Sprintf("%d", data.Offset))
	}
	return client.call(http.MethodGet, "/api/transactions", query, nil)
}

// Unconfirmed - pooled transactions, optionally only those involving an address
func (client *Client) Unconfirmed(address string) (Reply, error) {
	query := url.Values{}
	if "" != address {
		query.Set("address", address)
	}
	return client.call(http.MethodGet, "/api/transactions/unconfirmed", query, nil)
}

// Submit - send a locally signed transaction
func (client *Client) Submit(tx *transactionrecord.Transaction) (Reply, error) {
	return client.call(http.MethodPost, "/peer/processUnconfirmedTransaction", nil, map[string]interface{}{
		"transaction": tx,
	})
}

// SubmitBlock - send a sealed block
func (client *Client) SubmitBlock(b *block.Block) (Reply, error) {
	return client.call(http.MethodPost, "/peer/processBlock", nil, map[string]interface{}{
		"block": b,
	})
}
