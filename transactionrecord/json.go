// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
)

// wire form, binary fields are hex
type transactionJSON struct {
	ID              string      `json:"id"`
	BlockID         string      `json:"blockId,omitempty"`
	Height          uint64      `json:"height,omitempty"`
	Type            Kind        `json:"type"`
	Timestamp       uint32      `json:"timestamp"`
	SenderPublicKey string      `json:"senderPublicKey"`
	SenderID        string      `json:"senderId,omitempty"`
	RecipientID     string      `json:"recipientId,omitempty"`
	Amount          json.Number `json:"amount"`
	Fee             json.Number `json:"fee,omitempty"`
	Signature       string      `json:"signature"`
	SecondSignature string      `json:"secondSignature,omitempty"`
	Asset           assetJSON   `json:"asset"`
	Confirmations   uint64      `json:"confirmations,omitempty"`
}

type signatureAssetJSON struct {
	PublicKey string `json:"publicKey"`
}

type delegateAssetJSON struct {
	Username string `json:"username"`
}

type scriptAssetJSON struct {
	Code        string `json:"code"`
	Parameters  string `json:"parameters"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type inputAssetJSON struct {
	ScriptID string `json:"scriptId"`
	Data     string `json:"data"`
}

type assetJSON struct {
	Signature *signatureAssetJSON `json:"signature,omitempty"`
	Delegate  *delegateAssetJSON  `json:"delegate,omitempty"`
	Votes     []string            `json:"votes,omitempty"`
	Script    *scriptAssetJSON    `json:"script,omitempty"`
	Input     *inputAssetJSON     `json:"input,omitempty"`
	Username  string              `json:"username,omitempty"`
}

// MarshalJSON - convert to the wire format
func (tx Transaction) MarshalJSON() ([]byte, error) {
	j := transactionJSON{
		ID:              tx.ID,
		BlockID:         tx.BlockID,
		Height:          tx.Height,
		Type:            tx.Kind,
		Timestamp:       tx.Timestamp,
		SenderPublicKey: hex.EncodeToString(tx.SenderPublicKey),
		SenderID:        tx.SenderID,
		RecipientID:     tx.RecipientID,
		Amount:          json.Number(strconv.FormatInt(tx.Amount, 10)),
		Fee:             json.Number(strconv.FormatInt(tx.Fee, 10)),
		Signature:       hex.EncodeToString(tx.Signature),
		SecondSignature: hex.EncodeToString(tx.SecondSignature),
		Confirmations:   tx.Confirmations,
	}

	switch asset := tx.Asset.(type) {
	case nil, *Payment:
	case *SecondSignature:
		j.Asset.Signature = &signatureAssetJSON{PublicKey: hex.EncodeToString(asset.PublicKey)}
	case *Delegate:
		j.Asset.Delegate = &delegateAssetJSON{Username: asset.Username}
	case *Vote:
		j.Asset.Votes = asset.Votes
	case *Script:
		j.Asset.Script = &scriptAssetJSON{
			Code:        hex.EncodeToString(asset.Code),
			Parameters:  hex.EncodeToString(asset.Parameters),
			Name:        asset.Name,
			Description: asset.Description,
		}
	case *ScriptInvoke:
		j.Asset.Input = &inputAssetJSON{ScriptID: asset.ScriptID, Data: hex.EncodeToString(asset.Data)}
	case *Username:
		j.Asset.Username = asset.Username
	default:
		return nil, fault.UnknownTransactionType
	}
	return json.Marshal(j)
}

// UnmarshalJSON - convert from the wire format
//
// a received fee is informational, it is replaced during validation
func (tx *Transaction) UnmarshalJSON(s []byte) error {
	var j transactionJSON
	if err := json.Unmarshal(s, &j); nil != err {
		return fault.InvalidJSON
	}
	if !j.Type.Valid() {
		return fault.UnknownTransactionType
	}

	amount, err := parseAmount(j.Amount)
	if nil != err {
		return err
	}
	fee, err := parseAmount(j.Fee)
	if nil != err {
		return err
	}
	senderPublicKey, err := decodeHex(j.SenderPublicKey)
	if nil != err {
		return err
	}
	signature, err := decodeHex(j.Signature)
	if nil != err {
		return err
	}
	secondSignature, err := decodeHex(j.SecondSignature)
	if nil != err {
		return err
	}
	asset, err := j.Asset.decode(j.Type)
	if nil != err {
		return err
	}

	*tx = Transaction{
		ID:              j.ID,
		BlockID:         j.BlockID,
		Height:          j.Height,
		Kind:            j.Type,
		Timestamp:       j.Timestamp,
		SenderPublicKey: senderPublicKey,
		SenderID:        j.SenderID,
		RecipientID:     j.RecipientID,
		Amount:          amount,
		Fee:             fee,
		Signature:       signature,
		SecondSignature: secondSignature,
		Asset:           asset,
		Confirmations:   j.Confirmations,
	}
	return nil
}

func (a *assetJSON) decode(kind Kind) (Asset, error) {
	switch kind {
	case PaymentKind:
		return &Payment{}, nil

	case SecondSignatureKind:
		if nil == a.Signature {
			return nil, fault.EmptyTransactionAsset
		}
		publicKey, err := decodeHex(a.Signature.PublicKey)
		if nil != err {
			return nil, err
		}
		return &SecondSignature{PublicKey: publicKey}, nil

	case DelegateKind:
		if nil == a.Delegate {
			return nil, fault.EmptyTransactionAsset
		}
		return &Delegate{Username: a.Delegate.Username}, nil

	case VoteKind:
		return &Vote{Votes: a.Votes}, nil

	case ScriptDeployKind:
		if nil == a.Script {
			return nil, fault.EmptyTransactionAsset
		}
		code, err := decodeHex(a.Script.Code)
		if nil != err {
			return nil, err
		}
		parameters, err := decodeHex(a.Script.Parameters)
		if nil != err {
			return nil, err
		}
		return &Script{
			Code:        code,
			Parameters:  parameters,
			Name:        a.Script.Name,
			Description: a.Script.Description,
		}, nil

	case ScriptInvokeKind:
		if nil == a.Input {
			return nil, fault.EmptyTransactionAsset
		}
		data, err := decodeHex(a.Input.Data)
		if nil != err {
			return nil, err
		}
		return &ScriptInvoke{ScriptID: a.Input.ScriptID, Data: data}, nil

	case UsernameKind:
		return &Username{Username: a.Username}, nil

	default:
		return nil, fault.UnknownTransactionType
	}
}

// amounts are integers, any fraction or exponent is rejected
func parseAmount(n json.Number) (int64, error) {
	s := n.String()
	if "" == s {
		return 0, nil
	}
	if strings.ContainsAny(s, ".eE") {
		return 0, fault.InvalidAmount
	}
	amount, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.InvalidAmount
	}
	return amount, nil
}

func decodeHex(s string) ([]byte, error) {
	if "" == s {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.InvalidHex
	}
	return b, nil
}
