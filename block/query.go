// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// query limits
const (
	DefaultLimit = 100
	MaximumLimit = 100
)

// Filter - selection of confirmed transactions, all set fields must match
type Filter struct {
	BlockID         string
	SenderPublicKey string
	SenderID        string
	RecipientID     string
	OrderBy         string
	Limit           int
	Offset          int
}

type less func(a, b *transactionrecord.Transaction) bool

var sortFields = map[string]less{
	"id":              func(a, b *transactionrecord.Transaction) bool { return numericLess(a.ID, b.ID) },
	"blockId":         func(a, b *transactionrecord.Transaction) bool { return numericLess(a.BlockID, b.BlockID) },
	"type":            func(a, b *transactionrecord.Transaction) bool { return a.Kind < b.Kind },
	"timestamp":       func(a, b *transactionrecord.Transaction) bool { return a.Timestamp < b.Timestamp },
	"senderPublicKey": func(a, b *transactionrecord.Transaction) bool { return bytes.Compare(a.SenderPublicKey, b.SenderPublicKey) < 0 },
	"senderId":        func(a, b *transactionrecord.Transaction) bool { return numericLess(a.SenderID, b.SenderID) },
	"recipientId":     func(a, b *transactionrecord.Transaction) bool { return numericLess(a.RecipientID, b.RecipientID) },
	"amount":          func(a, b *transactionrecord.Transaction) bool { return a.Amount < b.Amount },
	"fee":             func(a, b *transactionrecord.Transaction) bool { return a.Fee < b.Fee },
	"signature":       func(a, b *transactionrecord.Transaction) bool { return bytes.Compare(a.Signature, b.Signature) < 0 },
	"secondSignature": func(a, b *transactionrecord.Transaction) bool { return bytes.Compare(a.SecondSignature, b.SecondSignature) < 0 },
	"confirmations":   func(a, b *transactionrecord.Transaction) bool { return a.Confirmations < b.Confirmations },
}

// decimal strings: shorter is smaller
func numericLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// ParseOrder - "field" or "field:asc" or "field:desc"
func ParseOrder(orderBy string) (string, bool, error) {
	if "" == orderBy {
		return "", false, nil
	}
	parts := strings.SplitN(orderBy, ":", 2)
	field := parts[0]
	descending := false
	if 2 == len(parts) {
		switch strings.ToLower(parts[1]) {
		case "asc":
		case "desc":
			descending = true
		default:
			return "", false, fault.InvalidSortField
		}
	}
	if _, ok := sortFields[field]; !ok {
		return "", false, fault.InvalidSortField
	}
	return field, descending, nil
}

// Validate - check the limits and ordering of a filter
func (f *Filter) Validate() error {
	if f.Limit < 0 || f.Offset < 0 {
		return fault.InvalidCount
	}
	if f.Limit > MaximumLimit {
		return fault.InvalidLimit
	}
	if 0 == f.Limit {
		f.Limit = DefaultLimit
	}
	if "" != f.SenderPublicKey {
		if _, err := hex.DecodeString(f.SenderPublicKey); nil != err {
			return fault.InvalidHex
		}
	}
	_, _, err := ParseOrder(f.OrderBy)
	return err
}

func (f *Filter) match(tx *transactionrecord.Transaction) bool {
	if "" != f.BlockID && f.BlockID != tx.BlockID {
		return false
	}
	if "" != f.SenderPublicKey && !strings.EqualFold(f.SenderPublicKey, hex.EncodeToString(tx.SenderPublicKey)) {
		return false
	}
	if "" != f.SenderID && f.SenderID != tx.SenderID {
		return false
	}
	if "" != f.RecipientID && f.RecipientID != tx.RecipientID {
		return false
	}
	return true
}

// Query - confirmed transactions matching a filter and the total
// number of matches before limit and offset are applied
func (s *Store) Query(f Filter) ([]*transactionrecord.Transaction, int, error) {
	if err := f.Validate(); nil != err {
		return nil, 0, err
	}
	field, descending, _ := ParseOrder(f.OrderBy)

	matches := make([]*transactionrecord.Transaction, 0, f.Limit)
	err := s.transactionCursor(func(height uint64, tx *transactionrecord.Transaction) error {
		tx.Confirmations = s.confirmations(height)
		if f.match(tx) {
			matches = append(matches, tx)
		}
		return nil
	})
	if nil != err {
		return nil, 0, err
	}

	// default is storage order, stable for a given database
	if "" != field {
		compare := sortFields[field]
		sort.SliceStable(matches, func(i, j int) bool {
			if descending {
				return compare(matches[j], matches[i])
			}
			return compare(matches[i], matches[j])
		})
	}

	count := len(matches)
	if f.Offset >= count {
		return []*transactionrecord.Transaction{}, count, nil
	}
	end := f.Offset + f.Limit
	if end > count {
		end = count
	}
	return matches[f.Offset:end], count, nil
}

func (s *Store) transactionCursor(f func(uint64, *transactionrecord.Transaction) error) error {
	return storage.Pool.Transactions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if len(value) < 9 {
			return fault.NewStorageError(fault.TruncatedRecord, "transaction record")
		}
		tx, err := decodeTransaction(value[8:])
		if nil != err {
			return err
		}
		return f(binary.BigEndian.Uint64(value[:8]), tx)
	})
}
