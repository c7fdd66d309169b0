// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

type tagType byte

// record types in backup file
const (
	taggedBOF         tagType = iota
	taggedEOF         tagType = iota
	taggedTransaction tagType = iota
	taggedQuarantine  tagType = iota
)

const maximumRecordLength = 65535

// exact match is required
var bofData = []byte("ledgerd-pool v1.0")

// Backup - contents of a backup file
type Backup struct {
	Transactions []*transactionrecord.Transaction
	Quarantined  []*transactionrecord.Transaction
}

// SaveToFile - write pool then quarantine in pool order
func (p *Pool) SaveToFile(filename string) error {
	p.RLock()
	defer p.RUnlock()

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	err = writeRecord(f, taggedBOF, bofData)
	if nil != err {
		return err
	}

	for _, e := range p.entries {
		if e.removed {
			continue
		}
		if err := writeTransaction(f, taggedTransaction, e.tx); nil != err {
			return err
		}
	}
	for _, tx := range p.quarantine {
		if err := writeTransaction(f, taggedQuarantine, tx); nil != err {
			return err
		}
	}

	return writeRecord(f, taggedEOF, []byte("EOF"))
}

// LoadFromFile - read a backup
//
// the transactions are not added, they must be resubmitted through
// the processor
func LoadFromFile(filename string) (*Backup, error) {
	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	tag, packed, err := readRecord(f)
	if nil != err {
		return nil, err
	}
	if taggedBOF != tag {
		return nil, fmt.Errorf("expected BOF: %d but read: %d", taggedBOF, tag)
	}
	if !bytes.Equal(bofData, packed) {
		return nil, fmt.Errorf("expected BOF: %q but read: %q", bofData, packed)
	}

	backup := &Backup{}

restore_loop:
	for {
		tag, packed, err := readRecord(f)
		if nil != err {
			return nil, err
		}

		switch tag {
		case taggedEOF:
			break restore_loop

		case taggedTransaction, taggedQuarantine:
			tx := &transactionrecord.Transaction{}
			if err := json.Unmarshal(packed, tx); nil != err {
				return nil, err
			}
			if taggedTransaction == tag {
				backup.Transactions = append(backup.Transactions, tx)
			} else {
				backup.Quarantined = append(backup.Quarantined, tx)
			}

		default:
			return nil, fmt.Errorf("read invalid tag: 0x%02x", tag)
		}
	}
	return backup, nil
}

func writeTransaction(w io.Writer, tag tagType, tx *transactionrecord.Transaction) error {
	packed, err := json.Marshal(tx)
	if nil != err {
		return err
	}
	return writeRecord(w, tag, packed)
}

// write a tagged record
func writeRecord(w io.Writer, tag tagType, packed []byte) error {
	if len(packed) > maximumRecordLength {
		return fmt.Errorf("write record packed length: %d > %d", len(packed), maximumRecordLength)
	}

	header := make([]byte, 3)
	header[0] = byte(tag)
	binary.BigEndian.PutUint16(header[1:], uint16(len(packed)))
	if _, err := w.Write(header); nil != err {
		return err
	}
	_, err := w.Write(packed)
	return err
}

func readRecord(r io.Reader) (tagType, []byte, error) {
	header := make([]byte, 3)
	if _, err := io.ReadFull(r, header); nil != err {
		return taggedEOF, nil, fmt.Errorf("read record header: %s", err)
	}

	count := int(binary.BigEndian.Uint16(header[1:]))
	buffer := make([]byte, count)
	if _, err := io.ReadFull(r, buffer); nil != err {
		return taggedEOF, nil, fmt.Errorf("read record data: %s", err)
	}
	return tagType(header[0]), buffer, nil
}
