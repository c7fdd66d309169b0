// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"context"

	"github.com/bitmark-inc/ledgerd/block"
	"github.com/bitmark-inc/ledgerd/fault"
)

// Replay - rebuild the in-memory state from confirmed storage
//
// an empty store is started with the genesis block, otherwise the
// stored genesis must match the given one
func (p *Processor) Replay(ctx context.Context, genesis *block.Block) error {
	if 0 == p.blocks.Height() {
		if nil == genesis {
			return fault.BlockNotFound
		}
		if !genesis.IsGenesis() {
			return fault.WrongNetworkForBlock
		}
		p.log.Infof("empty store, applying genesis: %s", genesis.ID)
		return p.ProcessBlock(ctx, genesis)
	}

	p.Lock()
	defer p.Unlock()

	genesisID := p.blocks.GenesisID()
	if nil != genesis && genesis.ID != genesisID {
		p.log.Criticalf("stored genesis: %s  expected: %s", genesisID, genesis.ID)
		return fault.WrongNetworkForBlock
	}
	p.ledger.SetGenesis(genesisID)

	count := 0
	err := p.blocks.Blocks(func(b *block.Block) error {
		if _, err := p.applyConfirmed(ctx, b.Transactions, false); nil != err {
			p.log.Criticalf("replay block: %d  error: %s", b.Height, err)
			return err
		}
		count += 1
		return nil
	})
	if nil != err {
		return err
	}
	p.log.Infof("replayed: %d blocks", count)
	return nil
}
