// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package delegate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/delegate"
)

func TestRegistry(t *testing.T) {
	r := delegate.NewRegistry()

	r.AddUnconfirmed("Alice", "aa")
	assert.True(t, r.UnconfirmedName("alice"), "name case")
	assert.True(t, r.UnconfirmedDelegate("aa"))
	assert.False(t, r.ExistsName("alice"), "reservation is not confirmed")

	r.RemoveUnconfirmed("Alice", "aa")
	r.Cache("Alice", "aa")
	assert.False(t, r.UnconfirmedName("alice"))
	assert.True(t, r.ExistsName("ALICE"))
	assert.True(t, r.ExistsDelegate("aa"))

	r.Cache("bob", "bb")
	assert.Equal(t, []delegate.Delegate{{Name: "Alice", PublicKey: "aa"}, {Name: "bob", PublicKey: "bb"}}, r.List())

	r.Uncache("Alice", "aa")
	assert.False(t, r.ExistsName("alice"))
	assert.False(t, r.ExistsDelegate("aa"))
}
