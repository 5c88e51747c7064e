// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chain4travel/caminotx/chain"
	"github.com/chain4travel/caminotx/fault"
)

func TestLookup(t *testing.T) {
	assert.True(t, chain.Valid("Kopernikus"))
	assert.False(t, chain.Valid("bitmark"))

	n, err := chain.Lookup(chain.Columbus)
	require.NoError(t, err)
	assert.Equal(t, uint32(1001), n.ID)
	assert.Equal(t, "columbus", n.HRP)

	n, err = chain.ByID(12345)
	require.NoError(t, err)
	assert.Equal(t, chain.Local, n.Name)

	_, err = chain.ByID(7)
	assert.ErrorIs(t, err, fault.ErrInvalidChain)

	_, err = chain.Lookup("testing")
	assert.ErrorIs(t, err, fault.ErrInvalidChain)
}
