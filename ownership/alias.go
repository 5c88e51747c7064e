// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"fmt"

	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/fault"
)

// AliasMap - registered multisig aliases
//
// an alias address stands for its policy wherever it appears in another
// policy; the map is only read while signers are being resolved
type AliasMap map[address.ShortID]Policy

// Lookup - policy registered for an address
func (m AliasMap) Lookup(addr address.ShortID) (Policy, bool) {
	p, ok := m[addr]
	return p, ok
}

// Add - register an alias, a second registration of the same address
// is an error
func (m AliasMap) Add(alias address.ShortID, p Policy) error {
	if _, ok := m[alias]; ok {
		return fmt.Errorf("%w: %s", fault.ErrDuplicateAlias, alias)
	}
	if err := p.Verify(); nil != err {
		return err
	}
	m[alias] = p
	return nil
}
