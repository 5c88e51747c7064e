// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keychain

import (
	"github.com/chain4travel/caminotx/address"
)

// Keyring - in-memory secp256k1 keys
type Keyring struct {
	keys      map[address.ShortID]*PrivateKey
	addresses []address.ShortID
}

// ensure the interfaces are implemented
var (
	_ Keychain = (*Keyring)(nil)
	_ Signer   = (*PrivateKey)(nil)
)

// NewKeyring - a keyring holding the given keys
func NewKeyring(keys ...*PrivateKey) *Keyring {
	kr := &Keyring{
		keys: make(map[address.ShortID]*PrivateKey),
	}
	for _, k := range keys {
		kr.Add(k)
	}
	return kr
}

// Add - a key, repeated keys are ignored
func (kr *Keyring) Add(k *PrivateKey) {
	a := k.Address()
	if _, ok := kr.keys[a]; ok {
		return
	}
	kr.keys[a] = k
	kr.addresses = append(kr.addresses, a)
	address.Sort(kr.addresses)
}

// Get - signer for an address
func (kr *Keyring) Get(addr address.ShortID) (Signer, bool) {
	k, ok := kr.keys[addr]
	if !ok {
		return nil, false
	}
	return k, true
}

// Addresses - sorted controlled addresses
func (kr *Keyring) Addresses() []address.ShortID {
	result := make([]address.ShortID, len(kr.addresses))
	copy(result, kr.addresses)
	return result
}

// Len - number of keys
func (kr *Keyring) Len() int {
	return len(kr.keys)
}
