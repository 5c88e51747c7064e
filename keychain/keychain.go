// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keychain holds the signing keys a wallet controls
//
// the resolver only needs to know which addresses are controlled and
// to obtain a signature over a 32 byte hash for one of them
package keychain

//go:generate mockgen -source=keychain.go -destination=mocks/keychain.go -package=mocks

import (
	"github.com/chain4travel/caminotx/address"
)

// Signer - produces signatures for one address
type Signer interface {
	// SignHash - recoverable signature [r || s || v] over a 32 byte hash
	SignHash(hash []byte) ([]byte, error)
	Address() address.ShortID
	PublicKey() []byte
}

// Keychain - a set of addresses with their signers
type Keychain interface {
	// Get - the signer for an address, false if not controlled
	Get(addr address.ShortID) (Signer, bool)
	// Addresses - all controlled addresses in ascending order
	Addresses() []address.ShortID
}
