// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"strings"

	"github.com/chain4travel/caminotx/fault"
)

// names of all networks
const (
	Camino     = "camino"
	Columbus   = "columbus"
	Kopernikus = "kopernikus"
	Local      = "local"
)

// Network - identifiers that differ between networks
type Network struct {
	Name string
	ID   uint32
	HRP  string // bech32 human readable part
}

var networks = map[string]Network{
	Camino:     {Name: Camino, ID: 1000, HRP: "camino"},
	Columbus:   {Name: Columbus, ID: 1001, HRP: "columbus"},
	Kopernikus: {Name: Kopernikus, ID: 1002, HRP: "kopernikus"},
	Local:      {Name: Local, ID: 12345, HRP: "local"},
}

// Valid - validate a network name
func Valid(name string) bool {
	_, ok := networks[strings.ToLower(name)]
	return ok
}

// Lookup - parameters of a named network
func Lookup(name string) (Network, error) {
	n, ok := networks[strings.ToLower(name)]
	if !ok {
		return Network{}, fault.ErrInvalidChain
	}
	return n, nil
}

// ByID - parameters for a network id found in a transaction
func ByID(id uint32) (Network, error) {
	for _, n := range networks {
		if n.ID == id {
			return n, nil
		}
	}
	return Network{}, fault.ErrInvalidChain
}
