// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signer_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/keychain"
	"github.com/chain4travel/caminotx/ownership"
	"github.com/chain4travel/caminotx/signer"
)

const (
	dir      = "testing"
	category = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

// controlled addresses without real keys, enough for resolution
type controlled map[address.ShortID]bool

func (c controlled) Get(addr address.ShortID) (keychain.Signer, bool) {
	if !c[addr] {
		return nil, false
	}
	return nil, true
}

func (c controlled) Addresses() []address.ShortID {
	result := make([]address.ShortID, 0, len(c))
	for a := range c {
		result = append(result, a)
	}
	address.Sort(result)
	return result
}

func makeAddress(b byte) address.ShortID {
	var a address.ShortID
	for i := range a {
		a[i] = b
	}
	return a
}

func makePolicy(threshold uint32, addresses ...address.ShortID) ownership.Policy {
	p, err := ownership.New(addresses, threshold, 0)
	if nil != err {
		panic(err)
	}
	return p
}

func newResolver(aliases ownership.AliasMap, keys keychain.Keychain) *signer.Resolver {
	return signer.New(logger.New(category), aliases, keys)
}
