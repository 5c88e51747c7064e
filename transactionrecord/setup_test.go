// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"testing"

	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/merkle"
	"github.com/chain4travel/caminotx/ownership"
	"github.com/chain4travel/caminotx/transactionrecord"
)

// an address with every byte set to b
func makeAddress(b byte) address.ShortID {
	var a address.ShortID
	for i := range a {
		a[i] = b
	}
	return a
}

// a digest with every byte set to b
func makeDigest(b byte) merkle.Digest {
	var d merkle.Digest
	for i := range d {
		d[i] = b
	}
	return d
}

func makeOwners(t *testing.T, threshold uint32, lockTime uint64, ids ...byte) ownership.Policy {
	addresses := make([]address.ShortID, len(ids))
	for i, b := range ids {
		addresses[i] = makeAddress(b)
	}
	p, err := ownership.New(addresses, threshold, lockTime)
	if nil != err {
		t.Fatalf("owners error: %s", err)
	}
	return p
}

func makeSignature(b byte) transactionrecord.Signature {
	var sig transactionrecord.Signature
	for i := range sig {
		sig[i] = b
	}
	return sig
}

// every strict prefix of a packed record must fail to unpack
func checkTruncation(t *testing.T, title string, packed []byte, unpack func([]byte) error) {
	for i := 0; i < len(packed); i += 1 {
		if err := unpack(packed[:i]); nil == err {
			t.Errorf("%s: unpack of: %d of: %d bytes succeeded", title, i, len(packed))
		}
	}
	if err := unpack(bytes.Clone(packed)); nil != err {
		t.Errorf("%s: unpack of complete record error: %s", title, err)
	}
}
