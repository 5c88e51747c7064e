// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle - 32 byte identifiers
//
// transaction, asset and blockchain ids are all SHA-256 digests
package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/formatting"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - type for a digest
//
// stored in wire order; text form is CB58
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha256.Sum256(record)
}

// String - convert a binary digest to CB58 for use by the fmt package (for %s)
func (digest Digest) String() string {
	return formatting.EncodeCB58(digest[:])
}

// GoString - hex for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA-256:" + hex.EncodeToString(digest[:]) + ">"
}

// IsZero - true if no id was set
func (digest Digest) IsZero() bool {
	return digest == Digest{}
}

// MarshalText - convert digest to CB58 text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert CB58 text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	buffer, err := formatting.DecodeCB58(string(s))
	if nil != err {
		return err
	}
	return DigestFromBytes(digest, buffer)
}

// DigestFromBytes - convert and validate a byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fmt.Errorf("%w: digest: %d bytes", fault.ErrInvalidKeyLength, len(buffer))
	}
	copy(digest[:], buffer)
	return nil
}
