// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - 20 byte short identifiers
//
// An address is the RIPEMD-160 of the SHA-256 of a compressed public
// key, or the identifier of a registered multisig alias.  The wire form
// is the raw 20 bytes; text forms are CB58 (default), bech32 with a
// network prefix, or 0x hex.
package address

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/formatting"
)

// Length - number of bytes in an address
const Length = 20

// ShortID - a raw address
type ShortID [Length]byte

// Empty - the all zero address
var Empty = ShortID{}

// FromBytes - convert and validate a byte slice
func FromBytes(buffer []byte) (ShortID, error) {
	var id ShortID
	if Length != len(buffer) {
		return id, fmt.Errorf("%w: address: %d bytes", fault.ErrInvalidKeyLength, len(buffer))
	}
	copy(id[:], buffer)
	return id, nil
}

// Bytes - copy as byte slice
func (id ShortID) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, id[:])
	return b
}

// IsZero - true for the empty address
func (id ShortID) IsZero() bool {
	return id == Empty
}

// Compare - byte wise ordering used on the wire
func (id ShortID) Compare(other ShortID) int {
	return bytes.Compare(id[:], other[:])
}

// String - CB58 for use by the fmt package (for %s)
func (id ShortID) String() string {
	return formatting.EncodeCB58(id[:])
}

// GoString - hex for use by the fmt package (for %#v)
func (id ShortID) GoString() string {
	return "<address:" + hex.EncodeToString(id[:]) + ">"
}

// Bech32 - network specific form e.g. X-kopernikus1…
func (id ShortID) Bech32(c *formatting.Codec) (string, error) {
	return c.Encode(id[:], formatting.Display, formatting.Bech32, Length)
}

// MarshalText - convert to CB58 for JSON
func (id ShortID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - CB58 or 0x hex
func (id *ShortID) UnmarshalText(s []byte) error {
	a, err := parse(string(s), nil)
	if nil != err {
		return err
	}
	*id = a
	return nil
}

// Parse - accept bech32 (checked against the codec's network), CB58 or
// 0x prefixed hex
func Parse(s string, c *formatting.Codec) (ShortID, error) {
	return parse(s, c)
}

func parse(s string, c *formatting.Codec) (ShortID, error) {
	s = strings.TrimSpace(s)

	var buffer []byte
	var err error

	switch {
	case strings.HasPrefix(s, "0x"):
		buffer, err = hex.DecodeString(s[2:])
		if nil != err {
			return Empty, fault.ErrInvalidHex
		}

	case strings.Contains(s, "1") && (strings.Contains(s, "-") || (nil != c && strings.HasPrefix(s, c.HRP+"1"))):
		if nil == c {
			return Empty, fmt.Errorf("%w: bech32 needs a network", fault.ErrCannotDecodeAddress)
		}
		buffer, err = c.Decode(s, formatting.Display, formatting.Bech32, Length)
		if nil != err {
			return Empty, err
		}

	default:
		buffer, err = formatting.DecodeCB58(s)
		if nil != err {
			return Empty, err
		}
	}

	return FromBytes(buffer)
}

// Sort - ascending wire order
func Sort(ids []ShortID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Compare(ids[j]) < 0
	})
}

// IsSortedAndUnique - strictly ascending
func IsSortedAndUnique(ids []ShortID) bool {
	for i := 1; i < len(ids); i += 1 {
		if ids[i-1].Compare(ids[i]) >= 0 {
			return false
		}
	}
	return true
}
