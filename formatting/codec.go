// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package formatting

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/chain4travel/caminotx/fault"
)

const hexPrefix = "0x"

// Codec - network dependent part of the human readable forms
type Codec struct {
	HRP        string // bech32 human readable part e.g. "kopernikus"
	ChainAlias string // optional chain prefix on bech32 output e.g. "X"
}

// New - create a codec for a network
func New(hrp string, chainAlias string) *Codec {
	return &Codec{
		HRP:        hrp,
		ChainAlias: chainAlias,
	}
}

// Encode - turn wire bytes into text
//
// fixedLength of zero means the field is variable length; otherwise the
// bytes must fit in fixedLength (decimal values are zero padded on the
// left, everything else must match exactly)
func (c *Codec) Encode(b []byte, format Format, semantic Semantic, fixedLength int) (string, error) {
	b, err := fit(b, semantic, fixedLength)
	if nil != err {
		return "", err
	}

	switch format {
	case Hex:
		return hexPrefix + hex.EncodeToString(b), nil
	case Display:
	default:
		return "", fault.ErrUnknownEncoding
	}

	switch semantic {
	case CB58:
		return EncodeCB58(b), nil

	case Bech32:
		return FormatBech32(c.ChainAlias, c.HRP, b)

	case Decimal:
		n := new(big.Int).SetBytes(b)
		return decimal.NewFromBigInt(n, 0).String(), nil

	case UTF8:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: not utf-8", fault.ErrUnknownEncoding)
		}
		return string(b), nil

	case Bytes:
		return hexPrefix + hex.EncodeToString(b), nil

	default:
		return "", fault.ErrUnknownSemanticType
	}
}

// Decode - turn text produced by Encode back into wire bytes
func (c *Codec) Decode(s string, format Format, semantic Semantic, fixedLength int) ([]byte, error) {
	if _, ok := semanticNames[semantic]; !ok {
		return nil, fault.ErrUnknownSemanticType
	}

	var b []byte
	var err error

	switch format {
	case Hex:
		b, err = decodeHex(s)
	case Display:
		b, err = c.decodeDisplay(s, semantic)
	default:
		return nil, fault.ErrUnknownEncoding
	}
	if nil != err {
		return nil, err
	}

	return fit(b, semantic, fixedLength)
}

func (c *Codec) decodeDisplay(s string, semantic Semantic) ([]byte, error) {
	switch semantic {
	case CB58:
		return DecodeCB58(s)

	case Bech32:
		_, hrp, payload, err := ParseBech32(s)
		if nil != err {
			return nil, err
		}
		if hrp != c.HRP {
			return nil, fmt.Errorf("%w: %q expected: %q", fault.ErrWrongHumanReadablePart, hrp, c.HRP)
		}
		return payload, nil

	case Decimal:
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if nil != err {
			return nil, fault.ErrNotANumber
		}
		if !d.IsInteger() {
			return nil, fault.ErrNotANumber
		}
		if d.IsNegative() {
			return nil, fault.ErrNegativeNumber
		}
		return d.BigInt().Bytes(), nil

	case UTF8:
		return []byte(s), nil

	case Bytes:
		return decodeHex(s)

	default:
		return nil, fault.ErrUnknownSemanticType
	}
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), hexPrefix)
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHex
	}
	return b, nil
}

// apply the fixed length rule
func fit(b []byte, semantic Semantic, fixedLength int) ([]byte, error) {
	if fixedLength <= 0 || len(b) == fixedLength {
		return b, nil
	}

	if Decimal == semantic {
		// strip leading zeros then left pad
		i := 0
		for i < len(b) && 0 == b[i] {
			i += 1
		}
		significant := b[i:]
		if len(significant) > fixedLength {
			return nil, fmt.Errorf("%w: %d bytes into: %d", fault.ErrNotFixedLength, len(significant), fixedLength)
		}
		padded := make([]byte, fixedLength)
		copy(padded[fixedLength-len(significant):], significant)
		return padded, nil
	}

	return nil, fmt.Errorf("%w: %d bytes expected: %d", fault.ErrNotFixedLength, len(b), fixedLength)
}
