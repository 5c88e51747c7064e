// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package formatting

import (
	"strings"

	"github.com/btcsuite/btcutil/bech32"

	"github.com/chain4travel/caminotx/fault"
)

const chainSeparator = "-"

// FormatBech32 - [chainAlias-]hrp1…
func FormatBech32(chainAlias string, hrp string, payload []byte) (string, error) {
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if nil != err {
		return "", err
	}
	s, err := bech32.Encode(hrp, converted)
	if nil != err {
		return "", err
	}
	if "" == chainAlias {
		return s, nil
	}
	return chainAlias + chainSeparator + s, nil
}

// ParseBech32 - split off an optional chain alias then decode
func ParseBech32(s string) (chainAlias string, hrp string, payload []byte, err error) {
	address := s
	if i := strings.Index(s, chainSeparator); i >= 0 {
		chainAlias = s[:i]
		address = s[i+len(chainSeparator):]
	}

	hrp, data, err := bech32.Decode(address)
	if nil != err {
		return "", "", nil, fault.ErrCannotDecodeAddress
	}
	payload, err = bech32.ConvertBits(data, 5, 8, false)
	if nil != err {
		return "", "", nil, fault.ErrCannotDecodeAddress
	}
	return chainAlias, hrp, payload, nil
}
