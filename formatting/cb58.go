// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package formatting

import (
	"bytes"
	"crypto/sha256"

	"github.com/mr-tron/base58"

	"github.com/chain4travel/caminotx/fault"
)

const checksumLength = 4

// EncodeCB58 - base58 with a 4 byte SHA-256 checksum suffix
func EncodeCB58(payload []byte) string {
	checksum := sha256.Sum256(payload)
	buffer := make([]byte, 0, len(payload)+checksumLength)
	buffer = append(buffer, payload...)
	buffer = append(buffer, checksum[len(checksum)-checksumLength:]...)
	return base58.Encode(buffer)
}

// DecodeCB58 - verify and strip the checksum
func DecodeCB58(s string) ([]byte, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrCannotDecodeAddress
	}
	if len(decoded) < checksumLength {
		return nil, fault.ErrChecksumMismatch
	}
	split := len(decoded) - checksumLength
	payload := decoded[:split]
	checksum := sha256.Sum256(payload)
	if !bytes.Equal(checksum[len(checksum)-checksumLength:], decoded[split:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return payload, nil
}
