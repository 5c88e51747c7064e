// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
)

// AppendUint8 - append a single byte
func AppendUint8(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

// AppendBool - append 0x01 for true, 0x00 for false
func AppendBool(buffer []byte, value bool) []byte {
	if value {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// AppendUint16 - append big endian
func AppendUint16(buffer []byte, value uint16) []byte {
	var b [Uint16Length]byte
	binary.BigEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

// AppendUint32 - append big endian
func AppendUint32(buffer []byte, value uint32) []byte {
	var b [Uint32Length]byte
	binary.BigEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendUint64 - append big endian
func AppendUint64(buffer []byte, value uint64) []byte {
	var b [Uint64Length]byte
	binary.BigEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// AppendFixed - append raw bytes, no length
func AppendFixed(buffer []byte, data []byte) []byte {
	return append(buffer, data...)
}

// AppendLengthPrefixed - append a uint32 length then the data
func AppendLengthPrefixed(buffer []byte, data []byte) []byte {
	buffer = AppendUint32(buffer, uint32(len(data)))
	return append(buffer, data...)
}
