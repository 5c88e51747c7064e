// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - big-endian fixed width and length prefixed fields
//
// Writing appends to a byte slice and returns the extended slice:
//
//   buffer = wire.AppendUint32(buffer, typeID)
//   buffer = wire.AppendLengthPrefixed(buffer, memo)
//
// Reading goes through a Reader which keeps an explicit offset so that
// nested structures can chain reads without re-scanning:
//
//   r := wire.NewReader(buffer, offset)
//   typeID, err := r.ReadUint32()
//   ...
//   offset = r.Offset()
//
// Any read past the end of the data fails with fault.ErrTruncatedInput.
package wire
