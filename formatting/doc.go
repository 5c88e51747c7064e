// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package formatting - human readable forms of wire fields
//
// The same field bytes can be shown two ways:
//
//   Hex      0x prefixed hex of the wire bytes (persisted unsigned state,
//            fixtures)
//   Display  rendered according to the field's semantic type (logs, CLI)
//
// Semantic types:
//
//   CB58     base58 of payload ⧺ last 4 bytes of SHA-256(payload)
//   Bech32   [ChainAlias "-"] bech32(HRP, payload)
//   Decimal  big endian unsigned integer as a decimal string
//   UTF8     text
//   Bytes    hex
//
// Decode always produces the wire byte layout.
package formatting
