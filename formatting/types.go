// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package formatting

import (
	"strings"

	"github.com/chain4travel/caminotx/fault"
)

// Format - which of the two textual forms
type Format int

// supported formats
const (
	Hex Format = iota
	Display
)

// Semantic - tag selecting the display rule for a field
type Semantic int

// supported semantic types
const (
	CB58 Semantic = iota
	Bech32
	Decimal
	UTF8
	Bytes
)

var formatNames = map[Format]string{
	Hex:     "hex",
	Display: "display",
}

var semanticNames = map[Semantic]string{
	CB58:    "cb58",
	Bech32:  "bech32",
	Decimal: "decimal",
	UTF8:    "utf8",
	Bytes:   "bytes",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "*unknown*"
}

func (s Semantic) String() string {
	if name, ok := semanticNames[s]; ok {
		return name
	}
	return "*unknown*"
}

// ParseFormat - from a command line or configuration value
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fault.ErrUnknownEncoding
}

// ParseSemantic - from a command line or configuration value
func ParseSemantic(s string) (Semantic, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for semantic, name := range semanticNames {
		if name == s {
			return semantic, nil
		}
	}
	return 0, fault.ErrUnknownSemanticType
}
