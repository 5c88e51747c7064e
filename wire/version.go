// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// the only codec in use
const CodecVersion = uint16(0)

// VersionLength - bytes occupied by a full version prefix
const VersionLength = Uint16Length + Uint32Length

// Version - prefix of any structure whose wire shape has evolved
//
// Feature zero is the original shape; a structure only reads or writes
// its trailing fields when Feature is non-zero
type Version struct {
	Codec   uint16 `json:"codec"`
	Feature uint32 `json:"feature"`
}

// HasTrailingFields - true if the later shape is in use
func (v Version) HasTrailingFields() bool {
	return v.Feature > 0
}

// Pack - append codec then feature version
func (v Version) Pack(buffer []byte) []byte {
	buffer = AppendUint16(buffer, v.Codec)
	return AppendUint32(buffer, v.Feature)
}

// String - for logging
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Codec, v.Feature)
}

// ReadVersion - codec then feature version
//
// on failure the offset is left at the start of the prefix
func (r *Reader) ReadVersion() (Version, error) {
	start := r.offset
	codec, err := r.ReadUint16()
	if nil != err {
		return Version{}, err
	}
	feature, err := r.ReadUint32()
	if nil != err {
		r.offset = start
		return Version{}, err
	}
	return Version{Codec: codec, Feature: feature}, nil
}

// ReadCodecVersion - structures that never carried a feature version
func (r *Reader) ReadCodecVersion() (uint16, error) {
	return r.ReadUint16()
}
