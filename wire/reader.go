// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/chain4travel/caminotx/fault"
)

// byte sizes of the fixed width fields
const (
	BoolLength   = 1
	Uint8Length  = 1
	Uint16Length = 2
	Uint32Length = 4
	Uint64Length = 8
)

// Reader - cursor over a byte slice
type Reader struct {
	buffer []byte
	offset int
}

// NewReader - start reading buffer at offset
func NewReader(buffer []byte, offset int) *Reader {
	return &Reader{
		buffer: buffer,
		offset: offset,
	}
}

// Offset - position of the next byte to be read
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining - count of unread bytes
//
// a negative offset has nothing readable
func (r *Reader) Remaining() int {
	if r.offset < 0 || r.offset >= len(r.buffer) {
		return 0
	}
	return len(r.buffer) - r.offset
}

// ReadFixed - return the next n bytes
//
// the result is a copy so it remains valid if the underlying buffer
// is reused
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if n < 0 || r.offset < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: need: %d bytes at offset: %d have: %d", fault.ErrTruncatedInput, n, r.offset, r.Remaining())
	}
	result := make([]byte, n)
	copy(result, r.buffer[r.offset:r.offset+n])
	r.offset += n
	return result, nil
}

// ReadInto - fill a fixed size array such as an address or digest
func (r *Reader) ReadInto(destination []byte) error {
	n := len(destination)
	if r.offset < 0 || n > r.Remaining() {
		return fmt.Errorf("%w: need: %d bytes at offset: %d have: %d", fault.ErrTruncatedInput, n, r.offset, r.Remaining())
	}
	copy(destination, r.buffer[r.offset:r.offset+n])
	r.offset += n
	return nil
}

// ReadUint8 - single byte
func (r *Reader) ReadUint8() (uint8, error) {
	if r.Remaining() < Uint8Length {
		return 0, fmt.Errorf("%w: uint8 at offset: %d", fault.ErrTruncatedInput, r.offset)
	}
	v := r.buffer[r.offset]
	r.offset += Uint8Length
	return v, nil
}

// ReadBool - single byte, any non-zero value is true
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint8()
	if nil != err {
		return false, err
	}
	return 0 != v, nil
}

// ReadUint16 - big endian
func (r *Reader) ReadUint16() (uint16, error) {
	if r.Remaining() < Uint16Length {
		return 0, fmt.Errorf("%w: uint16 at offset: %d", fault.ErrTruncatedInput, r.offset)
	}
	v := binary.BigEndian.Uint16(r.buffer[r.offset:])
	r.offset += Uint16Length
	return v, nil
}

// ReadUint32 - big endian
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < Uint32Length {
		return 0, fmt.Errorf("%w: uint32 at offset: %d", fault.ErrTruncatedInput, r.offset)
	}
	v := binary.BigEndian.Uint32(r.buffer[r.offset:])
	r.offset += Uint32Length
	return v, nil
}

// ReadUint64 - big endian
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < Uint64Length {
		return 0, fmt.Errorf("%w: uint64 at offset: %d", fault.ErrTruncatedInput, r.offset)
	}
	v := binary.BigEndian.Uint64(r.buffer[r.offset:])
	r.offset += Uint64Length
	return v, nil
}

// ReadLengthPrefixed - a uint32 length followed by that many bytes
func (r *Reader) ReadLengthPrefixed() ([]byte, error) {
	start := r.offset
	length, err := r.ReadUint32()
	if nil != err {
		return nil, err
	}
	if uint64(length) > uint64(r.Remaining()) {
		r.offset = start
		return nil, fmt.Errorf("%w: declared length: %d at offset: %d have: %d", fault.ErrTruncatedInput, length, start, r.Remaining())
	}
	return r.ReadFixed(int(length))
}

// ReadCount - a uint32 element count, checked against the minimum
// space each element needs so a corrupt count cannot force a large
// allocation
func (r *Reader) ReadCount(elementLength int) (int, error) {
	start := r.offset
	count, err := r.ReadUint32()
	if nil != err {
		return 0, err
	}
	if elementLength > 0 && uint64(count)*uint64(elementLength) > uint64(r.Remaining()) {
		r.offset = start
		return 0, fmt.Errorf("%w: %d elements of: %d bytes at offset: %d have: %d", fault.ErrTruncatedInput, count, elementLength, start, r.Remaining())
	}
	return int(count), nil
}
