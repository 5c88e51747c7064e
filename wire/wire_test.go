// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/wire"
)

func TestFixedWidthBigEndian(t *testing.T) {
	buffer := wire.AppendUint8(nil, 0xa5)
	buffer = wire.AppendUint16(buffer, 0x0102)
	buffer = wire.AppendUint32(buffer, 0x03040506)
	buffer = wire.AppendUint64(buffer, 0x0708090a0b0c0d0e)
	buffer = wire.AppendBool(buffer, true)
	buffer = wire.AppendBool(buffer, false)

	expected := []byte{
		0xa5,
		0x01, 0x02,
		0x03, 0x04, 0x05, 0x06,
		0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e,
		0x01,
		0x00,
	}
	if !bytes.Equal(buffer, expected) {
		t.Fatalf("packed: %x  expected: %x", buffer, expected)
	}

	r := wire.NewReader(buffer, 0)

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xa5), u8)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x03040506), u32)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0708090a0b0c0d0e), u64)

	b, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	b, err = r.ReadBool()
	require.NoError(t, err)
	assert.False(t, b)

	assert.Equal(t, len(buffer), r.Offset(), "offset after all reads")
	assert.Equal(t, 0, r.Remaining())
}

func TestLengthPrefixed(t *testing.T) {
	memo := []byte("hello camino")
	buffer := wire.AppendLengthPrefixed([]byte{0xff}, memo)

	assert.Equal(t, []byte{0xff, 0x00, 0x00, 0x00, 0x0c}, buffer[:5])

	r := wire.NewReader(buffer, 1)
	result, err := r.ReadLengthPrefixed()
	require.NoError(t, err)
	assert.Equal(t, memo, result)
	assert.Equal(t, len(buffer), r.Offset())

	empty := wire.AppendLengthPrefixed(nil, nil)
	r = wire.NewReader(empty, 0)
	result, err = r.ReadLengthPrefixed()
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, 4, r.Offset())
}

func TestTruncated(t *testing.T) {
	tests := []struct {
		name   string
		buffer []byte
		read   func(r *wire.Reader) error
	}{
		{"uint8", []byte{}, func(r *wire.Reader) error { _, err := r.ReadUint8(); return err }},
		{"uint16", []byte{0x01}, func(r *wire.Reader) error { _, err := r.ReadUint16(); return err }},
		{"uint32", []byte{0x01, 0x02, 0x03}, func(r *wire.Reader) error { _, err := r.ReadUint32(); return err }},
		{"uint64", []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, func(r *wire.Reader) error { _, err := r.ReadUint64(); return err }},
		{"fixed", []byte{0x01, 0x02}, func(r *wire.Reader) error { _, err := r.ReadFixed(3); return err }},
		{"into", []byte{0x01}, func(r *wire.Reader) error { var a [20]byte; return r.ReadInto(a[:]) }},
		{"length prefix", []byte{0x00, 0x00, 0x00, 0x05, 0x01}, func(r *wire.Reader) error { _, err := r.ReadLengthPrefixed(); return err }},
		{"huge length prefix", []byte{0xff, 0xff, 0xff, 0xff}, func(r *wire.Reader) error { _, err := r.ReadLengthPrefixed(); return err }},
		{"count", []byte{0x00, 0x00, 0x00, 0x02, 0x01}, func(r *wire.Reader) error { _, err := r.ReadCount(4); return err }},
		{"version", []byte{0x00, 0x00, 0x00}, func(r *wire.Reader) error { _, err := r.ReadVersion(); return err }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.read(wire.NewReader(test.buffer, 0))
			assert.ErrorIs(t, err, fault.ErrTruncatedInput)
			assert.True(t, fault.IsErrLength(err))
		})
	}
}

func TestFailedLengthDoesNotAdvance(t *testing.T) {
	buffer := []byte{0x00, 0x00, 0x00, 0x09, 0x01, 0x02}
	r := wire.NewReader(buffer, 0)
	_, err := r.ReadLengthPrefixed()
	assert.ErrorIs(t, err, fault.ErrTruncatedInput)
	assert.Equal(t, 0, r.Offset())
}

func TestReadFixedCopies(t *testing.T) {
	buffer := []byte{0x01, 0x02, 0x03}
	r := wire.NewReader(buffer, 0)
	result, err := r.ReadFixed(2)
	require.NoError(t, err)
	buffer[0] = 0xff
	assert.Equal(t, []byte{0x01, 0x02}, result)
}

func TestVersion(t *testing.T) {
	v := wire.Version{Codec: 0, Feature: 1}
	packed := v.Pack(nil)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, packed)
	assert.Len(t, packed, wire.VersionLength)
	assert.True(t, v.HasTrailingFields())
	assert.False(t, wire.Version{}.HasTrailingFields())

	r := wire.NewReader(packed, 0)
	unpacked, err := r.ReadVersion()
	require.NoError(t, err)
	assert.Equal(t, v, unpacked)
	assert.Equal(t, "0.1", unpacked.String())
}

func TestFailedVersionDoesNotAdvance(t *testing.T) {
	r := wire.NewReader([]byte{0x00, 0x00, 0x00, 0x01}, 0)
	_, err := r.ReadVersion()
	assert.ErrorIs(t, err, fault.ErrTruncatedInput)
	assert.Equal(t, 0, r.Offset())
}

func TestNegativeOffset(t *testing.T) {
	buffer := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	for _, offset := range []int{-1, -2, -8} {
		r := wire.NewReader(buffer, offset)
		assert.Equal(t, 0, r.Remaining(), "offset: %d", offset)

		_, err := r.ReadUint8()
		assert.ErrorIs(t, err, fault.ErrTruncatedInput, "offset: %d", offset)
		_, err = r.ReadUint16()
		assert.ErrorIs(t, err, fault.ErrTruncatedInput, "offset: %d", offset)
		_, err = r.ReadUint32()
		assert.ErrorIs(t, err, fault.ErrTruncatedInput, "offset: %d", offset)
		_, err = r.ReadUint64()
		assert.ErrorIs(t, err, fault.ErrTruncatedInput, "offset: %d", offset)
		_, err = r.ReadVersion()
		assert.ErrorIs(t, err, fault.ErrTruncatedInput, "offset: %d", offset)
		_, err = r.ReadFixed(0)
		assert.ErrorIs(t, err, fault.ErrTruncatedInput, "offset: %d", offset)
		assert.Equal(t, offset, r.Offset(), "offset: %d", offset)
	}
}
