// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - threshold address groups
//
// wire layout:
//
//   lockTime   uint64
//   threshold  uint32
//   count      uint32
//   addresses  count × 20 bytes, strictly ascending
package ownership

import (
	"fmt"

	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/wire"
)

// Policy - an address set, the number of members that must sign and
// the time before which nobody can spend
type Policy struct {
	LockTime  uint64            `json:"locktime"`
	Threshold uint32            `json:"threshold"`
	Addresses []address.ShortID `json:"addresses"`
}

// New - sorted copy of addresses; duplicates and bad thresholds are rejected
func New(addresses []address.ShortID, threshold uint32, lockTime uint64) (Policy, error) {
	sorted := make([]address.ShortID, len(addresses))
	copy(sorted, addresses)
	address.Sort(sorted)

	p := Policy{
		LockTime:  lockTime,
		Threshold: threshold,
		Addresses: sorted,
	}
	if err := p.Verify(); nil != err {
		return Policy{}, err
	}
	return p, nil
}

// Verify - the invariants every packed or unpacked policy satisfies
//
// an empty address list is only valid with a zero threshold (nobody can
// ever spend)
func (p Policy) Verify() error {
	if int(p.Threshold) > len(p.Addresses) {
		return fmt.Errorf("%w: threshold: %d addresses: %d", fault.ErrThresholdTooHigh, p.Threshold, len(p.Addresses))
	}
	if 0 == p.Threshold && 0 != len(p.Addresses) {
		return fault.ErrThresholdZero
	}
	if !address.IsSortedAndUnique(p.Addresses) {
		return fault.ErrAddressesNotSorted
	}
	return nil
}

// IndexOf - position of an address in the sorted list
func (p Policy) IndexOf(addr address.ShortID) (uint32, bool) {
	for i, a := range p.Addresses {
		if a == addr {
			return uint32(i), true
		}
	}
	return 0, false
}

// Equal - same lock, threshold and members
func (p Policy) Equal(other Policy) bool {
	if p.LockTime != other.LockTime || p.Threshold != other.Threshold || len(p.Addresses) != len(other.Addresses) {
		return false
	}
	for i := range p.Addresses {
		if p.Addresses[i] != other.Addresses[i] {
			return false
		}
	}
	return true
}

// Pack - append wire form
func (p Policy) Pack(buffer []byte) []byte {
	buffer = wire.AppendUint64(buffer, p.LockTime)
	buffer = wire.AppendUint32(buffer, p.Threshold)
	buffer = wire.AppendUint32(buffer, uint32(len(p.Addresses)))
	for _, a := range p.Addresses {
		buffer = wire.AppendFixed(buffer, a[:])
	}
	return buffer
}

// Unpack - read wire form and verify invariants
func Unpack(r *wire.Reader) (Policy, error) {
	lockTime, err := r.ReadUint64()
	if nil != err {
		return Policy{}, err
	}
	threshold, err := r.ReadUint32()
	if nil != err {
		return Policy{}, err
	}
	count, err := r.ReadCount(address.Length)
	if nil != err {
		return Policy{}, err
	}

	addresses := make([]address.ShortID, count)
	for i := range addresses {
		if err := r.ReadInto(addresses[i][:]); nil != err {
			return Policy{}, err
		}
	}

	p := Policy{
		LockTime:  lockTime,
		Threshold: threshold,
		Addresses: addresses,
	}
	if err := p.Verify(); nil != err {
		return Policy{}, err
	}
	return p, nil
}
