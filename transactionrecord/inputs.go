// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"fmt"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/merkle"
	"github.com/chain4travel/caminotx/wire"
)

// Input - the closed set of spendable input variants
type Input interface {
	Variant
	Amount() uint64
	SigIndices() []uint32
	isInput()
}

// SECPTransferInput - spend of a secp256k1 owned output
//
// SignatureIndices are positions in the spent output's owner addresses
type SECPTransferInput struct {
	Amt              uint64   `json:"amount,string"`
	SignatureIndices []uint32 `json:"signatureIndices"`
}

// LockedIn - spend of a deposit or bond locked output
type LockedIn struct {
	DepositTxID merkle.Digest `json:"depositTxID"`
	BondTxID    merkle.Digest `json:"bondTxID"`
	Input       Input         `json:"input"`
}

func (in *SECPTransferInput) isInput() {}
func (in *LockedIn) isInput()          {}

// Family - always input
func (in *SECPTransferInput) Family() Family { return InputFamily }

// TypeID - registered id
func (in *SECPTransferInput) TypeID() TypeID { return SECPTransferInputTypeID }

// Amount - value consumed
func (in *SECPTransferInput) Amount() uint64 { return in.Amt }

// SigIndices - owner positions that must sign
func (in *SECPTransferInput) SigIndices() []uint32 { return in.SignatureIndices }

// Pack - append type id and fields
func (in *SECPTransferInput) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, in.TypeID())
	buffer = wire.AppendUint64(buffer, in.Amt)
	buffer = wire.AppendUint32(buffer, uint32(len(in.SignatureIndices)))
	for _, index := range in.SignatureIndices {
		buffer = wire.AppendUint32(buffer, index)
	}
	return buffer
}

func (in *SECPTransferInput) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	amount, err := r.ReadUint64()
	if nil != err {
		return err
	}
	count, err := r.ReadCount(wire.Uint32Length)
	if nil != err {
		return err
	}
	indices := make([]uint32, count)
	for i := range indices {
		indices[i], err = r.ReadUint32()
		if nil != err {
			return err
		}
	}
	if err := checkSignatureIndices(indices); nil != err {
		return err
	}
	in.Amt = amount
	in.SignatureIndices = indices
	return nil
}

// indices must be strictly ascending
func checkSignatureIndices(indices []uint32) error {
	for i := 1; i < len(indices); i += 1 {
		if indices[i] <= indices[i-1] {
			return fmt.Errorf("%w: index: %d after: %d", fault.ErrSignatureIndicesNotSorted, indices[i], indices[i-1])
		}
	}
	return nil
}

// Family - always input
func (in *LockedIn) Family() Family { return InputFamily }

// TypeID - registered id
func (in *LockedIn) TypeID() TypeID { return LockedInTypeID }

// Amount - value of the wrapped input
func (in *LockedIn) Amount() uint64 { return in.Input.Amount() }

// SigIndices - signers of the wrapped input
func (in *LockedIn) SigIndices() []uint32 { return in.Input.SigIndices() }

// Pack - append type id, lock ids and the wrapped input slot
func (in *LockedIn) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, in.TypeID())
	buffer = wire.AppendFixed(buffer, in.DepositTxID[:])
	buffer = wire.AppendFixed(buffer, in.BondTxID[:])
	return in.Input.Pack(buffer)
}

func (in *LockedIn) unpack(r *wire.Reader, t *Table, codecVersion uint16) error {
	if err := r.ReadInto(in.DepositTxID[:]); nil != err {
		return err
	}
	if err := r.ReadInto(in.BondTxID[:]); nil != err {
		return err
	}
	nested, err := t.ReadInput(codecVersion, r)
	if nil != err {
		return err
	}
	if _, ok := nested.(*LockedIn); ok {
		return fault.ErrNestedLock
	}
	in.Input = nested
	return nil
}
