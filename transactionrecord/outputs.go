// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"fmt"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/merkle"
	"github.com/chain4travel/caminotx/ownership"
	"github.com/chain4travel/caminotx/wire"
)

// MaxNFTPayloadLength - limit on an NFT payload
const MaxNFTPayloadLength = 1024

// Output - the closed set of output variants
type Output interface {
	Variant
	Owners() ownership.Policy
	isOutput()
}

// SECPMintOutput - authority to mint more of an asset
type SECPMintOutput struct {
	OwnerPolicy ownership.Policy `json:"owners"`
}

// SECPTransferOutput - an amount of an asset
type SECPTransferOutput struct {
	Amt         uint64           `json:"amount,string"`
	OwnerPolicy ownership.Policy `json:"owners"`
}

// NFTMintOutput - authority to mint into an NFT group
type NFTMintOutput struct {
	GroupID     uint32           `json:"groupID"`
	OwnerPolicy ownership.Policy `json:"owners"`
}

// NFTTransferOutput - an NFT with its payload
type NFTTransferOutput struct {
	GroupID     uint32           `json:"groupID"`
	Payload     Packed           `json:"payload"`
	OwnerPolicy ownership.Policy `json:"owners"`
}

// LockedOut - an output locked by a deposit or bond transaction
type LockedOut struct {
	DepositTxID merkle.Digest `json:"depositTxID"`
	BondTxID    merkle.Digest `json:"bondTxID"`
	Output      Output        `json:"output"`
}

func (out *SECPMintOutput) isOutput()     {}
func (out *SECPTransferOutput) isOutput() {}
func (out *NFTMintOutput) isOutput()      {}
func (out *NFTTransferOutput) isOutput()  {}
func (out *LockedOut) isOutput()          {}

// Family - always output
func (out *SECPMintOutput) Family() Family { return OutputFamily }

// TypeID - registered id
func (out *SECPMintOutput) TypeID() TypeID { return SECPMintOutputTypeID }

// Owners - who may mint
func (out *SECPMintOutput) Owners() ownership.Policy { return out.OwnerPolicy }

// Pack - append type id and owners
func (out *SECPMintOutput) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, out.TypeID())
	return out.OwnerPolicy.Pack(buffer)
}

func (out *SECPMintOutput) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	owners, err := ownership.Unpack(r)
	if nil != err {
		return err
	}
	out.OwnerPolicy = owners
	return nil
}

// Family - always output
func (out *SECPTransferOutput) Family() Family { return OutputFamily }

// TypeID - registered id
func (out *SECPTransferOutput) TypeID() TypeID { return SECPTransferOutputTypeID }

// Owners - who may spend
func (out *SECPTransferOutput) Owners() ownership.Policy { return out.OwnerPolicy }

// Amount - value held
func (out *SECPTransferOutput) Amount() uint64 { return out.Amt }

// Pack - append type id, amount and owners
func (out *SECPTransferOutput) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, out.TypeID())
	buffer = wire.AppendUint64(buffer, out.Amt)
	return out.OwnerPolicy.Pack(buffer)
}

func (out *SECPTransferOutput) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	amount, err := r.ReadUint64()
	if nil != err {
		return err
	}
	owners, err := ownership.Unpack(r)
	if nil != err {
		return err
	}
	out.Amt = amount
	out.OwnerPolicy = owners
	return nil
}

// Family - always output
func (out *NFTMintOutput) Family() Family { return OutputFamily }

// TypeID - registered id
func (out *NFTMintOutput) TypeID() TypeID { return NFTMintOutputTypeID }

// Owners - who may mint
func (out *NFTMintOutput) Owners() ownership.Policy { return out.OwnerPolicy }

// Pack - append type id, group and owners
func (out *NFTMintOutput) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, out.TypeID())
	buffer = wire.AppendUint32(buffer, out.GroupID)
	return out.OwnerPolicy.Pack(buffer)
}

func (out *NFTMintOutput) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	groupID, err := r.ReadUint32()
	if nil != err {
		return err
	}
	owners, err := ownership.Unpack(r)
	if nil != err {
		return err
	}
	out.GroupID = groupID
	out.OwnerPolicy = owners
	return nil
}

// Family - always output
func (out *NFTTransferOutput) Family() Family { return OutputFamily }

// TypeID - registered id
func (out *NFTTransferOutput) TypeID() TypeID { return NFTTransferOutputTypeID }

// Owners - who may transfer
func (out *NFTTransferOutput) Owners() ownership.Policy { return out.OwnerPolicy }

// Pack - append type id, group, payload and owners
func (out *NFTTransferOutput) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, out.TypeID())
	buffer = wire.AppendUint32(buffer, out.GroupID)
	buffer = wire.AppendLengthPrefixed(buffer, out.Payload)
	return out.OwnerPolicy.Pack(buffer)
}

func (out *NFTTransferOutput) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	groupID, err := r.ReadUint32()
	if nil != err {
		return err
	}
	payload, err := r.ReadLengthPrefixed()
	if nil != err {
		return err
	}
	if len(payload) > MaxNFTPayloadLength {
		return fmt.Errorf("%w: %d bytes", fault.ErrPayloadTooLong, len(payload))
	}
	owners, err := ownership.Unpack(r)
	if nil != err {
		return err
	}
	out.GroupID = groupID
	out.Payload = payload
	out.OwnerPolicy = owners
	return nil
}

// Family - always output
func (out *LockedOut) Family() Family { return OutputFamily }

// TypeID - registered id
func (out *LockedOut) TypeID() TypeID { return LockedOutTypeID }

// Owners - owners of the wrapped output
func (out *LockedOut) Owners() ownership.Policy { return out.Output.Owners() }

// Pack - append type id, lock ids and the wrapped output slot
func (out *LockedOut) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, out.TypeID())
	buffer = wire.AppendFixed(buffer, out.DepositTxID[:])
	buffer = wire.AppendFixed(buffer, out.BondTxID[:])
	return out.Output.Pack(buffer)
}

func (out *LockedOut) unpack(r *wire.Reader, t *Table, codecVersion uint16) error {
	if err := r.ReadInto(out.DepositTxID[:]); nil != err {
		return err
	}
	if err := r.ReadInto(out.BondTxID[:]); nil != err {
		return err
	}
	nested, err := t.ReadOutput(codecVersion, r)
	if nil != err {
		return err
	}
	if _, ok := nested.(*LockedOut); ok {
		return fault.ErrNestedLock
	}
	out.Output = nested
	return nil
}
