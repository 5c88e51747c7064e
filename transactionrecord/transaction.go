// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"fmt"

	"github.com/chain4travel/caminotx/wire"
)

// TypeID - identifies a variant within its family for one codec version
//
// this is encoded as a big endian uint32 at the start of every
// polymorphic slot
type TypeID uint32

// Family - the polymorphic slots of a transaction
type Family int

// the families
const (
	InputFamily Family = iota
	OutputFamily
	CredentialFamily
	ProposalFamily
)

// type ids registered for codec version 0
const (
	SECPTransferInputTypeID     = TypeID(5)
	SECPMintOutputTypeID        = TypeID(6)
	SECPTransferOutputTypeID    = TypeID(7)
	SECPCredentialTypeID        = TypeID(9)
	NFTMintOutputTypeID         = TypeID(10)
	NFTTransferOutputTypeID     = TypeID(11)
	NFTCredentialTypeID         = TypeID(14)
	LockedInTypeID              = TypeID(0x20000001)
	LockedOutTypeID             = TypeID(0x20000002)
	BaseFeeProposalTypeID       = TypeID(0x20000029)
	AddMemberProposalTypeID     = TypeID(0x2000002a)
	ExcludeMemberProposalTypeID = TypeID(0x2000002b)
	GeneralProposalTypeID       = TypeID(0x2000002c)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Variant - every member of every family
//
// Pack appends the type id followed by the variant's own fields; the
// unexported unpack reads only the fields, the type id having already
// been consumed to select the variant
type Variant interface {
	Family() Family
	TypeID() TypeID
	Pack(buffer Packed) Packed
	unpack(r *wire.Reader, t *Table, codecVersion uint16) error
}

// String - family name for logs and errors
func (f Family) String() string {
	switch f {
	case InputFamily:
		return "input"
	case OutputFamily:
		return "output"
	case CredentialFamily:
		return "credential"
	case ProposalFamily:
		return "proposal"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// RecordName - returns the name of a variant as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *SECPTransferInput:
		return "SECPTransferInput", true
	case *LockedIn:
		return "LockedIn", true
	case *SECPMintOutput:
		return "SECPMintOutput", true
	case *SECPTransferOutput:
		return "SECPTransferOutput", true
	case *NFTMintOutput:
		return "NFTMintOutput", true
	case *NFTTransferOutput:
		return "NFTTransferOutput", true
	case *LockedOut:
		return "LockedOut", true
	case *SECPCredential:
		return "SECPCredential", true
	case *NFTCredential:
		return "NFTCredential", true
	case *BaseFeeProposal:
		return "BaseFeeProposal", true
	case *AddMemberProposal:
		return "AddMemberProposal", true
	case *ExcludeMemberProposal:
		return "ExcludeMemberProposal", true
	case *GeneralProposal:
		return "GeneralProposal", true
	case *ProposalPayloadV0:
		return "ProposalPayloadV0", true
	case *ProposalPayloadV1:
		return "ProposalPayloadV1", true
	case *BaseTx:
		return "BaseTx", true
	case *SignedTx:
		return "SignedTx", true
	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}

// append a type id
func appendTypeID(buffer Packed, typeID TypeID) Packed {
	return wire.AppendUint32(buffer, uint32(typeID))
}
