// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"fmt"
	"sort"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/wire"
)

// Factory - creates an empty variant ready to be unpacked into
type Factory func() Variant

type registryKey struct {
	family       Family
	codecVersion uint16
	typeID       TypeID
}

// Table - maps (family, codec version, type id) to a factory
//
// populated once before use and read-only afterwards, so one table can
// be shared by any number of concurrent decoders
type Table struct {
	factories map[registryKey]Factory
}

// NewEmptyTable - a table with nothing registered
func NewEmptyTable() *Table {
	return &Table{
		factories: make(map[registryKey]Factory),
	}
}

// NewTable - a table holding every variant of codec version 0
func NewTable() *Table {
	t := NewEmptyTable()
	v := wire.CodecVersion

	t.Register(InputFamily, v, SECPTransferInputTypeID, func() Variant { return new(SECPTransferInput) })
	t.Register(InputFamily, v, LockedInTypeID, func() Variant { return new(LockedIn) })

	t.Register(OutputFamily, v, SECPMintOutputTypeID, func() Variant { return new(SECPMintOutput) })
	t.Register(OutputFamily, v, SECPTransferOutputTypeID, func() Variant { return new(SECPTransferOutput) })
	t.Register(OutputFamily, v, NFTMintOutputTypeID, func() Variant { return new(NFTMintOutput) })
	t.Register(OutputFamily, v, NFTTransferOutputTypeID, func() Variant { return new(NFTTransferOutput) })
	t.Register(OutputFamily, v, LockedOutTypeID, func() Variant { return new(LockedOut) })

	t.Register(CredentialFamily, v, SECPCredentialTypeID, func() Variant { return new(SECPCredential) })
	t.Register(CredentialFamily, v, NFTCredentialTypeID, func() Variant { return new(NFTCredential) })

	t.Register(ProposalFamily, v, BaseFeeProposalTypeID, func() Variant { return new(BaseFeeProposal) })
	t.Register(ProposalFamily, v, AddMemberProposalTypeID, func() Variant { return new(AddMemberProposal) })
	t.Register(ProposalFamily, v, ExcludeMemberProposalTypeID, func() Variant { return new(ExcludeMemberProposal) })
	t.Register(ProposalFamily, v, GeneralProposalTypeID, func() Variant { return new(GeneralProposal) })

	return t
}

// Register - add a factory
//
// the variant must report the family and type id it is registered
// under; a mismatch or a second registration is a programming error
func (t *Table) Register(family Family, codecVersion uint16, typeID TypeID, factory Factory) {
	k := registryKey{family: family, codecVersion: codecVersion, typeID: typeID}
	if _, ok := t.factories[k]; ok {
		fault.Panicf("%s: family: %s version: %d type: %d", fault.ErrDuplicateTypeID, family, codecVersion, typeID)
	}
	v := factory()
	if v.Family() != family || v.TypeID() != typeID {
		fault.Panicf("registration mismatch: family: %s type: %d reports family: %s type: %d", family, typeID, v.Family(), v.TypeID())
	}
	t.factories[k] = factory
}

// Select - a new empty variant for a type id
func (t *Table) Select(family Family, codecVersion uint16, typeID TypeID) (Variant, error) {
	factory, ok := t.factories[registryKey{family: family, codecVersion: codecVersion, typeID: typeID}]
	if !ok {
		return nil, fmt.Errorf("%w: family: %s version: %d type: %d registered: %v", fault.ErrUnknownTypeID, family, codecVersion, typeID, t.TypeIDs(family, codecVersion))
	}
	return factory(), nil
}

// TypeIDs - registered ids of a family in ascending order
func (t *Table) TypeIDs(family Family, codecVersion uint16) []TypeID {
	ids := make([]TypeID, 0, len(t.factories))
	for k := range t.factories {
		if k.family == family && k.codecVersion == codecVersion {
			ids = append(ids, k.typeID)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}

// read a type id, select the variant and delegate to its unpack
func unpackSlot[T Variant](t *Table, family Family, codecVersion uint16, r *wire.Reader) (T, error) {
	var zero T

	typeID, err := r.ReadUint32()
	if nil != err {
		return zero, err
	}
	v, err := t.Select(family, codecVersion, TypeID(typeID))
	if nil != err {
		return zero, err
	}
	if err := v.unpack(r, t, codecVersion); nil != err {
		return zero, err
	}
	result, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: family: %s type: %d", fault.ErrWrongFamily, family, typeID)
	}
	return result, nil
}

// ReadInput - polymorphic input slot from a reader
func (t *Table) ReadInput(codecVersion uint16, r *wire.Reader) (Input, error) {
	return unpackSlot[Input](t, InputFamily, codecVersion, r)
}

// ReadOutput - polymorphic output slot from a reader
func (t *Table) ReadOutput(codecVersion uint16, r *wire.Reader) (Output, error) {
	return unpackSlot[Output](t, OutputFamily, codecVersion, r)
}

// ReadCredential - polymorphic credential slot from a reader
func (t *Table) ReadCredential(codecVersion uint16, r *wire.Reader) (Credential, error) {
	return unpackSlot[Credential](t, CredentialFamily, codecVersion, r)
}

// ReadProposal - polymorphic proposal slot from a reader
func (t *Table) ReadProposal(codecVersion uint16, r *wire.Reader) (Proposal, error) {
	return unpackSlot[Proposal](t, ProposalFamily, codecVersion, r)
}

// UnpackInput - input slot at offset, returns the new offset
func (t *Table) UnpackInput(codecVersion uint16, buffer []byte, offset int) (Input, int, error) {
	r := wire.NewReader(buffer, offset)
	in, err := t.ReadInput(codecVersion, r)
	if nil != err {
		return nil, offset, err
	}
	return in, r.Offset(), nil
}

// UnpackOutput - output slot at offset, returns the new offset
func (t *Table) UnpackOutput(codecVersion uint16, buffer []byte, offset int) (Output, int, error) {
	r := wire.NewReader(buffer, offset)
	out, err := t.ReadOutput(codecVersion, r)
	if nil != err {
		return nil, offset, err
	}
	return out, r.Offset(), nil
}

// UnpackCredential - credential slot at offset, returns the new offset
func (t *Table) UnpackCredential(codecVersion uint16, buffer []byte, offset int) (Credential, int, error) {
	r := wire.NewReader(buffer, offset)
	cred, err := t.ReadCredential(codecVersion, r)
	if nil != err {
		return nil, offset, err
	}
	return cred, r.Offset(), nil
}

// UnpackProposal - proposal slot at offset, returns the new offset
func (t *Table) UnpackProposal(codecVersion uint16, buffer []byte, offset int) (Proposal, int, error) {
	r := wire.NewReader(buffer, offset)
	p, err := t.ReadProposal(codecVersion, r)
	if nil != err {
		return nil, offset, err
	}
	return p, r.Offset(), nil
}
