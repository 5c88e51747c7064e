// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/wire"
)

// Proposal - the closed set of governance proposal variants
type Proposal interface {
	Variant
	StartTime() uint64
	EndTime() uint64
	isProposal()
}

// BaseFeeProposal - vote on a new base fee
type BaseFeeProposal struct {
	Start   uint64   `json:"start"`
	End     uint64   `json:"end"`
	Options []uint64 `json:"options"`
}

// AddMemberProposal - admit an applicant to the consortium
type AddMemberProposal struct {
	ApplicantAddress address.ShortID `json:"applicantAddress"`
	Start            uint64          `json:"start"`
	End              uint64          `json:"end"`
}

// ExcludeMemberProposal - remove a consortium member
type ExcludeMemberProposal struct {
	MemberAddress address.ShortID `json:"memberAddress"`
	Start         uint64          `json:"start"`
	End           uint64          `json:"end"`
}

// GeneralProposal - free form options with voting thresholds
type GeneralProposal struct {
	Start                        uint64   `json:"start"`
	End                          uint64   `json:"end"`
	Options                      []Packed `json:"options"`
	TotalVotedThresholdNominator uint64   `json:"totalVotedThresholdNominator"`
	MostVotedThresholdNominator  uint64   `json:"mostVotedThresholdNominator"`
	AllowEarlyFinish             bool     `json:"allowEarlyFinish"`
}

func (p *BaseFeeProposal) isProposal()       {}
func (p *AddMemberProposal) isProposal()     {}
func (p *ExcludeMemberProposal) isProposal() {}
func (p *GeneralProposal) isProposal()       {}

// common start and end fields
func appendPeriod(buffer Packed, start uint64, end uint64) Packed {
	buffer = wire.AppendUint64(buffer, start)
	return wire.AppendUint64(buffer, end)
}

func readPeriod(r *wire.Reader) (uint64, uint64, error) {
	start, err := r.ReadUint64()
	if nil != err {
		return 0, 0, err
	}
	end, err := r.ReadUint64()
	if nil != err {
		return 0, 0, err
	}
	return start, end, nil
}

// Family - always proposal
func (p *BaseFeeProposal) Family() Family { return ProposalFamily }

// TypeID - registered id
func (p *BaseFeeProposal) TypeID() TypeID { return BaseFeeProposalTypeID }

// StartTime - voting opens
func (p *BaseFeeProposal) StartTime() uint64 { return p.Start }

// EndTime - voting closes
func (p *BaseFeeProposal) EndTime() uint64 { return p.End }

// Pack - append type id, period and fee options
func (p *BaseFeeProposal) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, p.TypeID())
	buffer = appendPeriod(buffer, p.Start, p.End)
	buffer = wire.AppendUint32(buffer, uint32(len(p.Options)))
	for _, option := range p.Options {
		buffer = wire.AppendUint64(buffer, option)
	}
	return buffer
}

func (p *BaseFeeProposal) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	start, end, err := readPeriod(r)
	if nil != err {
		return err
	}
	count, err := r.ReadCount(wire.Uint64Length)
	if nil != err {
		return err
	}
	options := make([]uint64, count)
	for i := range options {
		options[i], err = r.ReadUint64()
		if nil != err {
			return err
		}
	}
	p.Start = start
	p.End = end
	p.Options = options
	return nil
}

// Family - always proposal
func (p *AddMemberProposal) Family() Family { return ProposalFamily }

// TypeID - registered id
func (p *AddMemberProposal) TypeID() TypeID { return AddMemberProposalTypeID }

// StartTime - voting opens
func (p *AddMemberProposal) StartTime() uint64 { return p.Start }

// EndTime - voting closes
func (p *AddMemberProposal) EndTime() uint64 { return p.End }

// Pack - append type id, applicant and period
func (p *AddMemberProposal) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, p.TypeID())
	buffer = wire.AppendFixed(buffer, p.ApplicantAddress[:])
	return appendPeriod(buffer, p.Start, p.End)
}

func (p *AddMemberProposal) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	if err := r.ReadInto(p.ApplicantAddress[:]); nil != err {
		return err
	}
	start, end, err := readPeriod(r)
	if nil != err {
		return err
	}
	p.Start = start
	p.End = end
	return nil
}

// Family - always proposal
func (p *ExcludeMemberProposal) Family() Family { return ProposalFamily }

// TypeID - registered id
func (p *ExcludeMemberProposal) TypeID() TypeID { return ExcludeMemberProposalTypeID }

// StartTime - voting opens
func (p *ExcludeMemberProposal) StartTime() uint64 { return p.Start }

// EndTime - voting closes
func (p *ExcludeMemberProposal) EndTime() uint64 { return p.End }

// Pack - append type id, member and period
func (p *ExcludeMemberProposal) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, p.TypeID())
	buffer = wire.AppendFixed(buffer, p.MemberAddress[:])
	return appendPeriod(buffer, p.Start, p.End)
}

func (p *ExcludeMemberProposal) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	if err := r.ReadInto(p.MemberAddress[:]); nil != err {
		return err
	}
	start, end, err := readPeriod(r)
	if nil != err {
		return err
	}
	p.Start = start
	p.End = end
	return nil
}

// Family - always proposal
func (p *GeneralProposal) Family() Family { return ProposalFamily }

// TypeID - registered id
func (p *GeneralProposal) TypeID() TypeID { return GeneralProposalTypeID }

// StartTime - voting opens
func (p *GeneralProposal) StartTime() uint64 { return p.Start }

// EndTime - voting closes
func (p *GeneralProposal) EndTime() uint64 { return p.End }

// Pack - append type id, period, options and voting rules
func (p *GeneralProposal) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, p.TypeID())
	buffer = appendPeriod(buffer, p.Start, p.End)
	buffer = wire.AppendUint32(buffer, uint32(len(p.Options)))
	for _, option := range p.Options {
		buffer = wire.AppendLengthPrefixed(buffer, option)
	}
	buffer = wire.AppendUint64(buffer, p.TotalVotedThresholdNominator)
	buffer = wire.AppendUint64(buffer, p.MostVotedThresholdNominator)
	return wire.AppendBool(buffer, p.AllowEarlyFinish)
}

func (p *GeneralProposal) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	start, end, err := readPeriod(r)
	if nil != err {
		return err
	}
	count, err := r.ReadCount(wire.Uint32Length)
	if nil != err {
		return err
	}
	options := make([]Packed, count)
	for i := range options {
		options[i], err = r.ReadLengthPrefixed()
		if nil != err {
			return err
		}
	}
	total, err := r.ReadUint64()
	if nil != err {
		return err
	}
	most, err := r.ReadUint64()
	if nil != err {
		return err
	}
	early, err := r.ReadBool()
	if nil != err {
		return err
	}
	p.Start = start
	p.End = end
	p.Options = options
	p.TotalVotedThresholdNominator = total
	p.MostVotedThresholdNominator = most
	p.AllowEarlyFinish = early
	return nil
}
