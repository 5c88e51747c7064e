// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"fmt"

	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/wire"
)

// feature versions of the proposal payload
const (
	ProposalPayloadFeatureV0 = uint32(0)
	ProposalPayloadFeatureV1 = uint32(1)
)

// ProposalPayload - the versioned body of a governance proposal
//
// the wire form starts with the full version prefix; only V1 carries
// the proposer block after the proposal slot
type ProposalPayload interface {
	GetVersion() wire.Version
	GetProposal() Proposal
	Pack(buffer Packed) Packed
	isProposalPayload()
}

// ProposalPayloadV0 - original shape
type ProposalPayloadV0 struct {
	Codec    uint16   `json:"codecVersion"`
	Proposal Proposal `json:"proposal"`
}

// ProposalPayloadV1 - adds the proposing member and its signer indices
type ProposalPayloadV1 struct {
	Codec        uint16          `json:"codecVersion"`
	Proposal     Proposal        `json:"proposal"`
	Proposer     address.ShortID `json:"proposer"`
	ProposerAuth []uint32        `json:"proposerAuth"`
}

func (p *ProposalPayloadV0) isProposalPayload() {}
func (p *ProposalPayloadV1) isProposalPayload() {}

// GetVersion - codec and feature zero
func (p *ProposalPayloadV0) GetVersion() wire.Version {
	return wire.Version{Codec: p.Codec, Feature: ProposalPayloadFeatureV0}
}

// GetProposal - the wrapped proposal
func (p *ProposalPayloadV0) GetProposal() Proposal { return p.Proposal }

// Pack - version prefix then proposal slot
func (p *ProposalPayloadV0) Pack(buffer Packed) Packed {
	buffer = p.GetVersion().Pack(buffer)
	return p.Proposal.Pack(buffer)
}

// GetVersion - codec and feature one
func (p *ProposalPayloadV1) GetVersion() wire.Version {
	return wire.Version{Codec: p.Codec, Feature: ProposalPayloadFeatureV1}
}

// GetProposal - the wrapped proposal
func (p *ProposalPayloadV1) GetProposal() Proposal { return p.Proposal }

// Pack - version prefix, proposal slot, proposer block
func (p *ProposalPayloadV1) Pack(buffer Packed) Packed {
	buffer = p.GetVersion().Pack(buffer)
	buffer = p.Proposal.Pack(buffer)
	buffer = wire.AppendFixed(buffer, p.Proposer[:])
	buffer = wire.AppendUint32(buffer, uint32(len(p.ProposerAuth)))
	for _, index := range p.ProposerAuth {
		buffer = wire.AppendUint32(buffer, index)
	}
	return buffer
}

// ReadProposalPayload - version prefix selects the payload shape
func (t *Table) ReadProposalPayload(r *wire.Reader) (ProposalPayload, error) {
	version, err := r.ReadVersion()
	if nil != err {
		return nil, err
	}
	switch version.Feature {
	case ProposalPayloadFeatureV0, ProposalPayloadFeatureV1:
	default:
		return nil, fmt.Errorf("%w: proposal payload: %s", fault.ErrUnsupportedVersion, version)
	}

	proposal, err := t.ReadProposal(version.Codec, r)
	if nil != err {
		return nil, err
	}
	if !version.HasTrailingFields() {
		return &ProposalPayloadV0{
			Codec:    version.Codec,
			Proposal: proposal,
		}, nil
	}

	p := &ProposalPayloadV1{
		Codec:    version.Codec,
		Proposal: proposal,
	}
	if err := r.ReadInto(p.Proposer[:]); nil != err {
		return nil, err
	}
	count, err := r.ReadCount(wire.Uint32Length)
	if nil != err {
		return nil, err
	}
	p.ProposerAuth = make([]uint32, count)
	for i := range p.ProposerAuth {
		p.ProposerAuth[i], err = r.ReadUint32()
		if nil != err {
			return nil, err
		}
	}
	return p, nil
}

// UnpackProposalPayload - payload at offset, returns the new offset
func (t *Table) UnpackProposalPayload(buffer []byte, offset int) (ProposalPayload, int, error) {
	r := wire.NewReader(buffer, offset)
	p, err := t.ReadProposalPayload(r)
	if nil != err {
		return nil, offset, err
	}
	return p, r.Offset(), nil
}
