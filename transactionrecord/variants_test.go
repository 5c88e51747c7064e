// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/transactionrecord"
	"github.com/chain4travel/caminotx/wire"
)

// pack then unpack every registered variant
func TestVariantRoundTrip(t *testing.T) {
	table := transactionrecord.NewTable()

	items := []struct {
		title   string
		variant transactionrecord.Variant
	}{
		{
			title: "secp transfer input",
			variant: &transactionrecord.SECPTransferInput{
				Amt:              123456789,
				SignatureIndices: []uint32{0, 2, 5},
			},
		},
		{
			title: "locked input",
			variant: &transactionrecord.LockedIn{
				DepositTxID: makeDigest(0xd1),
				BondTxID:    makeDigest(0xb2),
				Input: &transactionrecord.SECPTransferInput{
					Amt:              7,
					SignatureIndices: []uint32{1},
				},
			},
		},
		{
			title: "secp mint output",
			variant: &transactionrecord.SECPMintOutput{
				OwnerPolicy: makeOwners(t, 1, 0, 0x11),
			},
		},
		{
			title: "secp transfer output",
			variant: &transactionrecord.SECPTransferOutput{
				Amt:         1000,
				OwnerPolicy: makeOwners(t, 2, 1700000000, 0x22, 0x11, 0x33),
			},
		},
		{
			title: "nft mint output",
			variant: &transactionrecord.NFTMintOutput{
				GroupID:     42,
				OwnerPolicy: makeOwners(t, 1, 0, 0x44),
			},
		},
		{
			title: "nft transfer output",
			variant: &transactionrecord.NFTTransferOutput{
				GroupID:     43,
				Payload:     []byte("ticket:LH400:12A"),
				OwnerPolicy: makeOwners(t, 1, 0, 0x55),
			},
		},
		{
			title: "locked output",
			variant: &transactionrecord.LockedOut{
				DepositTxID: makeDigest(0x01),
				BondTxID:    makeDigest(0x02),
				Output: &transactionrecord.SECPTransferOutput{
					Amt:         99,
					OwnerPolicy: makeOwners(t, 1, 0, 0x66),
				},
			},
		},
		{
			title: "secp credential",
			variant: &transactionrecord.SECPCredential{
				Sigs: []transactionrecord.Signature{makeSignature(0xa1), makeSignature(0xa2)},
			},
		},
		{
			title: "nft credential",
			variant: &transactionrecord.NFTCredential{
				Sigs: []transactionrecord.Signature{makeSignature(0xb1)},
			},
		},
		{
			title: "base fee proposal",
			variant: &transactionrecord.BaseFeeProposal{
				Start:   1000,
				End:     2000,
				Options: []uint64{1000000, 2000000, 3000000},
			},
		},
		{
			title: "add member proposal",
			variant: &transactionrecord.AddMemberProposal{
				ApplicantAddress: makeAddress(0x77),
				Start:            10,
				End:              20,
			},
		},
		{
			title: "exclude member proposal",
			variant: &transactionrecord.ExcludeMemberProposal{
				MemberAddress: makeAddress(0x88),
				Start:         30,
				End:           40,
			},
		},
		{
			title: "general proposal",
			variant: &transactionrecord.GeneralProposal{
				Start:                        50,
				End:                          60,
				Options:                      []transactionrecord.Packed{[]byte("yes"), []byte("no"), []byte("abstain")},
				TotalVotedThresholdNominator: 500000,
				MostVotedThresholdNominator:  300000,
				AllowEarlyFinish:             true,
			},
		},
	}

	for i, item := range items {
		packed := item.variant.Pack(nil)

		// surround with junk to check offsets are honoured
		buffer := append([]byte{0xff, 0xfe, 0xfd}, packed...)
		buffer = append(buffer, 0xee)

		var (
			unpacked transactionrecord.Variant
			n        int
			err      error
		)
		switch item.variant.Family() {
		case transactionrecord.InputFamily:
			unpacked, n, err = table.UnpackInput(wire.CodecVersion, buffer, 3)
		case transactionrecord.OutputFamily:
			unpacked, n, err = table.UnpackOutput(wire.CodecVersion, buffer, 3)
		case transactionrecord.CredentialFamily:
			unpacked, n, err = table.UnpackCredential(wire.CodecVersion, buffer, 3)
		case transactionrecord.ProposalFamily:
			unpacked, n, err = table.UnpackProposal(wire.CodecVersion, buffer, 3)
		default:
			t.Fatalf("%d: %s: unexpected family: %s", i, item.title, item.variant.Family())
		}
		if nil != err {
			t.Errorf("%d: %s: unpack error: %s", i, item.title, err)
			continue
		}
		if 3+len(packed) != n {
			t.Errorf("%d: %s: offset: %d  expected: %d", i, item.title, n, 3+len(packed))
		}
		if !reflect.DeepEqual(item.variant, unpacked) {
			t.Errorf("%d: %s: different, original: %#v  recovered: %#v", i, item.title, item.variant, unpacked)
		}
		if !bytes.Equal(packed, unpacked.Pack(nil)) {
			t.Errorf("%d: %s: repack differs", i, item.title)
		}

		name, ok := transactionrecord.RecordName(unpacked)
		if !ok {
			t.Errorf("%d: %s: no record name", i, item.title)
		}

		if _, err := json.Marshal(unpacked); nil != err {
			t.Errorf("%d: %s: json error: %s", i, item.title, err)
		}
		t.Logf("%d: %s: %d bytes", i, name, len(packed))
	}
}

func TestPackSECPTransferInput(t *testing.T) {
	in := &transactionrecord.SECPTransferInput{
		Amt:              1000,
		SignatureIndices: []uint32{0, 2},
	}
	expected := []byte{
		0x00, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe8,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x02,
	}
	assert.Equal(t, expected, []byte(in.Pack(nil)))
}

func TestPackSECPTransferOutput(t *testing.T) {
	out := &transactionrecord.SECPTransferOutput{
		Amt:         1000,
		OwnerPolicy: makeOwners(t, 1, 0, 0x01),
	}
	expected := []byte{
		0x00, 0x00, 0x00, 0x07,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe8,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x01,
	}
	expected = append(expected, bytes.Repeat([]byte{0x01}, 20)...)
	assert.Equal(t, expected, []byte(out.Pack(nil)))
}

func TestPackSECPCredential(t *testing.T) {
	cred := &transactionrecord.SECPCredential{
		Sigs: []transactionrecord.Signature{makeSignature(0x5a)},
	}
	expected := []byte{
		0x00, 0x00, 0x00, 0x09,
		0x00, 0x00, 0x00, 0x01,
	}
	expected = append(expected, bytes.Repeat([]byte{0x5a}, 65)...)
	packed := cred.Pack(nil)
	assert.Equal(t, expected, []byte(packed))
	assert.Equal(t, 8+65, len(packed))
}

func TestVariantTruncation(t *testing.T) {
	table := transactionrecord.NewTable()

	output := &transactionrecord.LockedOut{
		DepositTxID: makeDigest(0x01),
		Output: &transactionrecord.NFTTransferOutput{
			GroupID:     1,
			Payload:     []byte("payload"),
			OwnerPolicy: makeOwners(t, 2, 5, 0x01, 0x02),
		},
	}
	checkTruncation(t, "locked nft output", output.Pack(nil), func(buffer []byte) error {
		_, _, err := table.UnpackOutput(wire.CodecVersion, buffer, 0)
		if nil != err && !fault.IsErrLength(err) {
			t.Errorf("locked nft output: unexpected error class: %s", err)
		}
		return err
	})

	proposal := &transactionrecord.GeneralProposal{
		Start:   1,
		End:     2,
		Options: []transactionrecord.Packed{[]byte("a"), []byte("bc")},
	}
	checkTruncation(t, "general proposal", proposal.Pack(nil), func(buffer []byte) error {
		_, _, err := table.UnpackProposal(wire.CodecVersion, buffer, 0)
		return err
	})
}

func TestUnknownTypeID(t *testing.T) {
	table := transactionrecord.NewTable()

	// an output type id in an input slot
	out := &transactionrecord.SECPTransferOutput{
		Amt:         1,
		OwnerPolicy: makeOwners(t, 1, 0, 0x01),
	}
	_, n, err := table.UnpackInput(wire.CodecVersion, out.Pack(nil), 0)
	assert.ErrorIs(t, err, fault.ErrUnknownTypeID)
	assert.True(t, fault.IsErrNotFound(err))
	assert.Equal(t, 0, n)

	// nothing registered for a later codec
	in := &transactionrecord.SECPTransferInput{Amt: 1, SignatureIndices: []uint32{0}}
	_, _, err = table.UnpackInput(1, in.Pack(nil), 0)
	assert.ErrorIs(t, err, fault.ErrUnknownTypeID)

	_, _, err = table.UnpackCredential(wire.CodecVersion, []byte{0x12, 0x34, 0x56, 0x78}, 0)
	assert.ErrorIs(t, err, fault.ErrUnknownTypeID)
	assert.Contains(t, err.Error(), "registered: [9 14]")
}

func TestUnpackNegativeOffset(t *testing.T) {
	table := transactionrecord.NewTable()
	in := &transactionrecord.SECPTransferInput{Amt: 1, SignatureIndices: []uint32{0}}
	packed := in.Pack(nil)

	for _, offset := range []int{-1, -2} {
		_, n, err := table.UnpackInput(wire.CodecVersion, packed, offset)
		assert.ErrorIs(t, err, fault.ErrTruncatedInput, "offset: %d", offset)
		assert.Equal(t, offset, n)

		_, _, err = table.UnpackProposalPayload(packed, offset)
		assert.ErrorIs(t, err, fault.ErrTruncatedInput, "offset: %d", offset)
	}
}

func TestNestedLockRejected(t *testing.T) {
	table := transactionrecord.NewTable()

	inner := &transactionrecord.LockedIn{
		Input: &transactionrecord.SECPTransferInput{Amt: 1, SignatureIndices: []uint32{0}},
	}
	outer := &transactionrecord.LockedIn{Input: inner}
	_, _, err := table.UnpackInput(wire.CodecVersion, outer.Pack(nil), 0)
	assert.ErrorIs(t, err, fault.ErrNestedLock)

	innerOut := &transactionrecord.LockedOut{
		Output: &transactionrecord.SECPMintOutput{OwnerPolicy: makeOwners(t, 1, 0, 0x01)},
	}
	outerOut := &transactionrecord.LockedOut{Output: innerOut}
	_, _, err = table.UnpackOutput(wire.CodecVersion, outerOut.Pack(nil), 0)
	assert.ErrorIs(t, err, fault.ErrNestedLock)
}

func TestUnsortedSignatureIndices(t *testing.T) {
	table := transactionrecord.NewTable()

	for i, indices := range [][]uint32{{1, 0}, {2, 2}} {
		in := &transactionrecord.SECPTransferInput{Amt: 1, SignatureIndices: indices}
		_, _, err := table.UnpackInput(wire.CodecVersion, in.Pack(nil), 0)
		if !assert.ErrorIs(t, err, fault.ErrSignatureIndicesNotSorted) {
			t.Errorf("%d: indices: %v", i, indices)
		}
	}
}

func TestNFTPayloadTooLong(t *testing.T) {
	table := transactionrecord.NewTable()

	out := &transactionrecord.NFTTransferOutput{
		Payload:     make([]byte, transactionrecord.MaxNFTPayloadLength+1),
		OwnerPolicy: makeOwners(t, 1, 0, 0x01),
	}
	_, _, err := table.UnpackOutput(wire.CodecVersion, out.Pack(nil), 0)
	assert.ErrorIs(t, err, fault.ErrPayloadTooLong)
}

func TestRegistry(t *testing.T) {
	table := transactionrecord.NewTable()

	v, err := table.Select(transactionrecord.CredentialFamily, wire.CodecVersion, transactionrecord.NFTCredentialTypeID)
	require.NoError(t, err)
	assert.IsType(t, &transactionrecord.NFTCredential{}, v)

	assert.Equal(t, []transactionrecord.TypeID{
		transactionrecord.SECPTransferInputTypeID,
		transactionrecord.LockedInTypeID,
	}, table.TypeIDs(transactionrecord.InputFamily, wire.CodecVersion))
	assert.Len(t, table.TypeIDs(transactionrecord.OutputFamily, wire.CodecVersion), 5)
	assert.Len(t, table.TypeIDs(transactionrecord.CredentialFamily, wire.CodecVersion), 2)
	assert.Len(t, table.TypeIDs(transactionrecord.ProposalFamily, wire.CodecVersion), 4)
	assert.Empty(t, table.TypeIDs(transactionrecord.ProposalFamily, 1))

	empty := transactionrecord.NewEmptyTable()
	_, err = empty.Select(transactionrecord.InputFamily, wire.CodecVersion, transactionrecord.SECPTransferInputTypeID)
	assert.ErrorIs(t, err, fault.ErrUnknownTypeID)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	table := transactionrecord.NewTable()
	assert.Panics(t, func() {
		table.Register(transactionrecord.InputFamily, wire.CodecVersion, transactionrecord.SECPTransferInputTypeID, func() transactionrecord.Variant {
			return new(transactionrecord.SECPTransferInput)
		})
	})
}

func TestRegisterMismatchPanics(t *testing.T) {
	table := transactionrecord.NewEmptyTable()
	assert.Panics(t, func() {
		table.Register(transactionrecord.OutputFamily, wire.CodecVersion, transactionrecord.SECPTransferInputTypeID, func() transactionrecord.Variant {
			return new(transactionrecord.SECPTransferInput)
		})
	})
}
