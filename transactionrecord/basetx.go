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

// BaseTxTypeID - type id of a plain transfer transaction
const BaseTxTypeID = TypeID(0)

// MaxMemoLength - limit on the memo field
const MaxMemoLength = 256

// minimum bytes of each transferable: ids and type id
const (
	minimumTransferableOutputLength = merkle.DigestLength + wire.Uint32Length
	minimumTransferableInputLength  = 2*merkle.DigestLength + 2*wire.Uint32Length
)

// BaseTx - unsigned transfer of assets between owners
type BaseTx struct {
	Codec        uint16                `json:"codecVersion"`
	NetworkID    uint32                `json:"networkID"`
	BlockchainID merkle.Digest         `json:"blockchainID"`
	Outputs      []*TransferableOutput `json:"outputs"`
	Inputs       []*TransferableInput  `json:"inputs"`
	Memo         Packed                `json:"memo"`
}

// SignedTx - an unsigned transaction with one credential per input
type SignedTx struct {
	Unsigned    *BaseTx      `json:"unsignedTx"`
	Credentials []Credential `json:"credentials"`
}

// Pack - codec prefix and all fields; this is the signing message
func (tx *BaseTx) Pack() (Packed, error) {
	if len(tx.Memo) > MaxMemoLength {
		return nil, fmt.Errorf("%w: %d bytes", fault.ErrMemoTooLong, len(tx.Memo))
	}
	for i, out := range tx.Outputs {
		if err := verifyOutput(out.Output); nil != err {
			return nil, fmt.Errorf("output[%d]: %w", i, err)
		}
	}
	for i, in := range tx.Inputs {
		if err := verifyInput(in.Input); nil != err {
			return nil, fmt.Errorf("input[%d]: %w", i, err)
		}
	}
	buffer := wire.AppendUint16(nil, tx.Codec)
	buffer = appendTypeID(buffer, BaseTxTypeID)
	buffer = wire.AppendUint32(buffer, tx.NetworkID)
	buffer = wire.AppendFixed(buffer, tx.BlockchainID[:])
	buffer = wire.AppendUint32(buffer, uint32(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		buffer = out.Pack(buffer)
	}
	buffer = wire.AppendUint32(buffer, uint32(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		buffer = in.Pack(buffer)
	}
	return wire.AppendLengthPrefixed(buffer, tx.Memo), nil
}

// Pack - unsigned bytes then credentials in input order
func (tx *SignedTx) Pack() (Packed, error) {
	if len(tx.Credentials) != len(tx.Unsigned.Inputs) {
		return nil, fmt.Errorf("%w: inputs: %d credentials: %d", fault.ErrMissingCredential, len(tx.Unsigned.Inputs), len(tx.Credentials))
	}
	buffer, err := tx.Unsigned.Pack()
	if nil != err {
		return nil, err
	}
	buffer = wire.AppendUint32(buffer, uint32(len(tx.Credentials)))
	for _, cred := range tx.Credentials {
		buffer = cred.Pack(buffer)
	}
	return buffer, nil
}

// ID - hash of the signed bytes
func (tx *SignedTx) ID() (merkle.Digest, error) {
	buffer, err := tx.Pack()
	if nil != err {
		return merkle.Digest{}, err
	}
	return merkle.NewDigest(buffer), nil
}

// reject anything that would pack but fail to unpack
func verifyInput(in Input) error {
	if locked, ok := in.(*LockedIn); ok {
		if _, ok := locked.Input.(*LockedIn); ok {
			return fault.ErrNestedLock
		}
	}
	return checkSignatureIndices(in.SigIndices())
}

func verifyOutput(out Output) error {
	switch o := out.(type) {
	case *LockedOut:
		if _, ok := o.Output.(*LockedOut); ok {
			return fault.ErrNestedLock
		}
	case *NFTTransferOutput:
		if len(o.Payload) > MaxNFTPayloadLength {
			return fmt.Errorf("%w: %d bytes", fault.ErrPayloadTooLong, len(o.Payload))
		}
	}
	return out.Owners().Verify()
}

func (t *Table) readBaseTx(r *wire.Reader) (*BaseTx, error) {
	codec, err := r.ReadCodecVersion()
	if nil != err {
		return nil, err
	}
	typeID, err := r.ReadUint32()
	if nil != err {
		return nil, err
	}
	if TypeID(typeID) != BaseTxTypeID {
		return nil, fmt.Errorf("%w: type: %d", fault.ErrWrongTransactionType, typeID)
	}

	tx := &BaseTx{Codec: codec}
	tx.NetworkID, err = r.ReadUint32()
	if nil != err {
		return nil, err
	}
	if err := r.ReadInto(tx.BlockchainID[:]); nil != err {
		return nil, err
	}

	outputCount, err := r.ReadCount(minimumTransferableOutputLength)
	if nil != err {
		return nil, err
	}
	tx.Outputs = make([]*TransferableOutput, outputCount)
	for i := range tx.Outputs {
		tx.Outputs[i], err = t.readTransferableOutput(codec, r)
		if nil != err {
			return nil, fmt.Errorf("output[%d]: %w", i, err)
		}
	}

	inputCount, err := r.ReadCount(minimumTransferableInputLength)
	if nil != err {
		return nil, err
	}
	tx.Inputs = make([]*TransferableInput, inputCount)
	for i := range tx.Inputs {
		tx.Inputs[i], err = t.readTransferableInput(codec, r)
		if nil != err {
			return nil, fmt.Errorf("input[%d]: %w", i, err)
		}
	}

	memo, err := r.ReadLengthPrefixed()
	if nil != err {
		return nil, err
	}
	if len(memo) > MaxMemoLength {
		return nil, fmt.Errorf("%w: %d bytes", fault.ErrMemoTooLong, len(memo))
	}
	tx.Memo = memo
	return tx, nil
}

// UnpackBaseTx - the whole buffer must be one unsigned transaction
func (t *Table) UnpackBaseTx(buffer []byte) (*BaseTx, error) {
	r := wire.NewReader(buffer, 0)
	tx, err := t.readBaseTx(r)
	if nil != err {
		return nil, err
	}
	if 0 != r.Remaining() {
		return nil, fmt.Errorf("%w: %d bytes", fault.ErrTrailingBytes, r.Remaining())
	}
	return tx, nil
}

// UnpackSignedTx - the whole buffer must be one signed transaction
func (t *Table) UnpackSignedTx(buffer []byte) (*SignedTx, error) {
	r := wire.NewReader(buffer, 0)
	unsigned, err := t.readBaseTx(r)
	if nil != err {
		return nil, err
	}

	count, err := r.ReadCount(2 * wire.Uint32Length)
	if nil != err {
		return nil, err
	}
	if count != len(unsigned.Inputs) {
		return nil, fmt.Errorf("%w: inputs: %d credentials: %d", fault.ErrMissingCredential, len(unsigned.Inputs), count)
	}
	credentials := make([]Credential, count)
	for i := range credentials {
		credentials[i], err = t.ReadCredential(unsigned.Codec, r)
		if nil != err {
			return nil, fmt.Errorf("credential[%d]: %w", i, err)
		}
	}
	if 0 != r.Remaining() {
		return nil, fmt.Errorf("%w: %d bytes", fault.ErrTrailingBytes, r.Remaining())
	}
	return &SignedTx{
		Unsigned:    unsigned,
		Credentials: credentials,
	}, nil
}
