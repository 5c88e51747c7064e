// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/chain4travel/caminotx/merkle"
	"github.com/chain4travel/caminotx/wire"
)

// TransferableOutput - an output of a given asset
type TransferableOutput struct {
	AssetID merkle.Digest `json:"assetID"`
	Output  Output        `json:"output"`
}

// TransferableInput - spends output OutputIndex of transaction TxID
type TransferableInput struct {
	TxID        merkle.Digest `json:"txID"`
	OutputIndex uint32        `json:"outputIndex"`
	AssetID     merkle.Digest `json:"assetID"`
	Input       Input         `json:"input"`
}

// Pack - asset id then output slot
func (out *TransferableOutput) Pack(buffer Packed) Packed {
	buffer = wire.AppendFixed(buffer, out.AssetID[:])
	return out.Output.Pack(buffer)
}

// Pack - utxo reference, asset id then input slot
func (in *TransferableInput) Pack(buffer Packed) Packed {
	buffer = wire.AppendFixed(buffer, in.TxID[:])
	buffer = wire.AppendUint32(buffer, in.OutputIndex)
	buffer = wire.AppendFixed(buffer, in.AssetID[:])
	return in.Input.Pack(buffer)
}

func (t *Table) readTransferableOutput(codecVersion uint16, r *wire.Reader) (*TransferableOutput, error) {
	out := &TransferableOutput{}
	if err := r.ReadInto(out.AssetID[:]); nil != err {
		return nil, err
	}
	o, err := t.ReadOutput(codecVersion, r)
	if nil != err {
		return nil, err
	}
	out.Output = o
	return out, nil
}

func (t *Table) readTransferableInput(codecVersion uint16, r *wire.Reader) (*TransferableInput, error) {
	in := &TransferableInput{}
	if err := r.ReadInto(in.TxID[:]); nil != err {
		return nil, err
	}
	index, err := r.ReadUint32()
	if nil != err {
		return nil, err
	}
	in.OutputIndex = index
	if err := r.ReadInto(in.AssetID[:]); nil != err {
		return nil, err
	}
	i, err := t.ReadInput(codecVersion, r)
	if nil != err {
		return nil, err
	}
	in.Input = i
	return in, nil
}
