// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/chain4travel/caminotx/chain"
	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/merkle"
	"github.com/chain4travel/caminotx/transactionrecord"
)

// a polymorphic slot shown with its variant name
type typedRecord struct {
	Type   string                   `json:"type"`
	TypeID transactionrecord.TypeID `json:"typeID"`
	Record interface{}              `json:"record"`
}

type decodedOutput struct {
	AssetID merkle.Digest `json:"assetID"`
	Output  typedRecord   `json:"output"`
}

type decodedInput struct {
	TxID        merkle.Digest `json:"txID"`
	OutputIndex uint32        `json:"outputIndex"`
	AssetID     merkle.Digest `json:"assetID"`
	Input       typedRecord   `json:"input"`
}

type decodedTransaction struct {
	ID           *merkle.Digest           `json:"id,omitempty"`
	Network      string                   `json:"network"`
	NetworkID    uint32                   `json:"networkID"`
	Codec        uint16                   `json:"codecVersion"`
	BlockchainID merkle.Digest            `json:"blockchainID"`
	Outputs      []decodedOutput          `json:"outputs"`
	Inputs       []decodedInput           `json:"inputs"`
	Memo         transactionrecord.Packed `json:"memo"`
	Credentials  []typedRecord            `json:"credentials,omitempty"`
	TotalIn      map[string]string        `json:"totalIn"`
	TotalOut     map[string]string        `json:"totalOut"`
	Size         int                      `json:"size"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txHex := strings.TrimPrefix(strings.TrimSpace(c.String("transaction")), "0x")
	if "" == txHex {
		return fmt.Errorf("transaction hex is required")
	}
	packed, err := hex.DecodeString(txHex)
	if nil != err {
		return fault.ErrInvalidHex
	}

	if m.verbose {
		fmt.Fprintf(m.e, "transaction: %d bytes\n", len(packed))
	}

	decoded, err := decodeTransaction(m.table, m.config.Network(), packed, c.Bool("unsigned"))
	if nil != err {
		return err
	}

	return m.print(decoded)
}

// decodeTransaction - unpack a transaction belonging to the given network
func decodeTransaction(table *transactionrecord.Table, network chain.Network, packed []byte, unsigned bool) (*decodedTransaction, error) {

	var tx *transactionrecord.BaseTx
	var credentials []transactionrecord.Credential
	var id *merkle.Digest

	if unsigned {
		unsignedTx, err := table.UnpackBaseTx(packed)
		if nil != err {
			return nil, err
		}
		tx = unsignedTx
	} else {
		signedTx, err := table.UnpackSignedTx(packed)
		if nil != err {
			return nil, err
		}
		tx = signedTx.Unsigned
		credentials = signedTx.Credentials
		digest := merkle.NewDigest(packed)
		id = &digest
	}

	if tx.NetworkID != network.ID {
		return nil, fmt.Errorf("%w: transaction: %d configured: %d (%s)", fault.ErrWrongNetwork, tx.NetworkID, network.ID, network.Name)
	}

	decoded := &decodedTransaction{
		ID:           id,
		Network:      network.Name,
		NetworkID:    tx.NetworkID,
		Codec:        tx.Codec,
		BlockchainID: tx.BlockchainID,
		Outputs:      make([]decodedOutput, len(tx.Outputs)),
		Inputs:       make([]decodedInput, len(tx.Inputs)),
		Memo:         tx.Memo,
		TotalIn:      make(map[string]string),
		TotalOut:     make(map[string]string),
		Size:         len(packed),
	}

	totalOut := make(map[merkle.Digest]decimal.Decimal)
	for i, out := range tx.Outputs {
		decoded.Outputs[i] = decodedOutput{
			AssetID: out.AssetID,
			Output:  typed(out.Output),
		}
		if a, ok := out.Output.(interface{ Amount() uint64 }); ok {
			totalOut[out.AssetID] = totalOut[out.AssetID].Add(amount(a.Amount()))
		}
	}

	totalIn := make(map[merkle.Digest]decimal.Decimal)
	for i, in := range tx.Inputs {
		decoded.Inputs[i] = decodedInput{
			TxID:        in.TxID,
			OutputIndex: in.OutputIndex,
			AssetID:     in.AssetID,
			Input:       typed(in.Input),
		}
		totalIn[in.AssetID] = totalIn[in.AssetID].Add(amount(in.Input.Amount()))
	}

	for _, cred := range credentials {
		decoded.Credentials = append(decoded.Credentials, typed(cred))
	}

	for asset, total := range totalIn {
		decoded.TotalIn[asset.String()] = total.String()
	}
	for asset, total := range totalOut {
		decoded.TotalOut[asset.String()] = total.String()
	}

	return decoded, nil
}

func typed(v transactionrecord.Variant) typedRecord {
	name, _ := transactionrecord.RecordName(v)
	return typedRecord{
		Type:   name,
		TypeID: v.TypeID(),
		Record: v,
	}
}

// sums can exceed a uint64
func amount(a uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(a), 0)
}
