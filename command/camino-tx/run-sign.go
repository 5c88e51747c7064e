// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/merkle"
	"github.com/chain4travel/caminotx/ownership"
	"github.com/chain4travel/caminotx/signer"
	"github.com/chain4travel/caminotx/transactionrecord"
)

type signedResult struct {
	ID          merkle.Digest `json:"id"`
	Credentials int           `json:"credentials"`
	Signatures  int           `json:"signatures"`
	Transaction string        `json:"transaction"`
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txHex := strings.TrimPrefix(strings.TrimSpace(c.String("transaction")), "0x")
	if "" == txHex {
		return fmt.Errorf("transaction hex is required")
	}
	fileName := c.String("owners")
	if "" == fileName {
		return fmt.Errorf("owners file is required")
	}

	packed, err := hex.DecodeString(txHex)
	if nil != err {
		return fault.ErrInvalidHex
	}

	owners, err := readOwnersFile(fileName, m.codec)
	if nil != err {
		return err
	}

	result, err := signTransaction(m.table, m.resolver, m.config.Network().ID, packed, owners)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signed: %s\n", result.ID)
	}

	return m.print(result)
}

// signTransaction - sign, then check the result decodes and verifies
func signTransaction(table *transactionrecord.Table, resolver *signer.Resolver, networkID uint32, packed []byte, owners []ownership.Policy) (*signedResult, error) {

	tx, err := table.UnpackBaseTx(packed)
	if nil != err {
		return nil, err
	}
	if tx.NetworkID != networkID {
		return nil, fmt.Errorf("%w: transaction: %d configured: %d", fault.ErrWrongNetwork, tx.NetworkID, networkID)
	}

	signedTx, err := resolver.SignTx(tx, owners)
	if nil != err {
		return nil, err
	}
	signedPacked, err := signedTx.Pack()
	if nil != err {
		return nil, err
	}

	check, err := table.UnpackSignedTx(signedPacked)
	if nil != err {
		return nil, err
	}
	if err := resolver.VerifyTx(check, owners); nil != err {
		return nil, err
	}

	signatures := 0
	for _, cred := range signedTx.Credentials {
		signatures += len(cred.Signatures())
	}

	return &signedResult{
		ID:          merkle.NewDigest(signedPacked),
		Credentials: len(signedTx.Credentials),
		Signatures:  signatures,
		Transaction: hex.EncodeToString(signedPacked),
	}, nil
}
