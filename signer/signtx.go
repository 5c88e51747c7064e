// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signer

import (
	"fmt"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/ownership"
	"github.com/chain4travel/caminotx/transactionrecord"
)

// SignTx - credentials for every input of an unsigned transaction
//
// owners[i] is the policy of the output spent by input i
func (r *Resolver) SignTx(tx *transactionrecord.BaseTx, owners []ownership.Policy) (*transactionrecord.SignedTx, error) {
	if len(owners) != len(tx.Inputs) {
		return nil, fmt.Errorf("%w: inputs: %d owners: %d", fault.ErrMissingCredential, len(tx.Inputs), len(owners))
	}

	message, err := tx.Pack()
	if nil != err {
		return nil, err
	}
	credentials, err := r.BuildCredentials(message, owners)
	if nil != err {
		return nil, err
	}

	return &transactionrecord.SignedTx{
		Unsigned:    tx,
		Credentials: credentials,
	}, nil
}

// VerifyTx - check every credential of a signed transaction against
// the owners of the spent outputs
func (r *Resolver) VerifyTx(tx *transactionrecord.SignedTx, owners []ownership.Policy) error {
	if len(owners) != len(tx.Credentials) {
		return fmt.Errorf("%w: credentials: %d owners: %d", fault.ErrMissingCredential, len(tx.Credentials), len(owners))
	}
	message, err := tx.Unsigned.Pack()
	if nil != err {
		return err
	}
	for i, p := range owners {
		signers, err := r.Resolve(p)
		if nil != err {
			return fmt.Errorf("credential[%d]: %w", i, err)
		}
		if err := VerifyCredential(message, tx.Credentials[i], signers); nil != err {
			return fmt.Errorf("credential[%d]: %w", i, err)
		}
	}
	return nil
}
