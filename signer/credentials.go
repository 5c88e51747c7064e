// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signer

import (
	"crypto/sha256"
	"fmt"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/keychain"
	"github.com/chain4travel/caminotx/ownership"
	"github.com/chain4travel/caminotx/transactionrecord"
)

// BuildCredentials - one credential per policy, in policy order
//
// every selected key signs sha256(message); either all credentials
// are returned or none
func (r *Resolver) BuildCredentials(message []byte, policies []ownership.Policy) ([]transactionrecord.Credential, error) {
	resolved, err := r.ResolveAll(policies)
	if nil != err {
		return nil, err
	}

	hash := sha256.Sum256(message)
	credentials := make([]transactionrecord.Credential, len(resolved))
	for i, signers := range resolved {
		sigs, err := r.sign(hash[:], signers)
		if nil != err {
			return nil, fmt.Errorf("policy[%d]: %w", i, err)
		}
		credentials[i] = &transactionrecord.SECPCredential{
			Sigs: sigs,
		}
	}
	r.log.Debugf("built: %d credentials", len(credentials))
	return credentials, nil
}

func (r *Resolver) sign(hash []byte, signers []SignerIndex) ([]transactionrecord.Signature, error) {
	sigs := make([]transactionrecord.Signature, len(signers))
	for i, s := range signers {
		key, ok := r.keys.Get(s.Source)
		if !ok {
			return nil, fmt.Errorf("%w: no key for: %s", fault.ErrInvalidPrivateKey, s.Source)
		}
		b, err := key.SignHash(hash)
		if nil != err {
			return nil, err
		}
		sigs[i], err = transactionrecord.SignatureFromBytes(b)
		if nil != err {
			return nil, err
		}
	}
	return sigs, nil
}

// VerifyCredential - each signature over sha256(message) recovers to
// the corresponding signer's address
func VerifyCredential(message []byte, credential transactionrecord.Credential, signers []SignerIndex) error {
	sigs := credential.Signatures()
	if len(sigs) != len(signers) {
		return fmt.Errorf("%w: signatures: %d signers: %d", fault.ErrWrongSignerCount, len(sigs), len(signers))
	}
	hash := sha256.Sum256(message)
	for i, s := range signers {
		if !keychain.Verify(hash[:], sigs[i][:], s.Source) {
			return fmt.Errorf("%w: position: %d source: %s", fault.ErrInvalidSignature, i, s.Source)
		}
	}
	return nil
}
