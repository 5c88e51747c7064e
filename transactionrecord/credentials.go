// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"fmt"

	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/wire"
)

// SignatureLength - recoverable secp256k1 signature [r || s || v]
const SignatureLength = 65

// Signature - one recoverable signature
type Signature [SignatureLength]byte

// Credential - the closed set of credential variants
type Credential interface {
	Variant
	Signatures() []Signature
	isCredential()
}

// SECPCredential - signatures authorising a secp256k1 input
type SECPCredential struct {
	Sigs []Signature `json:"signatures"`
}

// NFTCredential - signatures authorising an NFT operation
type NFTCredential struct {
	Sigs []Signature `json:"signatures"`
}

// SignatureFromBytes - copy a 65 byte signature
func SignatureFromBytes(buffer []byte) (Signature, error) {
	var sig Signature
	if len(buffer) != SignatureLength {
		return sig, fmt.Errorf("%w: %d bytes", fault.ErrWrongSignatureLength, len(buffer))
	}
	copy(sig[:], buffer)
	return sig, nil
}

// MarshalText - hex form for JSON
func (sig Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(SignatureLength))
	hex.Encode(b, sig[:])
	return b, nil
}

// UnmarshalText - from hex
func (sig *Signature) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != SignatureLength {
		return fault.ErrWrongSignatureLength
	}
	_, err := hex.Decode(sig[:], s)
	return err
}

func (cred *SECPCredential) isCredential() {}
func (cred *NFTCredential) isCredential()  {}

// Family - always credential
func (cred *SECPCredential) Family() Family { return CredentialFamily }

// TypeID - registered id
func (cred *SECPCredential) TypeID() TypeID { return SECPCredentialTypeID }

// Signatures - in signer order
func (cred *SECPCredential) Signatures() []Signature { return cred.Sigs }

// Pack - append type id and signatures
func (cred *SECPCredential) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, cred.TypeID())
	return packSignatures(buffer, cred.Sigs)
}

func (cred *SECPCredential) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	sigs, err := unpackSignatures(r)
	if nil != err {
		return err
	}
	cred.Sigs = sigs
	return nil
}

// Family - always credential
func (cred *NFTCredential) Family() Family { return CredentialFamily }

// TypeID - registered id
func (cred *NFTCredential) TypeID() TypeID { return NFTCredentialTypeID }

// Signatures - in signer order
func (cred *NFTCredential) Signatures() []Signature { return cred.Sigs }

// Pack - append type id and signatures
func (cred *NFTCredential) Pack(buffer Packed) Packed {
	buffer = appendTypeID(buffer, cred.TypeID())
	return packSignatures(buffer, cred.Sigs)
}

func (cred *NFTCredential) unpack(r *wire.Reader, _ *Table, _ uint16) error {
	sigs, err := unpackSignatures(r)
	if nil != err {
		return err
	}
	cred.Sigs = sigs
	return nil
}

func packSignatures(buffer Packed, sigs []Signature) Packed {
	buffer = wire.AppendUint32(buffer, uint32(len(sigs)))
	for _, sig := range sigs {
		buffer = wire.AppendFixed(buffer, sig[:])
	}
	return buffer
}

func unpackSignatures(r *wire.Reader) ([]Signature, error) {
	count, err := r.ReadCount(SignatureLength)
	if nil != err {
		return nil, err
	}
	sigs := make([]Signature, count)
	for i := range sigs {
		if err := r.ReadInto(sigs[i][:]); nil != err {
			return nil, err
		}
	}
	return sigs, nil
}
