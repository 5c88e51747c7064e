// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keychain

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ripemd160"

	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/formatting"
)

// sizes
const (
	PrivateKeyLength = 32
	PublicKeyLength  = 33
	SignatureLength  = 65
	HashLength       = sha256.Size
)

// PrivateKeyPrefix - text form of a private key is this followed by CB58
const PrivateKeyPrefix = "PrivateKey-"

// compact signatures carry 27 + 4 (compressed) + recovery id in front
const compactHeader = 27 + 4

// PrivateKey - a secp256k1 signing key
type PrivateKey struct {
	key     *secp256k1.PrivateKey
	address address.ShortID
}

// PrivateKeyFromBytes - raw 32 byte scalar
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	if PrivateKeyLength != len(buffer) {
		return nil, fmt.Errorf("%w: %d bytes", fault.ErrInvalidKeyLength, len(buffer))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(buffer); overflow || scalar.IsZero() {
		return nil, fault.ErrInvalidPrivateKey
	}
	key := secp256k1.NewPrivateKey(&scalar)
	return &PrivateKey{
		key:     key,
		address: DeriveAddress(key.PubKey().SerializeCompressed()),
	}, nil
}

// ParsePrivateKey - from "PrivateKey-<cb58>"
func ParsePrivateKey(s string) (*PrivateKey, error) {
	if !strings.HasPrefix(s, PrivateKeyPrefix) {
		return nil, fault.ErrInvalidPrivateKey
	}
	buffer, err := formatting.DecodeCB58(strings.TrimPrefix(s, PrivateKeyPrefix))
	if nil != err {
		return nil, err
	}
	return PrivateKeyFromBytes(buffer)
}

// String - text form with prefix
func (k *PrivateKey) String() string {
	return PrivateKeyPrefix + formatting.EncodeCB58(k.key.Serialize())
}

// Bytes - raw scalar
func (k *PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

// Address - derived from the compressed public key
func (k *PrivateKey) Address() address.ShortID {
	return k.address
}

// PublicKey - 33 byte compressed form
func (k *PrivateKey) PublicKey() []byte {
	return k.key.PubKey().SerializeCompressed()
}

// SignHash - deterministic recoverable signature as [r || s || v]
func (k *PrivateKey) SignHash(hash []byte) ([]byte, error) {
	if HashLength != len(hash) {
		return nil, fmt.Errorf("%w: %d bytes", fault.ErrInvalidHashLength, len(hash))
	}
	compact := ecdsa.SignCompact(k.key, hash, true)

	sig := make([]byte, SignatureLength)
	copy(sig, compact[1:])
	sig[SignatureLength-1] = compact[0] - compactHeader
	return sig, nil
}

// DeriveAddress - ripemd160(sha256(compressed public key))
func DeriveAddress(publicKey []byte) address.ShortID {
	digest := sha256.Sum256(publicKey)
	h := ripemd160.New()
	h.Write(digest[:])

	var a address.ShortID
	copy(a[:], h.Sum(nil))
	return a
}

// RecoverPublicKey - compressed public key that produced a signature
func RecoverPublicKey(hash []byte, sig []byte) ([]byte, error) {
	if SignatureLength != len(sig) {
		return nil, fmt.Errorf("%w: %d bytes", fault.ErrWrongSignatureLength, len(sig))
	}
	if sig[SignatureLength-1] > 3 {
		return nil, fault.ErrInvalidSignature
	}

	compact := make([]byte, SignatureLength)
	compact[0] = sig[SignatureLength-1] + compactHeader
	copy(compact[1:], sig[:SignatureLength-1])

	publicKey, compressed, err := ecdsa.RecoverCompact(compact, hash)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrInvalidSignature, err)
	}
	if !compressed {
		return nil, fault.ErrInvalidSignature
	}
	return publicKey.SerializeCompressed(), nil
}

// RecoverAddress - address of the key that produced a signature
func RecoverAddress(hash []byte, sig []byte) (address.ShortID, error) {
	publicKey, err := RecoverPublicKey(hash, sig)
	if nil != err {
		return address.ShortID{}, err
	}
	return DeriveAddress(publicKey), nil
}

// Verify - true if the signature over hash was made by the key for addr
func Verify(hash []byte, sig []byte, addr address.ShortID) bool {
	recovered, err := RecoverAddress(hash, sig)
	if nil != err {
		return false
	}
	return recovered == addr
}

// VerifyPublicKey - check a signature against a known public key
func VerifyPublicKey(hash []byte, sig []byte, publicKey []byte) bool {
	if SignatureLength != len(sig) {
		return false
	}
	key, err := secp256k1.ParsePubKey(publicKey)
	if nil != err {
		return false
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:64]); overflow {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(hash, key)
}
