// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PolicyError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressesNotSorted        = InvalidError("addresses are not sorted and unique")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrCannotDecodeAddress       = InvalidError("cannot decode address")
	ErrChecksumMismatch          = InvalidError("checksum mismatch")
	ErrConfigurationNotTable     = InvalidError("configuration did not return a table")
	ErrCyclicPolicy              = PolicyError("cyclic multisig alias")
	ErrDuplicateAlias            = ExistsError("duplicate multisig alias")
	ErrDuplicateTypeID           = ExistsError("duplicate type id registration")
	ErrInsufficientSignatures    = PolicyError("insufficient signatures")
	ErrInvalidChain              = InvalidError("invalid chain")
	ErrInvalidConfiguration      = InvalidError("invalid configuration")
	ErrInvalidHashLength         = LengthError("hash must be 32 bytes")
	ErrInvalidHex                = InvalidError("invalid hex")
	ErrInvalidKeyLength          = InvalidError("invalid key length")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidPrivateKey         = InvalidError("invalid private key")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrMemoTooLong               = LengthError("memo too long")
	ErrMissingCredential         = InvalidError("missing credential")
	ErrNegativeNumber            = InvalidError("negative number")
	ErrNestedLock                = InvalidError("locked wrapper cannot be nested")
	ErrNotANumber                = InvalidError("not a decimal integer")
	ErrNotFixedLength            = LengthError("value does not fit fixed length")
	ErrPayloadTooLong            = LengthError("payload too long")
	ErrSignatureIndicesNotSorted = InvalidError("signature indices are not sorted and unique")
	ErrThresholdTooHigh          = InvalidError("threshold exceeds address count")
	ErrThresholdZero             = InvalidError("threshold is zero")
	ErrTooManySignatures         = PolicyError("too many signatures")
	ErrTrailingBytes             = LengthError("trailing bytes after record")
	ErrTruncatedInput            = LengthError("truncated input")
	ErrUnknownEncoding           = InvalidError("unknown encoding")
	ErrUnknownSemanticType       = InvalidError("unknown semantic type")
	ErrUnknownTypeID             = NotFoundError("unknown type id")
	ErrUnsupportedVersion        = InvalidError("unsupported version")
	ErrWrongFamily               = NotFoundError("type id belongs to a different family")
	ErrWrongHumanReadablePart    = InvalidError("wrong human readable part")
	ErrWrongNetwork              = InvalidError("wrong network")
	ErrWrongSignatureLength      = LengthError("wrong signature length")
	ErrWrongSignerCount          = InvalidError("credential signature count does not match signer count")
	ErrWrongTransactionType      = NotFoundError("wrong transaction type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e PolicyError) Error() string   { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrPolicy(e error) bool   { var x PolicyError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
