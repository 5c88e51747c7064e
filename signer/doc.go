// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signer decides which controlled keys must sign to satisfy
// nested multisig ownership policies and produces the credentials
//
// an address in a policy may itself be an alias for another policy;
// a satisfied alias counts as a single satisfied entry of its parent
// and never allocates a signer of its own
package signer
