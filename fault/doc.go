// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - failure classes for decoding, policy checks and signing
//
// Each failure is a package level value of one class: length,
// invalid, not found, policy, process or exists.  Callers wrap them
// with context and test with errors.Is for the exact failure or with
// the IsErrX functions for the class.
package fault
