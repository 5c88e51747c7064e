// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signer

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/keychain"
	"github.com/chain4travel/caminotx/ownership"
)

// MaxSignatures - ceiling on addresses visited and on alias depth
// during one resolution
const MaxSignatures = 256

// SignerIndex - one signature to produce
//
// Position is the index of the signature within the credential
type SignerIndex struct {
	Source   address.ShortID `json:"source"`
	Position uint32          `json:"position"`
}

// Resolver - resolves policies against aliases and controlled keys
//
// holds no state between calls so is safe for concurrent use as long
// as the alias map and keychain are not modified
type Resolver struct {
	log     *logger.L
	aliases ownership.AliasMap
	keys    keychain.Keychain
}

// one policy being scanned
type frame struct {
	policy            ownership.Policy
	alias             address.ShortID
	isAlias           bool
	cursor            int
	satisfied         uint32
	checkpoint        int
	ancestorSatisfied bool
}

func (f *frame) thresholdReached() bool {
	return f.satisfied >= f.policy.Threshold
}

// New - create a resolver
func New(log *logger.L, aliases ownership.AliasMap, keys keychain.Keychain) *Resolver {
	if nil == aliases {
		aliases = ownership.AliasMap{}
	}
	return &Resolver{
		log:     log,
		aliases: aliases,
		keys:    keys,
	}
}

// Resolve - the signers needed to satisfy one top-level policy
//
// signers are returned in scan order, which is the order the
// signatures must appear in the credential
func (r *Resolver) Resolve(policy ownership.Policy) ([]SignerIndex, error) {
	signers := make([]SignerIndex, 0, policy.Threshold)
	visited := 0

	stack := []*frame{
		{policy: policy},
	}

scan:
	for len(stack) > 0 {
		f := stack[len(stack)-1]

		for f.cursor < len(f.policy.Addresses) {
			addr := f.policy.Addresses[f.cursor]
			f.cursor += 1

			visited += 1
			if visited > MaxSignatures {
				r.log.Warnf("resolve: visited more than: %d addresses", MaxSignatures)
				return nil, fmt.Errorf("%w: visited more than: %d addresses", fault.ErrTooManySignatures, MaxSignatures)
			}

			if inner, ok := r.aliases.Lookup(addr); ok {
				for _, ancestor := range stack {
					if ancestor.isAlias && ancestor.alias == addr {
						r.log.Warnf("resolve: cycle through alias: %s", addr)
						return nil, fmt.Errorf("%w: alias: %s", fault.ErrCyclicPolicy, addr)
					}
				}
				if len(stack) >= MaxSignatures {
					r.log.Warnf("resolve: alias depth exceeds: %d", MaxSignatures)
					return nil, fmt.Errorf("%w: alias depth exceeds: %d", fault.ErrTooManySignatures, MaxSignatures)
				}

				child := &frame{
					policy:            inner,
					alias:             addr,
					isAlias:           true,
					checkpoint:        len(signers),
					ancestorSatisfied: f.ancestorSatisfied || f.thresholdReached(),
				}
				stack = append(stack, child)
				r.log.Debugf("resolve: push alias: %s depth: %d ancestor satisfied: %t", addr, len(stack), child.ancestorSatisfied)
				continue scan
			}

			if f.ancestorSatisfied || f.thresholdReached() {
				continue
			}
			if _, ok := r.keys.Get(addr); !ok {
				continue
			}
			signers = append(signers, SignerIndex{
				Source:   addr,
				Position: uint32(len(signers)),
			})
			f.satisfied += 1
			r.log.Tracef("resolve: signer: %s position: %d", addr, len(signers)-1)
		}

		// addresses exhausted
		stack = stack[:len(stack)-1]

		if !f.thresholdReached() {
			if 0 == len(stack) {
				r.log.Warnf("resolve: satisfied: %d of threshold: %d", f.satisfied, f.policy.Threshold)
				return nil, fmt.Errorf("%w: have: %d need: %d", fault.ErrInsufficientSignatures, f.satisfied, f.policy.Threshold)
			}
			r.log.Debugf("resolve: pop unsatisfied alias: %s rollback to: %d", f.alias, f.checkpoint)
			signers = signers[:f.checkpoint]
			continue
		}

		if len(stack) > 0 {
			stack[len(stack)-1].satisfied += 1
			r.log.Debugf("resolve: pop satisfied alias: %s", f.alias)
		}
	}

	return signers, nil
}

// ResolveAll - signers for each policy in order, all or nothing
func (r *Resolver) ResolveAll(policies []ownership.Policy) ([][]SignerIndex, error) {
	result := make([][]SignerIndex, len(policies))
	for i, p := range policies {
		signers, err := r.Resolve(p)
		if nil != err {
			return nil, fmt.Errorf("policy[%d]: %w", i, err)
		}
		result[i] = signers
	}
	return result, nil
}

// SigIndices - owner positions of signers that are direct members of
// the policy, as carried by a spending input
//
// signers reached through an alias are not direct members and are
// skipped
func SigIndices(policy ownership.Policy, signers []SignerIndex) []uint32 {
	indices := make([]uint32, 0, len(signers))
	for _, s := range signers {
		if index, ok := policy.IndexOf(s.Source); ok {
			indices = append(indices, index)
		}
	}
	return indices
}
