// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/chain4travel/caminotx/formatting"
	"github.com/chain4travel/caminotx/ownership"
	"github.com/chain4travel/caminotx/signer"
)

type resolvedSigner struct {
	Source   string `json:"source"`
	Position uint32 `json:"position"`
}

type resolvedPolicy struct {
	Threshold  uint32           `json:"threshold"`
	Signers    []resolvedSigner `json:"signers"`
	SigIndices []uint32         `json:"sigIndices"`
}

func runResolve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("owners")
	if "" == fileName {
		return fmt.Errorf("owners file is required")
	}

	owners, err := readOwnersFile(fileName, m.codec)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner policies: %d\n", len(owners))
	}

	resolved, err := resolveOwners(m.resolver, m.codec, owners)
	if nil != err {
		return err
	}

	return m.print(resolved)
}

func resolveOwners(resolver *signer.Resolver, codec *formatting.Codec, owners []ownership.Policy) ([]resolvedPolicy, error) {
	all, err := resolver.ResolveAll(owners)
	if nil != err {
		return nil, err
	}

	resolved := make([]resolvedPolicy, len(owners))
	for i, signers := range all {
		r := resolvedPolicy{
			Threshold:  owners[i].Threshold,
			Signers:    make([]resolvedSigner, len(signers)),
			SigIndices: signer.SigIndices(owners[i], signers),
		}
		for j, s := range signers {
			source, err := s.Source.Bech32(codec)
			if nil != err {
				return nil, err
			}
			r.Signers[j] = resolvedSigner{
				Source:   source,
				Position: s.Position,
			}
		}
		resolved[i] = r
	}
	return resolved, nil
}
