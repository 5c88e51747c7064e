// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/formatting"
)

type addressForms struct {
	Hex    string `json:"hex"`
	CB58   string `json:"cb58"`
	Bech32 string `json:"bech32"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	text := c.String("address")
	if "" == text {
		return fmt.Errorf("address is required")
	}

	forms, err := convertAddress(m.codec, text)
	if nil != err {
		return err
	}

	return m.print(forms)
}

func convertAddress(codec *formatting.Codec, text string) (*addressForms, error) {
	a, err := address.Parse(text, codec)
	if nil != err {
		return nil, err
	}

	hexForm, err := codec.Encode(a[:], formatting.Hex, formatting.Bech32, address.Length)
	if nil != err {
		return nil, err
	}
	bech32Form, err := a.Bech32(codec)
	if nil != err {
		return nil, err
	}

	return &addressForms{
		Hex:    hexForm,
		CB58:   a.String(),
		Bech32: bech32Form,
	}, nil
}
