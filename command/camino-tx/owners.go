// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chain4travel/caminotx/formatting"
	"github.com/chain4travel/caminotx/ownership"
)

// owners file: a YAML list of policies in display form e.g.
//
//   - locktime: "0"
//     threshold: "1"
//     addresses:
//       - X-kopernikus18jma8ppw3nhx5r4ap8clazz0dps7rv5uuvjh68
func readOwnersFile(fileName string, codec *formatting.Codec) ([]ownership.Policy, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return readOwners(f, codec)
}

func readOwners(handle io.Reader, codec *formatting.Codec) ([]ownership.Policy, error) {
	var serialized []*ownership.Serialized
	if err := yaml.NewDecoder(handle).Decode(&serialized); nil != err {
		return nil, err
	}

	owners := make([]ownership.Policy, len(serialized))
	for i, s := range serialized {
		if nil == s {
			return nil, fmt.Errorf("owners[%d]: empty entry", i)
		}
		p, err := ownership.Deserialize(s, codec, formatting.Display)
		if nil != err {
			return nil, fmt.Errorf("owners[%d]: %w", i, err)
		}
		owners[i] = p
	}
	return owners, nil
}
