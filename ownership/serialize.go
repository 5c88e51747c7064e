// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/formatting"
	"github.com/chain4travel/caminotx/wire"
)

// Serialized - text form of a policy for persisted unsigned state and
// fixtures
type Serialized struct {
	LockTime  string   `json:"locktime" yaml:"locktime"`
	Threshold string   `json:"threshold" yaml:"threshold"`
	Addresses []string `json:"addresses" yaml:"addresses"`
}

// Serialize - numbers as decimal, addresses as bech32 in Display
// format; everything hex in Hex format
func (p Policy) Serialize(c *formatting.Codec, format formatting.Format) (*Serialized, error) {
	lockTime, err := c.Encode(wire.AppendUint64(nil, p.LockTime), format, formatting.Decimal, wire.Uint64Length)
	if nil != err {
		return nil, err
	}
	threshold, err := c.Encode(wire.AppendUint32(nil, p.Threshold), format, formatting.Decimal, wire.Uint32Length)
	if nil != err {
		return nil, err
	}

	addresses := make([]string, len(p.Addresses))
	for i, a := range p.Addresses {
		addresses[i], err = c.Encode(a[:], format, formatting.Bech32, address.Length)
		if nil != err {
			return nil, err
		}
	}

	return &Serialized{
		LockTime:  lockTime,
		Threshold: threshold,
		Addresses: addresses,
	}, nil
}

// Deserialize - inverse of Serialize
func Deserialize(s *Serialized, c *formatting.Codec, format formatting.Format) (Policy, error) {
	lockTimeBytes, err := c.Decode(s.LockTime, format, formatting.Decimal, wire.Uint64Length)
	if nil != err {
		return Policy{}, err
	}
	thresholdBytes, err := c.Decode(s.Threshold, format, formatting.Decimal, wire.Uint32Length)
	if nil != err {
		return Policy{}, err
	}
	lockTime, err := wire.NewReader(lockTimeBytes, 0).ReadUint64()
	if nil != err {
		return Policy{}, err
	}
	threshold, err := wire.NewReader(thresholdBytes, 0).ReadUint32()
	if nil != err {
		return Policy{}, err
	}

	addresses := make([]address.ShortID, len(s.Addresses))
	for i, text := range s.Addresses {
		b, err := c.Decode(text, format, formatting.Bech32, address.Length)
		if nil != err {
			return Policy{}, err
		}
		addresses[i], err = address.FromBytes(b)
		if nil != err {
			return Policy{}, err
		}
	}

	p := Policy{
		LockTime:  lockTime,
		Threshold: threshold,
		Addresses: addresses,
	}
	if err := p.Verify(); nil != err {
		return Policy{}, err
	}
	return p, nil
}
