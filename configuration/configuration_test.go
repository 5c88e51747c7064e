// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chain4travel/caminotx/chain"
	"github.com/chain4travel/caminotx/configuration"
	"github.com/chain4travel/caminotx/fault"
)

const validConfiguration = `
local M = {}

M.chain = "Kopernikus"
M.chain_alias = "X"

M.keys = {
    "PrivateKey-ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN",
}

M.aliases = {
    {
        address = "X-kopernikus1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5qsvruj",
        threshold = 1,
        locktime = 1700000000,
        members = {
            "X-kopernikus18jma8ppw3nhx5r4ap8clazz0dps7rv5uuvjh68",
            "0x751e76e8199196d454941c45d1b3a323f1433bd6",
        },
    },
}

M.logging = {
    directory = "log",
    file = "test.log",
    size = 4096,
    count = 2,
    console = false,
    levels = {
        DEFAULT = "info",
        resolver = "debug",
    },
}

return M
`

func writeConfiguration(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "camino-tx.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600))
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, validConfiguration)

	c, err := configuration.GetConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, chain.Kopernikus, c.Chain)
	assert.Equal(t, uint32(1002), c.Network().ID)
	assert.Equal(t, "kopernikus", c.Codec().HRP)
	assert.Equal(t, "X", c.Codec().ChainAlias)

	assert.Equal(t, filepath.Dir(fileName), c.DataDirectory)
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "log"), c.Logging.Directory)
	assert.Equal(t, "test.log", c.Logging.File)
	assert.Equal(t, 2, c.Logging.Count)
	assert.Equal(t, "debug", c.Logging.Levels["resolver"])
	require.NoError(t, c.CreateLogDirectory())

	kr, err := c.Keyring()
	require.NoError(t, err)
	assert.Equal(t, 1, kr.Len())

	aliases, err := c.AliasMap()
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	for alias, policy := range aliases {
		assert.Equal(t, byte(0x01), alias[0])
		assert.Equal(t, uint32(1), policy.Threshold)
		assert.Equal(t, uint64(1700000000), policy.LockTime)
		require.Len(t, policy.Addresses, 2)
		assert.Equal(t, byte(0x3c), policy.Addresses[0][0])
		assert.Equal(t, byte(0x75), policy.Addresses[1][0])
	}
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, "return {}")

	c, err := configuration.GetConfiguration(fileName)
	require.NoError(t, err)
	assert.Equal(t, chain.Local, c.Chain)
	assert.Equal(t, "X", c.ChainAlias)
	assert.Equal(t, "camino-tx.log", c.Logging.File)
	assert.Empty(t, c.Keys)

	aliases, err := c.AliasMap()
	require.NoError(t, err)
	assert.Empty(t, aliases)
}

func TestGetConfigurationInvalid(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{`return { chain = "moon" }`, fault.ErrInvalidConfiguration},
		{`return { chain_alias = "" }`, fault.ErrInvalidConfiguration},
		{`return { keys = { "ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN" } }`, fault.ErrInvalidConfiguration},
		{`return { aliases = { { address = "x", threshold = 0, members = { "y" } } } }`, fault.ErrInvalidConfiguration},
		{`return { aliases = { { address = "x", threshold = 1, members = {} } } }`, fault.ErrInvalidConfiguration},
		{`return { logging = { file = "a/b.log" } }`, fault.ErrInvalidConfiguration},
		{`return 42`, fault.ErrConfigurationNotTable},
	}

	for i, item := range items {
		_, err := configuration.GetConfiguration(writeConfiguration(t, item.text))
		if !assert.ErrorIs(t, err, item.err) {
			t.Errorf("%d: configuration: %s", i, item.text)
		}
	}
}

func TestAliasMapErrors(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{`return { aliases = { { address = "nonsense", threshold = 1, members = { "0x751e76e8199196d454941c45d1b3a323f1433bd6" } } } }`, nil},
		{`return { aliases = { { address = "0x0101010101010101010101010101010101010101", threshold = 2, members = { "0x751e76e8199196d454941c45d1b3a323f1433bd6" } } } }`, fault.ErrThresholdTooHigh},
		{`return { aliases = {
			{ address = "0x0101010101010101010101010101010101010101", threshold = 1, members = { "0x751e76e8199196d454941c45d1b3a323f1433bd6" } },
			{ address = "0x0101010101010101010101010101010101010101", threshold = 1, members = { "0x751e76e8199196d454941c45d1b3a323f1433bd6" } },
		} }`, fault.ErrDuplicateAlias},
	}

	for i, item := range items {
		c, err := configuration.GetConfiguration(writeConfiguration(t, item.text))
		require.NoError(t, err, "%d", i)

		_, err = c.AliasMap()
		if nil == item.err {
			assert.Error(t, err, "%d", i)
		} else {
			assert.ErrorIs(t, err, item.err, "%d", i)
		}
	}
}

func TestParseConfigurationFileNotStruct(t *testing.T) {
	fileName := writeConfiguration(t, "return {}")

	var notStruct int
	err := configuration.ParseConfigurationFile(fileName, &notStruct)
	assert.ErrorIs(t, err, fault.ErrInvalidStructPointer)

	err = configuration.ParseConfigurationFile(fileName, configuration.Configuration{})
	assert.ErrorIs(t, err, fault.ErrInvalidStructPointer)
}
