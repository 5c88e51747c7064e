// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/go-playground/validator/v10"

	"github.com/chain4travel/caminotx/address"
	"github.com/chain4travel/caminotx/chain"
	"github.com/chain4travel/caminotx/fault"
	"github.com/chain4travel/caminotx/formatting"
	"github.com/chain4travel/caminotx/keychain"
	"github.com/chain4travel/caminotx/ownership"
)

// basic defaults (directories and files are relative to the
// directory holding the configuration file)
const (
	defaultChainAlias = "X"

	defaultLogDirectory = "log"
	defaultLogFile      = "camino-tx.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// AliasConfiguration - a multisig alias and the policy behind it
type AliasConfiguration struct {
	Address   string   `gluamapper:"address" json:"address" validate:"required"`
	Threshold uint32   `gluamapper:"threshold" json:"threshold" validate:"min=1"`
	LockTime  uint64   `gluamapper:"locktime" json:"locktime"`
	Members   []string `gluamapper:"members" json:"members" validate:"min=1,max=256,dive,required"`
}

// Configuration - everything the command line tool reads from its file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain" validate:"required,chain"`
	ChainAlias    string               `gluamapper:"chain_alias" json:"chain_alias" validate:"required,alphanum,max=16"`
	Keys          []string             `gluamapper:"keys" json:"-" validate:"dive,startswith=PrivateKey-"`
	Aliases       []AliasConfiguration `gluamapper:"aliases" json:"aliases" validate:"dive"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func newValidator() *validator.Validate {
	validate := validator.New()
	if err := validate.RegisterValidation("chain", func(fl validator.FieldLevel) bool {
		return chain.Valid(fl.Field().String())
	}); nil != err {
		fault.Panicf("register chain validation: %s", err)
	}
	return validate
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the directory holding the file
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: ".",
		Chain:         chain.Local,
		ChainAlias:    defaultChainAlias,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(), // mapper writes into this
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)

	if err := newValidator().Struct(options); nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrInvalidConfiguration, err)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: path: %q is not a valid directory", fault.ErrInvalidConfiguration, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("%w: file: %q is not plain name", fault.ErrInvalidConfiguration, options.Logging.File)
	}
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}
	options.Logging.Directory = filepath.Clean(options.Logging.Directory)

	return options, nil
}

// CreateLogDirectory - the logger requires its directory to exist
func (c *Configuration) CreateLogDirectory() error {
	return os.MkdirAll(c.Logging.Directory, 0700)
}

// Network - parameters of the configured chain
func (c *Configuration) Network() chain.Network {
	n, err := chain.Lookup(c.Chain)
	if nil != err {
		fault.Panicf("configuration was not validated: chain: %q", c.Chain)
	}
	return n
}

// Codec - human readable codec for the configured chain
func (c *Configuration) Codec() *formatting.Codec {
	return formatting.New(c.Network().HRP, c.ChainAlias)
}

// Keyring - the configured signing keys
func (c *Configuration) Keyring() (*keychain.Keyring, error) {
	kr := keychain.NewKeyring()
	for i, s := range c.Keys {
		k, err := keychain.ParsePrivateKey(s)
		if nil != err {
			return nil, fmt.Errorf("keys[%d]: %w", i, err)
		}
		kr.Add(k)
	}
	return kr, nil
}

// AliasMap - the configured multisig aliases
func (c *Configuration) AliasMap() (ownership.AliasMap, error) {
	codec := c.Codec()
	aliases := ownership.AliasMap{}
	for i, a := range c.Aliases {
		alias, err := address.Parse(a.Address, codec)
		if nil != err {
			return nil, fmt.Errorf("aliases[%d]: %w", i, err)
		}
		members := make([]address.ShortID, len(a.Members))
		for j, m := range a.Members {
			members[j], err = address.Parse(m, codec)
			if nil != err {
				return nil, fmt.Errorf("aliases[%d].members[%d]: %w", i, j, err)
			}
		}
		policy, err := ownership.New(members, a.Threshold, a.LockTime)
		if nil != err {
			return nil, fmt.Errorf("aliases[%d]: %w", i, err)
		}
		if err := aliases.Add(alias, policy); nil != err {
			return nil, fmt.Errorf("aliases[%d]: %w", i, err)
		}
	}
	return aliases, nil
}
