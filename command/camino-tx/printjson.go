// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// YAML keeps the JSON field names and text forms by going through
// the JSON encoding first
func printYaml(handle io.Writer, message interface{}) error {

	b, err := json.Marshal(message)
	if nil != err {
		return err
	}

	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()

	var generic interface{}
	if err := decoder.Decode(&generic); nil != err {
		return err
	}

	encoder := yaml.NewEncoder(handle)
	encoder.SetIndent(2)
	if err := encoder.Encode(yamlNumbers(generic)); nil != err {
		return err
	}
	return encoder.Close()
}

// json.Number is a string underneath and would be quoted, integers
// are emitted as plain scalars
func yamlNumbers(value interface{}) interface{} {
	switch v := value.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 64); nil == err {
			return i
		}
		if u, err := strconv.ParseUint(v.String(), 10, 64); nil == err {
			return u
		}
		return v.String()
	case map[string]interface{}:
		for key, item := range v {
			v[key] = yamlNumbers(item)
		}
	case []interface{}:
		for i, item := range v {
			v[i] = yamlNumbers(item)
		}
	}
	return value
}

func (m *metadata) print(message interface{}) error {
	if m.yaml {
		return printYaml(m.w, message)
	}
	return printJson(m.w, message)
}
