// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/txfactory/transactionrecord"
	"github.com/bitmark-inc/txfactory/util"
)

// a transaction as read from JSON
type transaction struct {
	txType  transactionrecord.TagType
	version uint64
	values  map[string]interface{}
}

// decode a JSON object with numeric "type" and "version" keys, all
// numbers are kept as json.Number so large integers are exact
func decodeTransaction(r io.Reader) (*transaction, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	values := make(map[string]interface{})
	if err := decoder.Decode(&values); nil != err {
		return nil, err
	}

	txType, err := tagValue(values, transactionrecord.BodyTypeName)
	if nil != err {
		return nil, err
	}
	version, err := tagValue(values, transactionrecord.VersionTagName)
	if nil != err {
		return nil, err
	}

	return &transaction{
		txType:  transactionrecord.TagType(txType),
		version: version,
		values:  values,
	}, nil
}

func tagValue(values map[string]interface{}, key string) (uint64, error) {
	value, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("missing: %q", key)
	}
	n, ok := value.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%q is not a number", key)
	}
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if nil != err {
		return 0, fmt.Errorf("%q is not an unsigned integer: %s", key, n)
	}
	return u, nil
}

// open the file argument, "-" is standard input
func openInput(arguments []string) (io.ReadCloser, error) {
	if 0 == len(arguments) || "" == arguments[0] {
		return nil, fmt.Errorf("missing file name argument")
	}
	name := arguments[0]
	if "-" == name {
		return os.Stdin, nil
	}
	if !util.EnsureFileExists(name) {
		return nil, fmt.Errorf("file: %q does not exist", name)
	}
	f, err := os.Open(name)
	if nil != err {
		return nil, err
	}
	return f, nil
}

// read the file argument and create its record
func (p *processor) readRecord(arguments []string) *transactionrecord.Record {
	input, err := openInput(arguments)
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	defer input.Close()

	tx, err := decodeTransaction(input)
	if nil != err {
		exitwithstatus.Message("JSON decode error: %s", err)
	}

	factory, err := p.registry.Lookup(tx.txType, tx.version)
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}

	p.log.Debugf("record type: %d version: %d", tx.txType, tx.version)
	return factory(tx.values)
}
