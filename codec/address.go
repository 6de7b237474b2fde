// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/moznion/go-optional"

	"github.com/bitmark-inc/txfactory/account"
	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/transactionrecord"
)

// RecipientField - an address or an alias of one network
type RecipientField struct {
	presence
	networkByte byte
}

// Recipient - Base58 address as its 26 bytes, or an "alias:N:name"
// as its alias bytes
func Recipient(networkByte byte, p transactionrecord.Presence) *RecipientField {
	return &RecipientField{presence{p}, networkByte}
}

// Validate - must be an address or alias of the network
func (f *RecipientField) Validate(value interface{}) optional.Option[string] {
	return f.check(value, func(v interface{}) error {
		_, err := f.bytes(v)
		return err
	})
}

// Encode - address or alias bytes
func (f *RecipientField) Encode(value interface{}) ([]byte, error) {
	return f.encode(value, make([]byte, account.AddressLength), f.bytes)
}

func (f *RecipientField) bytes(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fault.ErrWrongValueType
	}
	if account.IsAlias(s) {
		alias, err := account.AliasFromString(f.networkByte, s)
		if nil != err {
			return nil, err
		}
		return alias.Bytes(), nil
	}
	address, err := account.AddressFromBase58(f.networkByte, s)
	if nil != err {
		return nil, err
	}
	return address.Bytes(), nil
}

// AliasField - a new alias name
type AliasField struct {
	presence
	networkByte byte
}

// Alias - alias bytes preceded by their unsigned 16 bit length
func Alias(networkByte byte, p transactionrecord.Presence) *AliasField {
	return &AliasField{presence{p}, networkByte}
}

// Validate - must be a well formed alias name
func (f *AliasField) Validate(value interface{}) optional.Option[string] {
	return f.check(value, func(v interface{}) error {
		_, err := f.bytes(v)
		return err
	})
}

// Encode - length prefixed alias bytes
func (f *AliasField) Encode(value interface{}) ([]byte, error) {
	return f.encode(value, []byte{0, 0}, func(v interface{}) ([]byte, error) {
		data, err := f.bytes(v)
		if nil != err {
			return nil, err
		}
		return withLength(data)
	})
}

func (f *AliasField) bytes(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fault.ErrWrongValueType
	}
	alias, err := account.AliasFromString(f.networkByte, s)
	if nil != err {
		return nil, err
	}
	return alias.Bytes(), nil
}
