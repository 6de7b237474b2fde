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
	"github.com/bitmark-inc/txfactory/txid"
	"github.com/bitmark-inc/txfactory/util"
)

// Base58Field - Base58 text encoded as its decoded bytes
//
// a positive size fixes the decoded length, otherwise the bytes are
// preceded by an unsigned 16 bit length
type Base58Field struct {
	presence
	size int
}

// Base58 - fixed size binary value
func Base58(size int, p transactionrecord.Presence) *Base58Field {
	return &Base58Field{presence{p}, size}
}

// Base58WithLength - variable size binary value
func Base58WithLength(p transactionrecord.Presence) *Base58Field {
	return &Base58Field{presence{p}, 0}
}

// PublicKey - an account public key
func PublicKey(p transactionrecord.Presence) *Base58Field {
	return Base58(account.PublicKeyLength, p)
}

// AssetId - an asset identifier, i.e. the id of its issue transaction
func AssetId(p transactionrecord.Presence) *Base58Field {
	return Base58(txid.DigestLength, p)
}

// Validate - must decode to the correct length
func (f *Base58Field) Validate(value interface{}) optional.Option[string] {
	return f.check(value, func(v interface{}) error {
		_, err := f.bytes(v)
		return err
	})
}

// Encode - the decoded bytes
func (f *Base58Field) Encode(value interface{}) ([]byte, error) {
	zero := make([]byte, f.size)
	if 0 == f.size {
		zero = []byte{0, 0}
	}
	return f.encode(value, zero, func(v interface{}) ([]byte, error) {
		data, err := f.bytes(v)
		if nil != err {
			return nil, err
		}
		if 0 == f.size {
			return withLength(data)
		}
		return data, nil
	})
}

func (f *Base58Field) bytes(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fault.ErrWrongValueType
	}
	data, err := util.FromBase58(s)
	if nil != err {
		return nil, err
	}
	if f.size > 0 && f.size != len(data) {
		return nil, fault.ErrInvalidLength
	}
	if 0 == f.size && len(data) > MaxLength {
		return nil, fault.ErrStringTooLong
	}
	return data, nil
}
