// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"unicode/utf8"

	"github.com/moznion/go-optional"

	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/transactionrecord"
)

// StringField - UTF-8 text, optionally length prefixed
type StringField struct {
	presence
	prefixed bool
}

// String - raw UTF-8 bytes
func String(p transactionrecord.Presence) *StringField {
	return &StringField{presence{p}, false}
}

// StringWithLength - unsigned 16 bit length followed by UTF-8 bytes
func StringWithLength(p transactionrecord.Presence) *StringField {
	return &StringField{presence{p}, true}
}

// Validate - must be valid UTF-8 and fit the length prefix
func (f *StringField) Validate(value interface{}) optional.Option[string] {
	return f.check(value, func(v interface{}) error {
		_, err := f.bytes(v)
		return err
	})
}

// Encode - the text bytes
func (f *StringField) Encode(value interface{}) ([]byte, error) {
	zero := []byte{}
	if f.prefixed {
		zero = []byte{0, 0}
	}
	return f.encode(value, zero, func(v interface{}) ([]byte, error) {
		data, err := f.bytes(v)
		if nil != err {
			return nil, err
		}
		if f.prefixed {
			return withLength(data)
		}
		return data, nil
	})
}

func (f *StringField) bytes(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fault.ErrWrongValueType
	}
	if !utf8.ValidString(s) {
		return nil, fault.ErrInvalidValue
	}
	if f.prefixed && len(s) > MaxLength {
		return nil, fault.ErrStringTooLong
	}
	return []byte(s), nil
}
