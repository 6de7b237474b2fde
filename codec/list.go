// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/moznion/go-optional"

	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/transactionrecord"
)

// ListField - a sequence of values sharing one codec
type ListField struct {
	presence
	element transactionrecord.Codec
}

// List - unsigned 16 bit count followed by each element
func List(element transactionrecord.Codec, p transactionrecord.Presence) *ListField {
	return &ListField{presence{p}, element}
}

// Validate - every element must be valid
func (f *ListField) Validate(value interface{}) optional.Option[string] {
	return f.check(value, func(v interface{}) error {
		items, err := toList(v)
		if nil != err {
			return err
		}
		for i, item := range items {
			message := f.element.Validate(item)
			if message.IsSome() {
				return fmt.Errorf("index %d: %s", i, message.Unwrap())
			}
		}
		return nil
	})
}

// Encode - count and elements
func (f *ListField) Encode(value interface{}) ([]byte, error) {
	return f.encode(value, []byte{0, 0}, func(v interface{}) ([]byte, error) {
		items, err := toList(v)
		if nil != err {
			return nil, err
		}
		buffer := make([]byte, 2)
		binary.BigEndian.PutUint16(buffer, uint16(len(items)))
		for _, item := range items {
			data, err := f.element.Encode(item)
			if nil != err {
				return nil, err
			}
			buffer = append(buffer, data...)
		}
		return buffer, nil
	})
}

// any slice or array as generic items
func toList(value interface{}) ([]interface{}, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fault.ErrWrongValueType
	}
	if v.Len() > MaxLength {
		return nil, fault.ErrListTooLong
	}
	items := make([]interface{}, v.Len())
	for i := range items {
		items[i] = v.Index(i).Interface()
	}
	return items, nil
}
