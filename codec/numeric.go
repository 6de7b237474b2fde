// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"

	"github.com/moznion/go-optional"

	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/transactionrecord"
)

// IntegerField - fixed size big endian integer
type IntegerField struct {
	presence
	size    int
	minimum int64
	maximum int64
}

// Byte - unsigned 8 bit value
func Byte(p transactionrecord.Presence) *IntegerField {
	return &IntegerField{presence{p}, 1, 0, math.MaxUint8}
}

// Short - signed 16 bit value
func Short(p transactionrecord.Presence) *IntegerField {
	return &IntegerField{presence{p}, 2, math.MinInt16, math.MaxInt16}
}

// Integer - signed 32 bit value
func Integer(p transactionrecord.Presence) *IntegerField {
	return &IntegerField{presence{p}, 4, math.MinInt32, math.MaxInt32}
}

// Long - signed 64 bit value
func Long(p transactionrecord.Presence) *IntegerField {
	return &IntegerField{presence{p}, 8, math.MinInt64, math.MaxInt64}
}

// Size - number of encoded bytes
func (f *IntegerField) Size() int {
	return f.size
}

// Validate - must be an integer within range
func (f *IntegerField) Validate(value interface{}) optional.Option[string] {
	return f.check(value, func(v interface{}) error {
		_, err := f.value(v)
		return err
	})
}

// Encode - big endian bytes
func (f *IntegerField) Encode(value interface{}) ([]byte, error) {
	return f.encode(value, make([]byte, f.size), func(v interface{}) ([]byte, error) {
		n, err := f.value(v)
		if nil != err {
			return nil, err
		}
		buffer := make([]byte, 8)
		binary.BigEndian.PutUint64(buffer, uint64(n))
		return buffer[8-f.size:], nil
	})
}

// convert and range check
func (f *IntegerField) value(value interface{}) (int64, error) {
	n, err := toInt64(value)
	if nil != err {
		return 0, err
	}
	if n < f.minimum || n > f.maximum {
		return 0, fault.ErrValueOutOfRange
	}
	return n, nil
}

// convert any Go or JSON number to int64
func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case json.Number:
		return parseInt64(string(v))
	case string:
		return parseInt64(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fault.ErrValueOutOfRange
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, fault.ErrNotIntegral
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fault.ErrValueOutOfRange
		}
		return int64(f), nil
	}
	return 0, fault.ErrWrongValueType
}

// decimal text, as large values are sent to avoid float rounding
func parseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil == err {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fault.ErrValueOutOfRange
	}
	return 0, fault.ErrNotIntegral
}

// BoolField - single byte 0 or 1
type BoolField struct {
	presence
}

// Bool - boolean flag
func Bool(p transactionrecord.Presence) *BoolField {
	return &BoolField{presence{p}}
}

// Validate - must be a bool
func (f *BoolField) Validate(value interface{}) optional.Option[string] {
	return f.check(value, func(v interface{}) error {
		if _, ok := v.(bool); !ok {
			return fault.ErrWrongValueType
		}
		return nil
	})
}

// Encode - 0x00 or 0x01
func (f *BoolField) Encode(value interface{}) ([]byte, error) {
	return f.encode(value, []byte{0}, func(v interface{}) ([]byte, error) {
		b, ok := v.(bool)
		if !ok {
			return nil, fault.ErrWrongValueType
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	})
}
