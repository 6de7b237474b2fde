// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/moznion/go-optional"
)

// Codec - encoding and validation rules of a single field
type Codec interface {
	Presence() Presence
	Encode(value interface{}) ([]byte, error)
	Validate(value interface{}) optional.Option[string]
}

// Defaulter - optionally implemented by a codec to provide the
// initial value of its field in a new record
type Defaulter interface {
	Default() interface{}
}

// IsAbsent - true if a value counts as missing for an Optional field
//
// nil, false, numeric zero and the empty string are absent; empty but
// non-nil slices and maps are present
func IsAbsent(value interface{}) bool {
	if nil == value {
		return true
	}

	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return "" == v || (nil == err && 0 == f)
	case string:
		return "" == v
	case bool:
		return !v
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return 0 == rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 0 == rv.Uint()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return 0 == f || math.IsNaN(f)
	case reflect.String:
		return "" == rv.String()
	case reflect.Bool:
		return !rv.Bool()
	}
	return false
}
