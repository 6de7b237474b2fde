// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"sort"

	"github.com/moznion/go-optional"

	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/transactionrecord"
)

// EnumField - a name from a fixed set encoded as one byte
type EnumField struct {
	presence
	values map[string]byte
}

// Enum - the map is copied
func Enum(values map[string]byte, p transactionrecord.Presence) *EnumField {
	m := make(map[string]byte, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &EnumField{presence{p}, m}
}

// Names - the accepted names in sorted order
func (f *EnumField) Names() []string {
	names := make([]string, 0, len(f.values))
	for k := range f.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Validate - must be one of the names
func (f *EnumField) Validate(value interface{}) optional.Option[string] {
	return f.check(value, func(v interface{}) error {
		_, err := f.bytes(v)
		return err
	})
}

// Encode - the byte of the name
func (f *EnumField) Encode(value interface{}) ([]byte, error) {
	return f.encode(value, []byte{0}, f.bytes)
}

func (f *EnumField) bytes(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fault.ErrWrongValueType
	}
	b, ok := f.values[s]
	if !ok {
		return nil, fault.ErrInvalidValue
	}
	return []byte{b}, nil
}
