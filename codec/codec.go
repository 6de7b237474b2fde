// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"math"

	"github.com/moznion/go-optional"

	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/transactionrecord"
)

// shorthand for schema declarations
const (
	Required = transactionrecord.Required
	Nullable = transactionrecord.Nullable
	Optional = transactionrecord.Optional
)

// MaxLength - longest variable length item
const MaxLength = math.MaxInt16

// common part of all codecs
type presence struct {
	presence transactionrecord.Presence
}

// Presence - how a missing value is treated
func (p presence) Presence() transactionrecord.Presence {
	return p.presence
}

// validate a value with the presence rules applied first
func (p presence) check(value interface{}, verify func(interface{}) error) optional.Option[string] {
	if nil == value {
		if Required == p.presence {
			return optional.Some(fault.ErrValueRequired.Error())
		}
		return optional.None[string]()
	}
	if Optional == p.presence && transactionrecord.IsAbsent(value) {
		return optional.None[string]()
	}
	if err := verify(value); nil != err {
		return optional.Some(err.Error())
	}
	return optional.None[string]()
}

// encode a value, nil values are only accepted when not Required
func (p presence) encode(value interface{}, zero []byte, encode func(interface{}) ([]byte, error)) ([]byte, error) {
	if nil == value {
		if Required == p.presence {
			return nil, fault.ErrValueRequired
		}
		return zero, nil
	}
	return encode(value)
}

// prefix data with its unsigned 16 bit length
func withLength(data []byte) ([]byte, error) {
	if len(data) > MaxLength {
		return nil, fault.ErrStringTooLong
	}
	buffer := make([]byte, 2, 2+len(data))
	binary.BigEndian.PutUint16(buffer, uint16(len(data)))
	return append(buffer, data...), nil
}

// defaulted - codec with an initial record value
type defaulted struct {
	transactionrecord.Codec
	value interface{}
}

// Default - the initial value
func (d defaulted) Default() interface{} {
	return d.value
}

// WithDefault - give new records an initial value for the field
func WithDefault(codec transactionrecord.Codec, value interface{}) transactionrecord.Codec {
	return defaulted{
		Codec: codec,
		value: value,
	}
}
