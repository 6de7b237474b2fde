// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txfactory/codec"
	"github.com/bitmark-inc/txfactory/fault"
)

func TestIntegerEncode(t *testing.T) {
	tests := []struct {
		name     string
		field    *codec.IntegerField
		value    interface{}
		expected []byte
	}{
		{"byte", codec.Byte(codec.Required), 255, []byte{0xff}},
		{"short", codec.Short(codec.Required), 258, []byte{0x01, 0x02}},
		{"negative short", codec.Short(codec.Required), -1, []byte{0xff, 0xff}},
		{"integer", codec.Integer(codec.Required), int32(1), []byte{0, 0, 0, 1}},
		{"long", codec.Long(codec.Required), 100, []byte{0, 0, 0, 0, 0, 0, 0, 100}},
		{"long float", codec.Long(codec.Required), float64(100000000), []byte{0, 0, 0, 0, 0x05, 0xf5, 0xe1, 0x00}},
		{"long json number", codec.Long(codec.Required), json.Number("256"), []byte{0, 0, 0, 0, 0, 0, 1, 0}},
		{"long string", codec.Long(codec.Required), "9223372036854775807", []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"long unsigned", codec.Long(codec.Required), uint8(7), []byte{0, 0, 0, 0, 0, 0, 0, 7}},
		{"nullable nil", codec.Long(codec.Nullable), nil, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, test := range tests {
		actual, err := test.field.Encode(test.value)
		assert.Nil(t, err, test.name)
		assert.Equal(t, test.expected, actual, test.name)
		assert.Equal(t, test.field.Size(), len(actual), test.name)
	}
}

func TestIntegerEncodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		field    *codec.IntegerField
		value    interface{}
		expected error
	}{
		{"required nil", codec.Long(codec.Required), nil, fault.ErrValueRequired},
		{"byte overflow", codec.Byte(codec.Required), 256, fault.ErrValueOutOfRange},
		{"byte negative", codec.Byte(codec.Required), -1, fault.ErrValueOutOfRange},
		{"short overflow", codec.Short(codec.Required), math.MaxInt16 + 1, fault.ErrValueOutOfRange},
		{"fraction", codec.Long(codec.Required), 1.5, fault.ErrNotIntegral},
		{"nan", codec.Long(codec.Required), math.NaN(), fault.ErrNotIntegral},
		{"huge float", codec.Long(codec.Required), 1e19, fault.ErrValueOutOfRange},
		{"huge unsigned", codec.Long(codec.Required), uint64(math.MaxUint64), fault.ErrValueOutOfRange},
		{"text", codec.Long(codec.Required), "ten", fault.ErrNotIntegral},
		{"huge text", codec.Long(codec.Required), "9223372036854775808", fault.ErrValueOutOfRange},
		{"wrong type", codec.Long(codec.Required), []int{1}, fault.ErrWrongValueType},
	}

	for _, test := range tests {
		_, err := test.field.Encode(test.value)
		assert.Equal(t, test.expected, err, test.name)
	}
}

func TestIntegerValidate(t *testing.T) {
	required := codec.Long(codec.Required)
	assert.True(t, required.Validate(nil).IsSome(), "required nil")
	assert.Equal(t, "value is required", required.Validate(nil).Unwrap(), "message")
	assert.False(t, required.Validate(0).IsSome(), "zero is a value")
	assert.Equal(t, fault.ErrNotIntegral.Error(), required.Validate(0.25).Unwrap(), "fraction")

	nullable := codec.Long(codec.Nullable)
	assert.False(t, nullable.Validate(nil).IsSome(), "nullable nil")

	optional := codec.Byte(codec.Optional)
	assert.False(t, optional.Validate(nil).IsSome(), "optional nil")
	assert.False(t, optional.Validate(0).IsSome(), "optional zero")
	assert.True(t, optional.Validate(1000).IsSome(), "optional out of range")
}

func TestBool(t *testing.T) {
	field := codec.Bool(codec.Required)

	b, err := field.Encode(true)
	assert.Nil(t, err, "true")
	assert.Equal(t, []byte{1}, b, "true bytes")

	b, err = field.Encode(false)
	assert.Nil(t, err, "false")
	assert.Equal(t, []byte{0}, b, "false bytes")

	_, err = field.Encode("true")
	assert.Equal(t, fault.ErrWrongValueType, err, "wrong type")
	assert.True(t, field.Validate(1).IsSome(), "number is not a bool")
	assert.False(t, field.Validate(false).IsSome(), "false is a value")
}
