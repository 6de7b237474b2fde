// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txfactory/codec"
	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/transactionrecord"
)

func permitSchema() *transactionrecord.Schema {
	return transactionrecord.MustNewSchema(102, 1,
		transactionrecord.Primary("target", codec.String(codec.Required)),
		transactionrecord.Primary("timestamp", codec.Long(codec.Required)),
		transactionrecord.Primary("opType", codec.WithDefault(codec.Enum(map[string]byte{"add": 'a', "remove": 'r'}, codec.Required), "add")),
		transactionrecord.Duplicate("timestamp"),
	)
}

func TestNewRecord(t *testing.T) {
	record := transactionrecord.New(permitSchema(), map[string]interface{}{
		"target":    "someone",
		"timestamp": 100,
		"fee":       0,
		"id":        "abc",
		"proofs":    []interface{}{"p1", "p2"},
	})

	assert.Equal(t, transactionrecord.TagType(102), record.Type(), "type")
	assert.Equal(t, uint64(1), record.Version(), "version")
	assert.Equal(t, "abc", record.Id, "id")
	assert.Equal(t, []string{"p1", "p2"}, record.Proofs, "proofs")

	value, ok := record.Get("opType")
	assert.True(t, ok, "default present")
	assert.Equal(t, "add", value, "default value")

	value, ok = record.Get("fee")
	assert.True(t, ok, "extra kept")
	assert.Equal(t, 0, value, "extra value")
	assert.Equal(t, map[string]interface{}{"fee": 0}, record.Extra(), "extra")

	assert.True(t, record.IsValid(), "valid")
}

func TestNewRecordKeepsEmptyKey(t *testing.T) {
	record := transactionrecord.New(permitSchema(), map[string]interface{}{
		"target":    "someone",
		"timestamp": 100,
		"":          "kept",
	})

	value, ok := record.Get("")
	assert.True(t, ok, "empty key kept")
	assert.Equal(t, "kept", value, "empty key value")
	assert.Equal(t, map[string]interface{}{"": "kept"}, record.Extra(), "extra")
	assert.Equal(t, "kept", record.Body()[""], "body")
	assert.True(t, record.IsValid(), "valid")
}

func TestReservedKeysAreIgnored(t *testing.T) {
	record := transactionrecord.New(permitSchema(), map[string]interface{}{
		"tx_type": 4,
		"version": 9,
		"type":    4,
	})

	assert.Equal(t, transactionrecord.TagType(102), record.Type(), "type from schema")
	assert.Equal(t, uint64(1), record.Version(), "version from schema")
	assert.Equal(t, 0, len(record.Extra()), "not kept as extra")

	err := record.Set("version", 3)
	assert.True(t, errors.Is(err, fault.ErrReservedFieldName), "set reserved")
	assert.Equal(t, uint64(1), record.Version(), "version unchanged")
}

func TestAliasReadsTarget(t *testing.T) {
	record := transactionrecord.New(permitSchema(), map[string]interface{}{
		"timestamp":           100,
		"duplicate_timestamp": 200,
	})

	value, ok := record.Get("duplicate_timestamp")
	assert.True(t, ok, "alias")
	assert.Equal(t, 100, value, "target value")
	assert.Equal(t, map[string]interface{}{"duplicate_timestamp": 200}, record.Extra(), "alias assignment is extra")
}

func TestErrorsFollowMutation(t *testing.T) {
	record := transactionrecord.New(permitSchema(), nil)

	assert.Equal(t, []string{"target: value is required", "timestamp: value is required"}, record.Errors(), "missing values")
	assert.False(t, record.IsValid(), "invalid")

	assert.Nil(t, record.Set("target", "someone"), "set target")
	assert.Equal(t, []string{"timestamp: value is required"}, record.Errors(), "one left")
	assert.False(t, record.IsValid(), "still invalid")

	assert.Nil(t, record.Set("timestamp", 5), "set timestamp")
	assert.Equal(t, []string{}, record.Errors(), "empty")
	assert.True(t, record.IsValid(), "valid")

	assert.Nil(t, record.Set("opType", "swap"), "set op type")
	assert.Equal(t, []string{"opType: invalid value"}, record.Errors(), "bad enum")
	assert.False(t, record.IsValid(), "invalid again")
}

func TestErrorsNeverNameAnAlias(t *testing.T) {
	inputs := []map[string]interface{}{
		nil,
		{"timestamp": "bad"},
		{"duplicate_timestamp": "bad"},
		{"timestamp": 1.5, "target": 7},
	}

	for i, values := range inputs {
		for _, e := range transactionrecord.New(permitSchema(), values).Errors() {
			assert.NotContains(t, e, "duplicate_timestamp", "input %d", i)
		}
	}
}

func TestCreateFactory(t *testing.T) {
	factory := transactionrecord.CreateFactory(permitSchema())

	a := factory(map[string]interface{}{"target": "a"})
	b := factory(map[string]interface{}{"target": "b"})

	va, _ := a.Get("target")
	vb, _ := b.Get("target")
	assert.Equal(t, "a", va, "first")
	assert.Equal(t, "b", vb, "second")
	assert.Equal(t, a.Schema(), b.Schema(), "shared schema")
}

func TestBody(t *testing.T) {
	record := transactionrecord.New(permitSchema(), map[string]interface{}{
		"target":    "someone",
		"timestamp": 100,
		"note":      "extra",
		"id":        "abc",
	})

	body := record.Body()
	assert.Equal(t, map[string]interface{}{
		"target":    "someone",
		"timestamp": 100,
		"opType":    "add",
		"note":      "extra",
		"id":        "abc",
		"version":   uint64(1),
		"type":      transactionrecord.TagType(102),
	}, body, "body")
	_, ok := body["tx_type"]
	assert.False(t, ok, "no tx_type")

	text, err := record.MarshalJSON()
	assert.Nil(t, err, "json")
	assert.JSONEq(t, `{"target":"someone","timestamp":100,"opType":"add","note":"extra","id":"abc","version":1,"type":102}`, string(text), "json text")
}
