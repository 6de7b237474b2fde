// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/txfactory/fault"
)

// TagType - type code for transactions
type TagType uint64

// names that cannot be used for schema entries
const (
	TypeTagName    = "tx_type"
	VersionTagName = "version"
	BodyTypeName   = "type"

	// conventional prefix for alias entry names
	DuplicatePrefix = "duplicate_"
)

// Entry - one position in the byte layout of a schema
//
// either a primary field with a codec, or an alias of a primary field
type Entry struct {
	name   string
	codec  Codec
	target string
}

// Primary - a field holding its own value
func Primary(name string, codec Codec) Entry {
	return Entry{
		name:  name,
		codec: codec,
	}
}

// Alias - re-emit the value of the primary field "target" at this
// position using the target's codec
func Alias(name string, target string) Entry {
	return Entry{
		name:   name,
		target: target,
	}
}

// Duplicate - alias named by the conventional prefix
//
// e.g. Duplicate("timestamp") is Alias("duplicate_timestamp", "timestamp"),
// the target is the whole name so Duplicate("fee_asset") re-emits
// "fee_asset".  Primary fields cannot use the prefix
func Duplicate(target string) Entry {
	return Alias(DuplicatePrefix+target, target)
}

// Name - the entry name
func (entry Entry) Name() string {
	return entry.name
}

// IsAlias - true for alias entries
func (entry Entry) IsAlias() bool {
	return "" != entry.target
}

// Target - name of the aliased primary field, empty for a primary
func (entry Entry) Target() string {
	return entry.target
}

// resolved entry: slot is the index of the value in a record, for an
// alias this is the slot of its target
type field struct {
	name  string
	codec Codec
	slot  int
	alias bool
}

// Schema - immutable ordered layout of one transaction type and version
type Schema struct {
	txType  TagType
	version uint64
	fields  []field
	slots   []string       // primary names in slot order
	index   map[string]int // entry name → position in fields
}

// NewSchema - resolve a list of entries into a schema
func NewSchema(txType TagType, version uint64, entries ...Entry) (*Schema, error) {
	schema := &Schema{
		txType:  txType,
		version: version,
		fields:  make([]field, 0, len(entries)),
		slots:   make([]string, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	primaries := make(map[string]int, len(entries))

	// first pass: primary fields get value slots
	for _, entry := range entries {
		if err := checkName(entry.name); nil != err {
			return nil, err
		}
		if _, ok := schema.index[entry.name]; ok {
			return nil, &fault.FieldError{Field: entry.name, Err: fault.ErrDuplicateFieldName}
		}
		schema.index[entry.name] = len(schema.fields)

		f := field{
			name:  entry.name,
			codec: entry.codec,
			alias: entry.IsAlias(),
		}
		if !f.alias {
			if strings.HasPrefix(entry.name, DuplicatePrefix) {
				return nil, &fault.FieldError{Field: entry.name, Err: fault.ErrReservedFieldName}
			}
			if nil == entry.codec {
				return nil, &fault.FieldError{Field: entry.name, Err: fault.ErrMissingCodec}
			}
			f.slot = len(schema.slots)
			primaries[entry.name] = f.slot
			schema.slots = append(schema.slots, entry.name)
		}
		schema.fields = append(schema.fields, f)
	}

	// second pass: aliases share the slot and codec of their target
	for i, entry := range entries {
		if !entry.IsAlias() {
			continue
		}
		slot, ok := primaries[entry.target]
		if !ok {
			if _, isEntry := schema.index[entry.target]; isEntry {
				return nil, &fault.FieldError{Field: entry.name, Err: fault.ErrAliasOfAlias}
			}
			return nil, &fault.FieldError{Field: entry.name, Err: fault.ErrAliasTargetNotFound}
		}
		schema.fields[i].slot = slot
		schema.fields[i].codec = schema.fields[schema.index[entry.target]].codec
	}

	return schema, nil
}

// MustNewSchema - as NewSchema but panics on error
//
// only for statically declared schemas
func MustNewSchema(txType TagType, version uint64, entries ...Entry) *Schema {
	schema, err := NewSchema(txType, version, entries...)
	if nil != err {
		panic(fmt.Sprintf("schema type: %d version: %d error: %s", txType, version, err))
	}
	return schema
}

func checkName(name string) error {
	switch name {
	case "":
		return fault.ErrEmptyFieldName
	case TypeTagName, VersionTagName, BodyTypeName:
		return &fault.FieldError{Field: name, Err: fault.ErrReservedFieldName}
	}
	return nil
}

// Type - the transaction type tag
func (schema *Schema) Type() TagType {
	return schema.txType
}

// Version - the transaction version tag
func (schema *Schema) Version() uint64 {
	return schema.version
}

// Names - all entry names in layout order
func (schema *Schema) Names() []string {
	names := make([]string, len(schema.fields))
	for i, f := range schema.fields {
		names[i] = f.name
	}
	return names
}

// Fields - primary field names in layout order
func (schema *Schema) Fields() []string {
	fields := make([]string, len(schema.slots))
	copy(fields, schema.slots)
	return fields
}

// Codec - codec used for an entry, aliases report their target's codec
func (schema *Schema) Codec(name string) (Codec, bool) {
	i, ok := schema.index[name]
	if !ok {
		return nil, false
	}
	return schema.fields[i].codec, true
}

// IsAlias - true if the name is an alias entry
func (schema *Schema) IsAlias(name string) bool {
	i, ok := schema.index[name]
	return ok && schema.fields[i].alias
}

// primary slot of a name, false for aliases and unknown names
func (schema *Schema) slot(name string) (int, bool) {
	i, ok := schema.index[name]
	if !ok || schema.fields[i].alias {
		return 0, false
	}
	return schema.fields[i].slot, true
}
