// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/txfactory/fault"
)

// keys of the pass-through values
const (
	IdName     = "id"
	ProofsName = "proofs"
)

// Record - the values of one transaction prior to encoding
//
// the record is not safe for concurrent mutation, but any number of
// goroutines may encode or validate it while it is not being changed
type Record struct {
	schema *Schema
	values []interface{}          // primary values by schema slot
	extra  map[string]interface{} // keys unknown to the schema

	Id     string
	Proofs []string
}

// Factory - creates records of a single schema
type Factory func(values map[string]interface{}) *Record

// CreateFactory - factory for records of a schema
func CreateFactory(schema *Schema) Factory {
	return func(values map[string]interface{}) *Record {
		return New(schema, values)
	}
}

// New - create a record from schema defaults and caller values
//
// the type and version always come from the schema, the reserved
// keys are ignored if present in values.  Any other key that is not a
// primary field, the empty key included, is kept as an extra value
func New(schema *Schema, values map[string]interface{}) *Record {
	record := &Record{
		schema: schema,
		values: make([]interface{}, len(schema.slots)),
		extra:  make(map[string]interface{}),
	}

	for _, f := range schema.fields {
		if f.alias {
			continue
		}
		if d, ok := f.codec.(Defaulter); ok {
			record.values[f.slot] = d.Default()
		}
	}

	for key, value := range values {
		switch key {
		case TypeTagName, VersionTagName, BodyTypeName:
			continue
		case IdName:
			if s, ok := value.(string); ok {
				record.Id = s
				continue
			}
		case ProofsName:
			if proofs, ok := toStrings(value); ok {
				record.Proofs = proofs
				continue
			}
		}
		if slot, ok := schema.slot(key); ok {
			record.values[slot] = value
			continue
		}
		record.extra[key] = value
	}

	return record
}

// convert a JSON style list into strings
func toStrings(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			result[i] = s
		}
		return result, true
	}
	return nil, false
}

// Schema - the schema of the record
func (record *Record) Schema() *Schema {
	return record.schema
}

// Type - transaction type from the schema
func (record *Record) Type() TagType {
	return record.schema.txType
}

// Version - transaction version from the schema
func (record *Record) Version() uint64 {
	return record.schema.version
}

// Get - value of a field
//
// an alias returns the value of its target, unknown names are looked
// up in the extra values
func (record *Record) Get(name string) (interface{}, bool) {
	if i, ok := record.schema.index[name]; ok {
		return record.values[record.schema.fields[i].slot], true
	}
	value, ok := record.extra[name]
	return value, ok
}

// Set - assign a field
//
// names that are not primary fields of the schema, aliases included,
// are kept as extra values which are never encoded or validated
func (record *Record) Set(name string, value interface{}) error {
	if err := checkName(name); nil != err {
		return err
	}
	if slot, ok := record.schema.slot(name); ok {
		record.values[slot] = value
		return nil
	}
	record.extra[name] = value
	return nil
}

// Extra - copy of the values unknown to the schema
func (record *Record) Extra() map[string]interface{} {
	extra := make(map[string]interface{}, len(record.extra))
	for k, v := range record.extra {
		extra[k] = v
	}
	return extra
}

// Errors - validation messages of all primary fields in schema order
//
// aliases are never validated, only their target
func (record *Record) Errors() []string {
	errors := []string{}
	for _, f := range record.schema.fields {
		if f.alias {
			continue
		}
		message := f.codec.Validate(record.values[f.slot])
		if message.IsSome() {
			errors = append(errors, f.name+": "+message.Unwrap())
		}
	}
	return errors
}

// IsValid - true if there are no validation errors
func (record *Record) IsValid() bool {
	return 0 == len(record.Errors())
}

// validation errors as a single error
func (record *Record) validationError() error {
	errors := record.Errors()
	if 0 == len(errors) {
		return nil
	}
	return fault.ValidationError(errors)
}
