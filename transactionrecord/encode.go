// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/chebyrash/promise"

	"github.com/bitmark-inc/txfactory/fault"
)

// presence bytes of Optional fields
const (
	absentByte  = 0x00
	presentByte = 0x01
)

// Packed - canonical signature bytes of a record
type Packed []byte

// IdFunc - derive a transaction id from signature bytes
type IdFunc func(data []byte) (string, error)

// result of encoding one entry
type chunk struct {
	data []byte
	err  error
}

// Encode - the canonical signature bytes
//
// all fields are validated first and nothing is encoded if any field
// is invalid.  Entries are encoded concurrently and concatenated in
// schema order, a codec error fails the whole encode and is reported
// for the first failing entry in schema order
func (record *Record) Encode(ctx context.Context) (Packed, error) {
	if err := record.validationError(); nil != err {
		return nil, err
	}
	if err := ctx.Err(); nil != err {
		return nil, err
	}

	fields := record.schema.fields
	if 0 == len(fields) {
		return Packed{}, nil
	}

	promises := make([]*promise.Promise[chunk], len(fields))
	for i, f := range fields {
		codec := f.codec
		value := record.values[f.slot]
		promises[i] = promise.New(func(resolve func(chunk), reject func(error)) {
			defer func() {
				if r := recover(); nil != r {
					resolve(chunk{err: fault.ProcessError(fmt.Sprintf("codec panic: %v", r))})
				}
			}()
			data, err := encodeField(codec, value)
			resolve(chunk{data: data, err: err})
		})
	}

	result, err := promise.All(ctx, promises...).Await(ctx)
	if nil != err {
		return nil, err
	}
	chunks := *result

	size := 0
	for i, c := range chunks {
		if nil != c.err {
			return nil, &fault.FieldError{Field: fields[i].name, Err: c.err}
		}
		size += len(c.data)
	}

	if 1 == len(chunks) {
		return chunks[0].data, nil
	}

	packed := make(Packed, 0, size)
	for _, c := range chunks {
		packed = append(packed, c.data...)
	}
	return packed, nil
}

// bytes of a single entry
func encodeField(codec Codec, value interface{}) ([]byte, error) {
	if Optional != codec.Presence() {
		return codec.Encode(value)
	}

	if IsAbsent(value) {
		return []byte{absentByte}, nil
	}

	data, err := codec.Encode(value)
	if nil != err {
		return nil, err
	}
	buffer := make([]byte, 0, 1+len(data))
	buffer = append(buffer, presentByte)
	return append(buffer, data...), nil
}

// MakeId - encode the record and derive its id
func (record *Record) MakeId(ctx context.Context, idFunc IdFunc) (string, error) {
	packed, err := record.Encode(ctx)
	if nil != err {
		return "", err
	}
	return idFunc(packed)
}

// Int8s - the bytes as signed values, as returned to JavaScript clients
func (packed Packed) Int8s() []int8 {
	result := make([]int8, len(packed))
	for i, b := range packed {
		result[i] = int8(b)
	}
	return result
}

// MarshalText - convert packed bytes to hex text
func (packed Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(packed))
	b := make([]byte, size)
	hex.Encode(b, packed)
	return b, nil
}

// UnmarshalText - convert hex text to packed bytes
func (packed *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*packed = make([]byte, size)
	_, err := hex.Decode(*packed, s)
	return err
}
