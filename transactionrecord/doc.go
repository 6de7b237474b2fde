// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - schema driven transaction records
//
// A Schema is an ordered list of named entries, each either a
// primary field with its own codec or an alias re-emitting the value
// of a primary field at another position.  A Record holds the values
// for one transaction and produces the canonical signature bytes:
//
//   validate all primary fields (aliases are never validated)
//   for each entry in schema order:
//     Required, Nullable: codec bytes
//     Optional:           0x00 if the value is absent
//                         0x01 followed by codec bytes otherwise
//   concatenate in schema order
//
// The reserved transaction type and version tags belong to the schema
// and are not part of the encoded field list.
package transactionrecord
