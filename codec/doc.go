// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - field codecs for transaction schemas
//
// all multi-byte integers are big endian, variable length items are
// preceded by an unsigned 16 bit length.  A nil value fails validation
// for a Required field; for a Nullable field it encodes as the zero
// form of the codec.
package codec
