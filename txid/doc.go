// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txid - transaction identifiers
//
// a transaction id is the digest of the canonical signature bytes of
// a transaction, shown as Base58 text
package txid
