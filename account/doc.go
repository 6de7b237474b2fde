// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - public keys, addresses and aliases
//
// an address is derived from a public key and is bound to a single
// network by its network byte:
//
//   byte 0:      address version (1)
//   byte 1:      network byte
//   byte 2..21:  first 20 bytes of secure hash of public key
//   byte 22..25: first 4 bytes of secure hash of bytes 0..21
//
// where secure hash is Keccak-256 of Blake2b-256
package account
