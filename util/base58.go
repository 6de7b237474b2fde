// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/txfactory/fault"
)

// FromBase58 - decode a Base58 string
//
// an empty string decodes to an empty slice
func FromBase58(s string) ([]byte, error) {
	if "" == s {
		return []byte{}, nil
	}
	b, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrCannotDecodeBase58
	}
	return b, nil
}

// ToBase58 - encode bytes as a Base58 string
func ToBase58(b []byte) string {
	return base58.Encode(b)
}
