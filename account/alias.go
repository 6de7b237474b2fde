// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"
	"strings"

	"github.com/bitmark-inc/txfactory/fault"
)

// alias limits
const (
	AliasVersion   = 2
	MinAliasLength = 4
	MaxAliasLength = 30

	aliasPrefix   = "alias:"
	aliasAlphabet = "-.0123456789@_abcdefghijklmnopqrstuvwxyz"
)

// Alias - a human readable name bound to an address on one network
type Alias struct {
	NetworkByte byte
	Name        string
}

// AliasFromString - parse either a bare alias name or the
// "alias:N:name" form where N is the network byte as a character
func AliasFromString(networkByte byte, s string) (*Alias, error) {
	name := s
	if strings.HasPrefix(s, aliasPrefix) {
		rest := s[len(aliasPrefix):]
		if len(rest) < 2 || ':' != rest[1] {
			return nil, fault.ErrInvalidAliasName
		}
		if networkByte != rest[0] {
			return nil, fault.ErrWrongNetworkForAddress
		}
		name = rest[2:]
	}

	if len(name) < MinAliasLength || len(name) > MaxAliasLength {
		return nil, fault.ErrInvalidAliasName
	}
	for _, c := range name {
		if !strings.ContainsRune(aliasAlphabet, c) {
			return nil, fault.ErrInvalidAliasName
		}
	}

	return &Alias{
		NetworkByte: networkByte,
		Name:        name,
	}, nil
}

// IsAlias - true if the string uses the "alias:" prefix
func IsAlias(s string) bool {
	return strings.HasPrefix(s, aliasPrefix)
}

// Bytes - version, network byte, uint16 length, name
func (alias *Alias) Bytes() []byte {
	buffer := make([]byte, 4, 4+len(alias.Name))
	buffer[0] = AliasVersion
	buffer[1] = alias.NetworkByte
	binary.BigEndian.PutUint16(buffer[2:], uint16(len(alias.Name)))
	return append(buffer, alias.Name...)
}

// String - the "alias:N:name" form
func (alias *Alias) String() string {
	return aliasPrefix + string([]byte{alias.NetworkByte}) + ":" + alias.Name
}
