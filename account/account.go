// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/util"
)

// miscellaneous constants
const (
	AddressVersion  = 1
	AddressLength   = 26
	PublicKeyLength = ed25519.PublicKeySize

	hashLength     = 20
	checksumLength = 4
	checksumStart  = AddressLength - checksumLength
)

// PublicKey - raw public key bytes
type PublicKey []byte

// Address - the binary form of an account address
type Address [AddressLength]byte

// SecureHash - Keccak-256 of Blake2b-256 of data
func SecureHash(data []byte) []byte {
	b := blake2b.Sum256(data)
	k := sha3.NewLegacyKeccak256()
	k.Write(b[:])
	return k.Sum(nil)
}

// PublicKeyFromBase58 - decode and check the length of a public key
func PublicKeyFromBase58(s string) (PublicKey, error) {
	b, err := util.FromBase58(s)
	if nil != err {
		return nil, err
	}
	if PublicKeyLength != len(b) {
		return nil, fault.ErrInvalidKeyLength
	}
	return PublicKey(b), nil
}

// String - Base58 form of the public key
func (publicKey PublicKey) String() string {
	return util.ToBase58(publicKey)
}

// AddressFromPublicKey - compute the address of a public key for a network
func AddressFromPublicKey(networkByte byte, publicKey PublicKey) (Address, error) {
	var address Address
	if PublicKeyLength != len(publicKey) {
		return address, fault.ErrInvalidKeyLength
	}

	address[0] = AddressVersion
	address[1] = networkByte
	copy(address[2:2+hashLength], SecureHash(publicKey))

	checksum := SecureHash(address[:checksumStart])
	copy(address[checksumStart:], checksum[:checksumLength])

	return address, nil
}

// AddressFromBytes - validate a binary address for a network
func AddressFromBytes(networkByte byte, buffer []byte) (Address, error) {
	var address Address
	if AddressLength != len(buffer) {
		return address, fault.ErrInvalidLength
	}
	if AddressVersion != buffer[0] {
		return address, fault.ErrInvalidAddressVersion
	}
	if networkByte != buffer[1] {
		return address, fault.ErrWrongNetworkForAddress
	}

	checksum := SecureHash(buffer[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], buffer[checksumStart:]) {
		return address, fault.ErrChecksumMismatch
	}

	copy(address[:], buffer)
	return address, nil
}

// AddressFromBase58 - decode and validate an address for a network
func AddressFromBase58(networkByte byte, s string) (Address, error) {
	b, err := util.FromBase58(s)
	if nil != err {
		return Address{}, err
	}
	return AddressFromBytes(networkByte, b)
}

// NetworkByte - network the address belongs to
func (address Address) NetworkByte() byte {
	return address[1]
}

// Bytes - binary form of address
func (address Address) Bytes() []byte {
	return address[:]
}

// String - Base58 form of address
func (address Address) String() string {
	return util.ToBase58(address[:])
}

// MarshalText - convert an address to its Base58 JSON form
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}
