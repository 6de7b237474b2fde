// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txid

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/util"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Algorithm - name of a digest function
type Algorithm string

// supported algorithms
const (
	Blake2b256 Algorithm = "blake2b-256"
	SHA3256    Algorithm = "sha3-256"

	DefaultAlgorithm = Blake2b256
)

// Digest - type for a digest
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - create a digest from a byte slice
func NewDigest(algorithm Algorithm, record []byte) (Digest, error) {
	switch algorithm {
	case Blake2b256, "":
		return blake2b.Sum256(record), nil
	case SHA3256:
		return sha3.Sum256(record), nil
	default:
		return Digest{}, fault.ErrUnknownIdentifierAlgorithm
	}
}

// ValidAlgorithm - true if the name is a supported algorithm
func ValidAlgorithm(algorithm Algorithm) bool {
	_, err := NewDigest(algorithm, nil)
	return nil == err
}

// String - Base58 form for use by the fmt package (for %s)
func (digest Digest) String() string {
	return util.ToBase58(digest[:])
}

// GoString - for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<txid:" + digest.String() + ">"
}

// MarshalText - convert digest to Base58 text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert Base58 text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	buffer, err := util.FromBase58(string(s))
	if nil != err {
		return err
	}
	return DigestFromBytes(digest, buffer)
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}

// Hasher - derives transaction ids with a fixed algorithm
type Hasher struct {
	Algorithm Algorithm
}

// Identify - the id of a block of signature bytes
//
// the method value is usable as a transactionrecord.IdFunc
func (h Hasher) Identify(data []byte) (string, error) {
	digest, err := NewDigest(h.Algorithm, data)
	if nil != err {
		return "", err
	}
	return digest.String(), nil
}
