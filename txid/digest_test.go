// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txid_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/txid"
	"github.com/bitmark-inc/txfactory/util"
)

func TestNewDigest(t *testing.T) {
	data := []byte("signature bytes")

	d, err := txid.NewDigest(txid.Blake2b256, data)
	assert.Nil(t, err, "blake2b error")
	assert.Equal(t, txid.Digest(blake2b.Sum256(data)), d, "wrong blake2b digest")

	d, err = txid.NewDigest("", data)
	assert.Nil(t, err, "default error")
	assert.Equal(t, txid.Digest(blake2b.Sum256(data)), d, "wrong default digest")

	d, err = txid.NewDigest(txid.SHA3256, data)
	assert.Nil(t, err, "sha3 error")
	assert.Equal(t, txid.Digest(sha3.Sum256(data)), d, "wrong sha3 digest")

	_, err = txid.NewDigest("md5", data)
	assert.Equal(t, fault.ErrUnknownIdentifierAlgorithm, err, "unknown algorithm accepted")

	assert.True(t, txid.ValidAlgorithm(txid.SHA3256), "sha3 not valid")
	assert.False(t, txid.ValidAlgorithm("md5"), "md5 valid")
}

func TestStringAndText(t *testing.T) {
	d, err := txid.NewDigest(txid.Blake2b256, []byte{1, 2, 3})
	if nil != err {
		t.Fatalf("digest error: %s", err)
	}

	s := fmt.Sprintf("%s", d)
	assert.Equal(t, util.ToBase58(d[:]), s, "wrong string")
	assert.Equal(t, "<txid:"+s+">", fmt.Sprintf("%#v", d), "wrong go string")

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+s+`"`, string(buffer), "wrong JSON")

	var decoded txid.Digest
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, decoded, "wrong decoded digest")

	err = decoded.UnmarshalText([]byte(util.ToBase58([]byte{1, 2, 3})))
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short digest accepted")
}

func TestHasher(t *testing.T) {
	data := []byte("abc")
	expected := blake2b.Sum256(data)

	id, err := txid.Hasher{Algorithm: txid.DefaultAlgorithm}.Identify(data)
	assert.Nil(t, err, "identify error")
	assert.Equal(t, util.ToBase58(expected[:]), id, "wrong id")

	_, err = txid.Hasher{Algorithm: "none"}.Identify(data)
	assert.Equal(t, fault.ErrUnknownIdentifierAlgorithm, err, "unknown algorithm accepted")
}
