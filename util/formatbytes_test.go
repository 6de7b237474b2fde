// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txfactory/util"
)

func TestFormatBytes(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 0xfe, 0xff}

	expected := "expected := []byte{" +
		"\n\t0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, " +
		"\n\t0xfe, 0xff, " +
		"\n}"

	assert.Equal(t, expected, util.FormatBytes("expected", data), "wrong format")
	assert.Equal(t, "empty := []byte{\n}", util.FormatBytes("empty", nil), "wrong empty format")
}
