// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txfactory/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/etc/txfactory/log", util.EnsureAbsolute("/etc/txfactory", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/etc/txfactory", "/var/log/"), "absolute")
	assert.Equal(t, "/etc/log", util.EnsureAbsolute("/etc/txfactory", "../log"), "cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "tx.json")
	assert.False(t, util.EnsureFileExists(name), "missing")

	assert.Nil(t, ioutil.WriteFile(name, []byte("{}"), 0600), "write")
	assert.True(t, util.EnsureFileExists(name), "exists")
	assert.False(t, util.EnsureFileExists(dir), "directory")
}
