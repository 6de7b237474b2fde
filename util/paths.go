// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a configured path such as the log
// directory against the directory of the configuration file
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if the name is a regular file that can be
// read as transaction input or configuration, directories are rejected
func EnsureFileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && !info.IsDir()
}
