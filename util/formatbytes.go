// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// FormatBytes - render bytes as a Go literal
//
// used by the tests to show the generated value of a failed encoding
// so it can be pasted back as the expected value
func FormatBytes(name string, data []byte) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" := []byte{")
	for i, v := range data {
		if 0 == i%8 {
			b.WriteString("\n\t")
		}
		fmt.Fprintf(&b, "0x%02x, ", v)
	}
	b.WriteString("\n}")
	return b.String()
}
