// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Transaction signature bytes program
//
// This program reads a JSON transaction of the form:
//
//   {"type": 4, "version": 3, "senderPublicKey": "…", …}
//
// looks up the schema of the type and version, validates the fields
// and prints the canonical bytes to be signed, the transaction id or
// the body of the record.
package main
