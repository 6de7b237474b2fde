// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactions declares the schemas of the supported
// transaction types
//
// every schema depends on the network byte, so the catalogue is
// built for one network at a time and registered into a registry
//
//   reg, err := transactions.NewRegistry(log, 'T')
//   factory, err := reg.Lookup(transactions.TransferTag, 3)
//   record := factory(values)
//   packed, err := record.Encode(ctx)
package transactions
