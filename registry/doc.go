// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry maps a transaction type and version pair to the
// factory that creates records of its schema
//
// a schema must be registered before records of its type can be
// created by lookup, and each pair can only be registered once
package registry
