// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactions

import (
	"github.com/bitmark-inc/txfactory/transactionrecord"
)

// enumerated transaction tags
const (
	GenesisTag     transactionrecord.TagType = 1
	IssueTag       transactionrecord.TagType = 3
	TransferTag    transactionrecord.TagType = 4
	ReissueTag     transactionrecord.TagType = 5
	BurnTag        transactionrecord.TagType = 6
	LeaseTag       transactionrecord.TagType = 8
	LeaseCancelTag transactionrecord.TagType = 9
	CreateAliasTag transactionrecord.TagType = 10
	SponsorFeeTag  transactionrecord.TagType = 14
	PermitTag      transactionrecord.TagType = 102
)

var tagNames = map[transactionrecord.TagType]string{
	GenesisTag:     "Genesis",
	IssueTag:       "Issue",
	TransferTag:    "Transfer",
	ReissueTag:     "Reissue",
	BurnTag:        "Burn",
	LeaseTag:       "Lease",
	LeaseCancelTag: "LeaseCancel",
	CreateAliasTag: "CreateAlias",
	SponsorFeeTag:  "SponsorFee",
	PermitTag:      "Permit",
}

// Name - name of a tag, "*unknown*" if not enumerated
func Name(tag transactionrecord.TagType) string {
	if name, ok := tagNames[tag]; ok {
		return name
	}
	return "*unknown*"
}

// permission operations
const (
	OpAdd    = "add"
	OpRemove = "remove"
)

var opTypes = map[string]byte{
	OpAdd:    'a',
	OpRemove: 'r',
}

// permission roles
var roles = map[string]byte{
	"permissioner":       1,
	"miner":              2,
	"issuer":             3,
	"dexer":              4,
	"contract_developer": 5,
	"blacklister":        6,
	"banned":             7,
	"connection_manager": 8,
	"sender":             9,
	"contract_validator": 10,
}
