// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactions

import (
	"github.com/bitmark-inc/txfactory/account"
	"github.com/bitmark-inc/txfactory/codec"
	tr "github.com/bitmark-inc/txfactory/transactionrecord"
)

// Schemas - every schema of the catalogue for one network
func Schemas(networkByte byte) []*tr.Schema {
	chainId := codec.WithDefault(codec.Byte(codec.Required), int(networkByte))

	return []*tr.Schema{
		tr.MustNewSchema(IssueTag, 2,
			tr.Primary("chainId", chainId),
			tr.Primary("senderPublicKey", codec.PublicKey(codec.Required)),
			tr.Primary("name", codec.StringWithLength(codec.Required)),
			tr.Primary("description", codec.StringWithLength(codec.Nullable)),
			tr.Primary("quantity", codec.Long(codec.Required)),
			tr.Primary("decimals", codec.Byte(codec.Required)),
			tr.Primary("reissuable", codec.Bool(codec.Required)),
			tr.Primary("fee", codec.Long(codec.Required)),
			tr.Primary("timestamp", codec.Long(codec.Required)),
			tr.Primary("script", codec.Base58WithLength(codec.Optional)),
		),

		tr.MustNewSchema(TransferTag, 2, transfer(networkByte)...),

		tr.MustNewSchema(TransferTag, 3, append(transfer(networkByte),
			tr.Primary("atomicBadge", codec.Base58(account.AddressLength, codec.Optional)),
		)...),

		tr.MustNewSchema(ReissueTag, 2,
			tr.Primary("chainId", chainId),
			tr.Primary("senderPublicKey", codec.PublicKey(codec.Required)),
			tr.Primary("assetId", codec.AssetId(codec.Required)),
			tr.Primary("quantity", codec.Long(codec.Required)),
			tr.Primary("reissuable", codec.Bool(codec.Required)),
			tr.Primary("fee", codec.Long(codec.Required)),
			tr.Primary("timestamp", codec.Long(codec.Required)),
		),

		tr.MustNewSchema(BurnTag, 2,
			tr.Primary("chainId", chainId),
			tr.Primary("senderPublicKey", codec.PublicKey(codec.Required)),
			tr.Primary("assetId", codec.AssetId(codec.Required)),
			tr.Primary("amount", codec.Long(codec.Required)),
			tr.Primary("fee", codec.Long(codec.Required)),
			tr.Primary("timestamp", codec.Long(codec.Required)),
		),

		tr.MustNewSchema(LeaseTag, 2,
			tr.Primary("assetId", codec.AssetId(codec.Optional)),
			tr.Primary("senderPublicKey", codec.PublicKey(codec.Required)),
			tr.Primary("recipient", codec.Recipient(networkByte, codec.Required)),
			tr.Primary("amount", codec.Long(codec.Required)),
			tr.Primary("fee", codec.Long(codec.Required)),
			tr.Primary("timestamp", codec.Long(codec.Required)),
		),

		tr.MustNewSchema(LeaseCancelTag, 2,
			tr.Primary("chainId", chainId),
			tr.Primary("senderPublicKey", codec.PublicKey(codec.Required)),
			tr.Primary("fee", codec.Long(codec.Required)),
			tr.Primary("timestamp", codec.Long(codec.Required)),
			tr.Primary("leaseId", codec.AssetId(codec.Required)),
		),

		tr.MustNewSchema(CreateAliasTag, 2,
			tr.Primary("senderPublicKey", codec.PublicKey(codec.Required)),
			tr.Primary("alias", codec.Alias(networkByte, codec.Required)),
			tr.Primary("fee", codec.Long(codec.Required)),
			tr.Primary("timestamp", codec.Long(codec.Required)),
		),

		tr.MustNewSchema(SponsorFeeTag, 1,
			tr.Primary("senderPublicKey", codec.PublicKey(codec.Required)),
			tr.Primary("assetId", codec.AssetId(codec.Required)),
			tr.Primary("isEnabled", codec.Bool(codec.Required)),
			tr.Primary("fee", codec.Long(codec.Required)),
			tr.Primary("timestamp", codec.Long(codec.Required)),
		),

		// the permit operation repeats the transaction timestamp
		tr.MustNewSchema(PermitTag, 1,
			tr.Primary("senderPublicKey", codec.PublicKey(codec.Required)),
			tr.Primary("target", codec.Recipient(networkByte, codec.Required)),
			tr.Primary("timestamp", codec.Long(codec.Required)),
			tr.Primary("fee", codec.Long(codec.Required)),
			tr.Primary("opType", codec.WithDefault(codec.Enum(opTypes, codec.Required), OpAdd)),
			tr.Primary("role", codec.Enum(roles, codec.Required)),
			tr.Duplicate("timestamp"),
			tr.Primary("dueTimestamp", codec.Long(codec.Optional)),
		),
	}
}

func transfer(networkByte byte) []tr.Entry {
	return []tr.Entry{
		tr.Primary("senderPublicKey", codec.PublicKey(codec.Required)),
		tr.Primary("assetId", codec.AssetId(codec.Optional)),
		tr.Primary("feeAssetId", codec.AssetId(codec.Optional)),
		tr.Primary("timestamp", codec.Long(codec.Required)),
		tr.Primary("amount", codec.Long(codec.Required)),
		tr.Primary("fee", codec.Long(codec.Required)),
		tr.Primary("recipient", codec.Recipient(networkByte, codec.Required)),
		tr.Primary("attachment", codec.Base58WithLength(codec.Nullable)),
	}
}
