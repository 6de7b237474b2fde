// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"
)

// Body - plain snapshot of the record values
//
// contains every primary field, every extra value, the id and proofs
// when set, and the "version" and "type" tags; "tx_type" never appears
func (record *Record) Body() map[string]interface{} {
	body := make(map[string]interface{}, len(record.values)+len(record.extra)+4)

	for k, v := range record.extra {
		body[k] = v
	}
	for slot, name := range record.schema.slots {
		body[name] = record.values[slot]
	}
	if "" != record.Id {
		body[IdName] = record.Id
	}
	if nil != record.Proofs {
		body[ProofsName] = record.Proofs
	}

	delete(body, TypeTagName)
	body[VersionTagName] = record.schema.version
	body[BodyTypeName] = record.schema.txType

	return body
}

// MarshalJSON - the body as JSON
func (record *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(record.Body())
}
