// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// Presence - how a field treats a missing value
type Presence int

// the three encoding branches
const (
	Required Presence = iota // value must be present, codec bytes only
	Nullable                 // nil is allowed, codec bytes only
	Optional                 // presence byte then codec bytes when present
)

// PresenceFromFlags - convert the required/allow-null flag pair
func PresenceFromFlags(required bool, allowNull bool) Presence {
	switch {
	case required:
		return Required
	case allowNull:
		return Nullable
	default:
		return Optional
	}
}

// String - name of the presence for logs and errors
func (p Presence) String() string {
	switch p {
	case Required:
		return "required"
	case Nullable:
		return "nullable"
	case Optional:
		return "optional"
	default:
		return "*unknown*"
	}
}
