// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"strings"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAliasOfAlias                 = InvalidError("alias cannot target another alias")
	ErrAliasTargetNotFound          = InvalidError("alias target is not a field of the schema")
	ErrCannotDecodeBase58           = InvalidError("cannot decode base58")
	ErrChecksumMismatch             = InvalidError("checksum mismatch")
	ErrConfigurationNotTable        = InvalidError("configuration must return a table")
	ErrDuplicateFieldName           = InvalidError("duplicate field name")
	ErrEmptyFieldName               = InvalidError("empty field name")
	ErrInvalidAddressVersion        = InvalidError("invalid address version")
	ErrInvalidAliasName             = InvalidError("invalid alias name")
	ErrInvalidDigestLength          = InvalidError("invalid digest length")
	ErrInvalidKeyLength             = InvalidError("invalid key length")
	ErrInvalidLength                = InvalidError("invalid length")
	ErrInvalidValue                 = InvalidError("invalid value")
	ErrListTooLong                  = InvalidError("list too long")
	ErrMissingCodec                 = InvalidError("missing codec")
	ErrNotIntegral                  = InvalidError("value is not an integer")
	ErrReservedFieldName            = InvalidError("reserved field name")
	ErrStringTooLong                = InvalidError("string too long")
	ErrTransactionAlreadyRegistered = ExistsError("transaction type and version already registered")
	ErrUnknownIdentifierAlgorithm   = NotFoundError("unknown identifier algorithm")
	ErrValueOutOfRange              = InvalidError("value out of range")
	ErrValueRequired                = InvalidError("value is required")
	ErrWrongNetworkForAddress       = InvalidError("wrong network for address")
	ErrWrongValueType               = InvalidError("wrong value type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }

// ValidationError - all field validation messages of a record
// in schema order
type ValidationError []string

// Error - messages joined by newline
func (e ValidationError) Error() string {
	return strings.Join(e, "\n")
}

// IsErrValidation - true if any error in the chain is a validation error
func IsErrValidation(e error) bool {
	var x ValidationError
	return errors.As(e, &x)
}

// FieldError - failure of a codec while processing one field
type FieldError struct {
	Field string
	Err   error
}

// Error - field name prefixed message
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// Unwrap - the codec error
func (e *FieldError) Unwrap() error {
	return e.Err
}

// IsErrField - true if any error in the chain is a field error
func IsErrField(e error) bool {
	var x *FieldError
	return errors.As(e, &x)
}
