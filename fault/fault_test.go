// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txfactory/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
		{&fault.FieldError{Field: "f", Err: ErrInvalidOne}, false, true, false, false},
		{fmt.Errorf("wrapped: %w", ErrNotFoundTwo), false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := fault.ValidationError{"amount: is required", "fee: value out of range"}

	assert.Equal(t, "amount: is required\nfee: value out of range", err.Error(), "wrong message")
	assert.True(t, fault.IsErrValidation(err), "not a validation error")
	assert.True(t, fault.IsErrValidation(fmt.Errorf("encode: %w", err)), "wrapped not detected")
	assert.False(t, fault.IsErrValidation(ErrInvalidOne), "invalid detected as validation")
}

func TestFieldError(t *testing.T) {
	err := &fault.FieldError{Field: "amount", Err: fault.ErrValueOutOfRange}

	assert.Equal(t, "amount: value out of range", err.Error(), "wrong message")
	assert.True(t, errors.Is(err, fault.ErrValueOutOfRange), "cause not found")
	assert.True(t, fault.IsErrField(err), "not a field error")
	assert.False(t, fault.IsErrField(fault.ErrValueOutOfRange), "plain error detected as field error")
}
