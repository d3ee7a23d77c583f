// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fidelio

import (
	"errors"
	"fmt"
)

// The bridge's error taxonomy. Authorization and funds failures abort a
// dispatch before the engine is invoked; engine-reported contract failures
// are not errors at this level, they surface as *Failed events.
var (
	// ErrUnauthorized is returned when the origin check for an address fails.
	ErrUnauthorized = errors.New("origin is not authorized for this address")
	// ErrInsufficientBalance is returned when funds do not cover a transfer.
	ErrInsufficientBalance = errors.New("not enough balance to perform action")
	// ErrFeeOverflow is returned when calculating the total fee overflowed.
	ErrFeeOverflow = errors.New("calculating total fee overflowed")
	// ErrPaymentOverflow is returned when calculating the total payment overflowed.
	ErrPaymentOverflow = errors.New("calculating total payment overflowed")
	// ErrWithdrawFailed is returned when the native transfer backing a
	// withdrawal is rejected by the ledger.
	ErrWithdrawFailed = errors.New("withdraw failed")
	// ErrInvalidNonce is reserved for nonce validation.
	ErrInvalidNonce = errors.New("nonce is invalid")
	// ErrExecutionFailed marks an engine-internal fault during execution.
	ErrExecutionFailed = errors.New("execution failed")
)

// ExecutionFailedError wraps the engine's reason for an internal fault. It
// matches ErrExecutionFailed under errors.Is.
type ExecutionFailedError struct {
	Reason string
}

func (e *ExecutionFailedError) Error() string {
	return fmt.Sprintf("execution failed: %s", e.Reason)
}

func (e *ExecutionFailedError) Is(target error) bool {
	return target == ErrExecutionFailed
}
