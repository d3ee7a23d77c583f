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

import "fmt"

//go:generate mockgen -source runner.go -destination runner_mock.go -package fidelio

// Runner is an interface for a component capable of executing EVM
// transactions against bridge-backed state. Implementations seed their
// interpreter state from the account state store, run to completion within
// the gas limit, and commit their writes back through the bridge before
// returning. A non-nil error signals an engine-internal fault (corruption,
// resource exhaustion); contract-level failures are reported through the
// outcome's exit status instead.
type Runner interface {
	// Call executes a message call against an existing target contract.
	Call(source, target Address, input Data, value Value, gasLimit Gas) (CallOutcome, error)

	// Create executes a contract creation. The outcome carries the created
	// address, which is derived deterministically from (source, nonce) and
	// is populated even when the execution fails.
	Create(source Address, initCode Data, value Value, gasLimit Gas) (CreateOutcome, error)

	// Create2 executes a contract creation with a caller-chosen salt. The
	// created address is derived from (source, salt, hash(initCode)).
	Create2(source Address, initCode Data, salt Hash, value Value, gasLimit Gas) (CreateOutcome, error)
}

// ExitKind is the engine's terminal classification of an execution.
type ExitKind int

const (
	// ExitSucceed marks an execution that ran to completion with its state
	// changes committed.
	ExitSucceed ExitKind = iota
	// ExitRevert marks an execution that explicitly reverted; state changes
	// are rolled back by the engine, consumed gas is not refunded.
	ExitRevert
	// ExitError marks an execution aborted by the engine (out of gas,
	// invalid opcode, ...); state changes are rolled back.
	ExitError
	// ExitFatal marks an unrecoverable engine condition.
	ExitFatal
)

func (k ExitKind) String() string {
	switch k {
	case ExitSucceed:
		return "succeed"
	case ExitRevert:
		return "revert"
	case ExitError:
		return "error"
	case ExitFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ExitStatus pairs the terminal classification of an execution with the
// engine's reason code.
type ExitStatus struct {
	Kind   ExitKind
	Reason string
}

// IsSucceed reports whether the execution committed its state changes.
func (s ExitStatus) IsSucceed() bool {
	return s.Kind == ExitSucceed
}

func (s ExitStatus) String() string {
	if s.Reason == "" {
		return s.Kind.String()
	}
	return fmt.Sprintf("%v(%s)", s.Kind, s.Reason)
}

func Succeeded(reason string) ExitStatus {
	return ExitStatus{Kind: ExitSucceed, Reason: reason}
}

func Reverted(reason string) ExitStatus {
	return ExitStatus{Kind: ExitRevert, Reason: reason}
}

func Errored(reason string) ExitStatus {
	return ExitStatus{Kind: ExitError, Reason: reason}
}

func Fatal(reason string) ExitStatus {
	return ExitStatus{Kind: ExitFatal, Reason: reason}
}

// CallOutcome summarizes the result of a call execution.
type CallOutcome struct {
	Status  ExitStatus
	Output  Data
	UsedGas Gas
	Logs    []LogEntry
}

// CreateOutcome summarizes the result of a create or create2 execution.
// CreatedAddress is always populated, even for failed executions, since its
// derivation does not depend on the execution itself.
type CreateOutcome struct {
	Status         ExitStatus
	CreatedAddress Address
	UsedGas        Gas
	Logs           []LogEntry
}
