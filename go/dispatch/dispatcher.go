// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package dispatch implements the bridge's transaction entry points:
// withdraw, call, create and create2. Each entry point is a single-shot
// transition: authorize the origin against the source address, invoke the
// injected engine, and translate its outcome into exactly one terminal
// event. Pre-engine failures abort with an error and leave no trace; engine
// outcomes always commit.
package dispatch

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"github.com/fidelio-foundation/fidelio/go/fidelio"
)

// Capabilities bundles the host-provided collaborators of a Dispatcher.
type Capabilities struct {
	// CallGuard authorizes origins for call/create/create2.
	CallGuard fidelio.OriginGuard
	// WithdrawGuard authorizes origins for withdraw and resolves the
	// destination identity.
	WithdrawGuard fidelio.OriginGuard
	Mapping       fidelio.AddressMapping
	Currency      fidelio.Currency
	Runner        fidelio.Runner
	Events        fidelio.EventSink
}

// DispatchResult reports the dispatch-level accounting of an execution.
type DispatchResult struct {
	UsedGas fidelio.Gas
	// PaysFee is false for executions, since fees are settled by the
	// engine's gas metering rather than the host's fee system.
	PaysFee bool
}

type Dispatcher struct {
	config *Config
	caps   Capabilities
}

func NewDispatcher(config *Config, caps Capabilities) *Dispatcher {
	return &Dispatcher{config: config, caps: caps}
}

// Withdraw moves funds from the EVM address's mapped identity to the
// identity resolved by the withdraw guard. No bridge event is emitted; the
// native ledger's own transfer event suffices.
func (d *Dispatcher) Withdraw(origin fidelio.Origin, address fidelio.Address, amount fidelio.Value) error {
	destination, err := fidelio.EnsureAddressOrigin(d.caps.WithdrawGuard, address, origin)
	if err != nil {
		return err
	}
	source := d.caps.Mapping.IntoNativeIdentity(address)

	if err := d.caps.Currency.Transfer(source, destination, amount, fidelio.AllowDeath); err != nil {
		return fmt.Errorf("%w: %w", fidelio.ErrWithdrawFailed, err)
	}
	log.Debug("withdrawn from bridge", "address", address, "amount", amount)
	return nil
}

// Call executes a message call through the engine. A Succeed exit status
// emits Executed; every other status emits ExecutedFailed. Contract state
// changes of failed executions are reverted by the engine, consumed gas is
// not refunded.
func (d *Dispatcher) Call(
	origin fidelio.Origin,
	source, target fidelio.Address,
	input fidelio.Data,
	value fidelio.Value,
	gasLimit fidelio.Gas,
) (DispatchResult, error) {
	if _, err := fidelio.EnsureAddressOrigin(d.caps.CallGuard, source, origin); err != nil {
		return DispatchResult{}, err
	}

	outcome, err := d.caps.Runner.Call(source, target, input, value, gasLimit)
	if err != nil {
		return DispatchResult{}, &fidelio.ExecutionFailedError{Reason: err.Error()}
	}

	d.emitLogs(outcome.Logs)
	if outcome.Status.IsSucceed() {
		d.caps.Events.Emit(fidelio.NewExecutedEvent(target))
	} else {
		d.caps.Events.Emit(fidelio.NewExecutedFailedEvent(target))
	}
	log.Debug("call dispatched", "target", target, "status", outcome.Status, "used", outcome.UsedGas)

	return DispatchResult{UsedGas: outcome.UsedGas, PaysFee: false}, nil
}

// Create executes a contract creation. The terminal event always carries
// the deterministically derived contract address, also when the execution
// failed.
func (d *Dispatcher) Create(
	origin fidelio.Origin,
	source fidelio.Address,
	initCode fidelio.Data,
	value fidelio.Value,
	gasLimit fidelio.Gas,
) (DispatchResult, error) {
	if _, err := fidelio.EnsureAddressOrigin(d.caps.CallGuard, source, origin); err != nil {
		return DispatchResult{}, err
	}
	outcome, err := d.caps.Runner.Create(source, initCode, value, gasLimit)
	if err != nil {
		return DispatchResult{}, &fidelio.ExecutionFailedError{Reason: err.Error()}
	}
	return d.finishCreate(outcome), nil
}

// Create2 is Create with a caller-chosen salt entering the address
// derivation.
func (d *Dispatcher) Create2(
	origin fidelio.Origin,
	source fidelio.Address,
	initCode fidelio.Data,
	salt fidelio.Hash,
	value fidelio.Value,
	gasLimit fidelio.Gas,
) (DispatchResult, error) {
	if _, err := fidelio.EnsureAddressOrigin(d.caps.CallGuard, source, origin); err != nil {
		return DispatchResult{}, err
	}
	outcome, err := d.caps.Runner.Create2(source, initCode, salt, value, gasLimit)
	if err != nil {
		return DispatchResult{}, &fidelio.ExecutionFailedError{Reason: err.Error()}
	}
	return d.finishCreate(outcome), nil
}

func (d *Dispatcher) finishCreate(outcome fidelio.CreateOutcome) DispatchResult {
	d.emitLogs(outcome.Logs)
	if outcome.Status.IsSucceed() {
		d.caps.Events.Emit(fidelio.NewCreatedEvent(outcome.CreatedAddress))
	} else {
		d.caps.Events.Emit(fidelio.NewCreatedFailedEvent(outcome.CreatedAddress))
	}
	log.Debug("create dispatched", "address", outcome.CreatedAddress, "status", outcome.Status, "used", outcome.UsedGas)
	return DispatchResult{UsedGas: outcome.UsedGas, PaysFee: false}
}

func (d *Dispatcher) emitLogs(logs []fidelio.LogEntry) {
	for _, entry := range logs {
		d.caps.Events.Emit(fidelio.NewLogEvent(entry))
	}
}
