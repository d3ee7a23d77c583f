// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package dispatch

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/fidelio-foundation/fidelio/go/fidelio"
)

// signedFor returns a signed origin whose identity prefix matches the
// address, so it passes the TruncatedHashGuard.
func signedFor(address fidelio.Address) (fidelio.Origin, fidelio.NativeIdentity) {
	var signer fidelio.NativeIdentity
	copy(signer[:], address[:])
	return fidelio.SignedOrigin(signer), signer
}

func newTestDispatcher(runner fidelio.Runner, currency fidelio.Currency) (*Dispatcher, *fidelio.TransitionLog) {
	events := fidelio.NewTransitionLog()
	dispatcher := NewDispatcher(DefaultConfig(), Capabilities{
		CallGuard:     fidelio.TruncatedHashGuard{},
		WithdrawGuard: fidelio.TruncatedHashGuard{},
		Mapping:       fidelio.HashedAddressMapping{},
		Currency:      currency,
		Runner:        runner,
		Events:        events,
	})
	return dispatcher, events
}

func TestDispatcher_CallEmitsExecutedOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := fidelio.NewMockRunner(ctrl)

	source := fidelio.Address{0xAA}
	target := fidelio.Address{0xBB}
	origin, _ := signedFor(source)
	input := fidelio.Data{1, 2, 3}

	runner.EXPECT().
		Call(source, target, input, fidelio.NewValue(7), fidelio.Gas(100_000)).
		Return(fidelio.CallOutcome{
			Status:  fidelio.Succeeded("stopped"),
			UsedGas: 21_000,
		}, nil)

	dispatcher, events := newTestDispatcher(runner, fidelio.NewMemoryLedger())
	result, err := dispatcher.Call(origin, source, target, input, fidelio.NewValue(7), 100_000)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if result.PaysFee {
		t.Errorf("dispatched calls must be fee-exempt at this layer")
	}
	if want, got := fidelio.Gas(21_000), result.UsedGas; want != got {
		t.Errorf("unexpected gas usage, wanted %v, got %v", want, got)
	}

	log := events.Events()
	if len(log) != 1 {
		t.Fatalf("expected exactly one event, got %v", log)
	}
	if want, got := fidelio.NewExecutedEvent(target), log[0]; want != got {
		t.Errorf("unexpected event, wanted %v, got %v", want, got)
	}
}

func TestDispatcher_CallEmitsExecutedFailedOnNonSucceedStatus(t *testing.T) {
	statuses := map[string]fidelio.ExitStatus{
		"revert": fidelio.Reverted("reverted"),
		"error":  fidelio.Errored("out of gas"),
		"fatal":  fidelio.Fatal("not supported"),
	}

	for name, status := range statuses {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := fidelio.NewMockRunner(ctrl)

			source := fidelio.Address{0xAA}
			target := fidelio.Address{0xBB}
			origin, _ := signedFor(source)

			runner.EXPECT().
				Call(source, target, gomock.Any(), gomock.Any(), gomock.Any()).
				Return(fidelio.CallOutcome{Status: status}, nil)

			dispatcher, events := newTestDispatcher(runner, fidelio.NewMemoryLedger())
			if _, err := dispatcher.Call(origin, source, target, nil, fidelio.Value{}, 100_000); err != nil {
				t.Fatalf("a failed execution is not a dispatch error, got %v", err)
			}

			log := events.Events()
			if len(log) != 1 {
				t.Fatalf("expected exactly one event, got %v", log)
			}
			if want, got := fidelio.NewExecutedFailedEvent(target), log[0]; want != got {
				t.Errorf("unexpected event, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestDispatcher_CallReEmitsEngineLogsBeforeTerminalEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := fidelio.NewMockRunner(ctrl)

	source := fidelio.Address{0xAA}
	target := fidelio.Address{0xBB}
	origin, _ := signedFor(source)
	entry := fidelio.LogEntry{Address: target, Topics: []fidelio.Hash{{1}}, Data: fidelio.Data{1}}

	runner.EXPECT().
		Call(source, target, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fidelio.CallOutcome{
			Status: fidelio.Succeeded("returned"),
			Logs:   []fidelio.LogEntry{entry},
		}, nil)

	dispatcher, events := newTestDispatcher(runner, fidelio.NewMemoryLedger())
	if _, err := dispatcher.Call(origin, source, target, nil, fidelio.Value{}, 100_000); err != nil {
		t.Fatalf("call failed: %v", err)
	}

	log := events.Events()
	if len(log) != 2 {
		t.Fatalf("expected log event and terminal event, got %v", log)
	}
	if log[0].Kind != fidelio.EventLog {
		t.Errorf("engine logs must precede the terminal event, got %v", log)
	}
	if log[1].Kind != fidelio.EventExecuted {
		t.Errorf("terminal event must close the dispatch, got %v", log)
	}
}

func TestDispatcher_CallRejectsUnauthorizedOriginWithoutSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := fidelio.NewMockRunner(ctrl) // no expectations, must not be invoked

	source := fidelio.Address{0xAA}
	origins := map[string]fidelio.Origin{
		"mismatched signer": fidelio.SignedOrigin(fidelio.NativeIdentity{0xBB}),
		"root":              fidelio.RootOrigin(),
		"none":              fidelio.NoneOrigin(),
	}

	for name, origin := range origins {
		t.Run(name, func(t *testing.T) {
			dispatcher, events := newTestDispatcher(runner, fidelio.NewMemoryLedger())
			_, err := dispatcher.Call(origin, source, fidelio.Address{0xBB}, nil, fidelio.Value{}, 100_000)
			if !errors.Is(err, fidelio.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
			if log := events.Events(); len(log) != 0 {
				t.Errorf("rejected dispatch must not emit events, got %v", log)
			}
		})
	}
}

func TestDispatcher_CallPropagatesEngineFaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := fidelio.NewMockRunner(ctrl)

	source := fidelio.Address{0xAA}
	origin, _ := signedFor(source)

	runner.EXPECT().
		Call(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fidelio.CallOutcome{}, fmt.Errorf("database corrupted"))

	dispatcher, events := newTestDispatcher(runner, fidelio.NewMemoryLedger())
	_, err := dispatcher.Call(origin, source, fidelio.Address{0xBB}, nil, fidelio.Value{}, 100_000)
	if !errors.Is(err, fidelio.ErrExecutionFailed) {
		t.Fatalf("expected ErrExecutionFailed, got %v", err)
	}
	if log := events.Events(); len(log) != 0 {
		t.Errorf("engine faults must not emit events, got %v", log)
	}
}

func TestDispatcher_CreateEmitsCreatedWithDerivedAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := fidelio.NewMockRunner(ctrl)

	source := fidelio.Address{0xAA}
	origin, _ := signedFor(source)
	initCode := fidelio.Data{0x60, 0x00}
	created := fidelio.CreateAddress(source, 0)

	runner.EXPECT().
		Create(source, initCode, fidelio.Value{}, fidelio.Gas(200_000)).
		Return(fidelio.CreateOutcome{
			Status:         fidelio.Succeeded("returned"),
			CreatedAddress: created,
			UsedGas:        60_000,
		}, nil)

	dispatcher, events := newTestDispatcher(runner, fidelio.NewMemoryLedger())
	result, err := dispatcher.Create(origin, source, initCode, fidelio.Value{}, 200_000)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.PaysFee {
		t.Errorf("dispatched creates must be fee-exempt at this layer")
	}

	log := events.Events()
	if len(log) != 1 {
		t.Fatalf("expected exactly one event, got %v", log)
	}
	if want, got := fidelio.NewCreatedEvent(created), log[0]; want != got {
		t.Errorf("unexpected event, wanted %v, got %v", want, got)
	}
}

func TestDispatcher_FailedCreateStillCarriesDeterministicAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := fidelio.NewMockRunner(ctrl)

	source := fidelio.Address{0xAA}
	origin, _ := signedFor(source)
	// The engine derives the address before executing, so a failed create
	// reports the same address a successful one would have.
	created := fidelio.CreateAddress(source, 4)

	runner.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fidelio.CreateOutcome{
			Status:         fidelio.Errored("out of gas"),
			CreatedAddress: created,
		}, nil)

	dispatcher, events := newTestDispatcher(runner, fidelio.NewMemoryLedger())
	if _, err := dispatcher.Create(origin, source, nil, fidelio.Value{}, 200_000); err != nil {
		t.Fatalf("a failed execution is not a dispatch error, got %v", err)
	}

	log := events.Events()
	if len(log) != 1 {
		t.Fatalf("expected exactly one event, got %v", log)
	}
	if want, got := fidelio.NewCreatedFailedEvent(created), log[0]; want != got {
		t.Errorf("unexpected event, wanted %v, got %v", want, got)
	}
}

func TestDispatcher_Create2UsesSaltedDerivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := fidelio.NewMockRunner(ctrl)

	source := fidelio.Address{0xAA}
	origin, _ := signedFor(source)
	initCode := fidelio.Data{0x60, 0x00}
	salt := fidelio.Hash{0x42}
	created := fidelio.CreateAddress2(source, salt, initCode)

	runner.EXPECT().
		Create2(source, initCode, salt, fidelio.Value{}, fidelio.Gas(200_000)).
		Return(fidelio.CreateOutcome{
			Status:         fidelio.Succeeded("returned"),
			CreatedAddress: created,
		}, nil)

	dispatcher, events := newTestDispatcher(runner, fidelio.NewMemoryLedger())
	if _, err := dispatcher.Create2(origin, source, initCode, salt, fidelio.Value{}, 200_000); err != nil {
		t.Fatalf("create2 failed: %v", err)
	}

	log := events.Events()
	if len(log) != 1 {
		t.Fatalf("expected exactly one event, got %v", log)
	}
	if want, got := fidelio.NewCreatedEvent(created), log[0]; want != got {
		t.Errorf("unexpected event, wanted %v, got %v", want, got)
	}
}

func TestDispatcher_WithdrawMovesFundsToSigner(t *testing.T) {
	ledger := fidelio.NewMemoryLedger()
	address := fidelio.Address{0xAA}
	origin, signer := signedFor(address)

	bridged := fidelio.HashedAddressMapping{}.IntoNativeIdentity(address)
	ledger.DepositCreating(bridged, fidelio.NewValue(100))

	dispatcher, events := newTestDispatcher(nil, ledger)
	if err := dispatcher.Withdraw(origin, address, fidelio.NewValue(40)); err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}

	if want, got := fidelio.NewValue(60), ledger.FreeBalance(bridged); want != got {
		t.Errorf("unexpected bridge balance, wanted %v, got %v", want, got)
	}
	if want, got := fidelio.NewValue(40), ledger.FreeBalance(signer); want != got {
		t.Errorf("unexpected signer balance, wanted %v, got %v", want, got)
	}
	if log := events.Events(); len(log) != 0 {
		t.Errorf("withdraw must not emit bridge events, got %v", log)
	}
}

func TestDispatcher_WithdrawFailsOnInsufficientFunds(t *testing.T) {
	ledger := fidelio.NewMemoryLedger()
	address := fidelio.Address{0xAA}
	origin, signer := signedFor(address)

	bridged := fidelio.HashedAddressMapping{}.IntoNativeIdentity(address)
	ledger.DepositCreating(bridged, fidelio.NewValue(10))

	dispatcher, events := newTestDispatcher(nil, ledger)
	err := dispatcher.Withdraw(origin, address, fidelio.NewValue(11))
	if !errors.Is(err, fidelio.ErrWithdrawFailed) {
		t.Fatalf("expected ErrWithdrawFailed, got %v", err)
	}
	if !errors.Is(err, fidelio.ErrInsufficientBalance) {
		t.Fatalf("cause must remain inspectable, got %v", err)
	}

	if want, got := fidelio.NewValue(10), ledger.FreeBalance(bridged); want != got {
		t.Errorf("failed withdraw must not move funds, wanted %v, got %v", want, got)
	}
	if got := ledger.FreeBalance(signer); !got.IsZero() {
		t.Errorf("failed withdraw must not credit the signer, got %v", got)
	}
	if log := events.Events(); len(log) != 0 {
		t.Errorf("failed withdraw must not emit events, got %v", log)
	}
}

func TestDispatcher_WithdrawCanBeDisabledWithNeverGuard(t *testing.T) {
	ledger := fidelio.NewMemoryLedger()
	address := fidelio.Address{0xAA}
	origin, _ := signedFor(address)

	dispatcher := NewDispatcher(DefaultConfig(), Capabilities{
		CallGuard:     fidelio.TruncatedHashGuard{},
		WithdrawGuard: fidelio.NeverGuard{},
		Mapping:       fidelio.HashedAddressMapping{},
		Currency:      ledger,
		Events:        fidelio.NewTransitionLog(),
	})

	if err := dispatcher.Withdraw(origin, address, fidelio.NewValue(1)); !errors.Is(err, fidelio.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
