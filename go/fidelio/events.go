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
	"fmt"
	"sync"
)

// LogEntry is a log message emitted by contract code during an execution.
type LogEntry struct {
	Address Address
	Topics  []Hash
	Data    Data
}

// EventKind enumerates the fixed vocabulary of events observable from the
// bridge.
type EventKind int

const (
	// EventLog carries a contract log entry.
	EventLog EventKind = iota
	// EventCreated marks a contract created at Event.Address.
	EventCreated
	// EventCreatedFailed marks a failed creation attempt; Event.Address is
	// the address the contract would have received.
	EventCreatedFailed
	// EventExecuted marks a call executed with state changes applied.
	EventExecuted
	// EventExecutedFailed marks a call that failed; contract state changes
	// are reverted, gas fees remain applied.
	EventExecutedFailed
	// EventBalanceDeposit marks a deposit made at an address.
	EventBalanceDeposit
	// EventBalanceWithdraw marks a withdrawal made from an address.
	EventBalanceWithdraw
)

func (k EventKind) String() string {
	switch k {
	case EventLog:
		return "Log"
	case EventCreated:
		return "Created"
	case EventCreatedFailed:
		return "CreatedFailed"
	case EventExecuted:
		return "Executed"
	case EventExecutedFailed:
		return "ExecutedFailed"
	case EventBalanceDeposit:
		return "BalanceDeposit"
	case EventBalanceWithdraw:
		return "BalanceWithdraw"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is one entry of the bridge's transition log. Which fields are
// meaningful depends on the kind: Address for Created*/Executed* and the
// balance events, Log for EventLog, Actor and Amount for the balance events.
type Event struct {
	Kind    EventKind
	Address Address
	Log     *LogEntry
	Actor   NativeIdentity
	Amount  Value
}

func NewLogEvent(entry LogEntry) Event {
	return Event{Kind: EventLog, Address: entry.Address, Log: &entry}
}

func NewCreatedEvent(address Address) Event {
	return Event{Kind: EventCreated, Address: address}
}

func NewCreatedFailedEvent(address Address) Event {
	return Event{Kind: EventCreatedFailed, Address: address}
}

func NewExecutedEvent(address Address) Event {
	return Event{Kind: EventExecuted, Address: address}
}

func NewExecutedFailedEvent(address Address) Event {
	return Event{Kind: EventExecutedFailed, Address: address}
}

func NewBalanceDepositEvent(actor NativeIdentity, address Address, amount Value) Event {
	return Event{Kind: EventBalanceDeposit, Address: address, Actor: actor, Amount: amount}
}

func NewBalanceWithdrawEvent(actor NativeIdentity, address Address, amount Value) Event {
	return Event{Kind: EventBalanceWithdraw, Address: address, Actor: actor, Amount: amount}
}

func (e Event) String() string {
	switch e.Kind {
	case EventLog:
		return fmt.Sprintf("Log(%v, %d topics)", e.Address, len(e.Log.Topics))
	case EventBalanceDeposit, EventBalanceWithdraw:
		return fmt.Sprintf("%v(%v, %v, %v)", e.Kind, e.Actor, e.Address, e.Amount)
	default:
		return fmt.Sprintf("%v(%v)", e.Kind, e.Address)
	}
}

// EventSink receives the events produced by a dispatch.
type EventSink interface {
	Emit(Event)
}

// TransitionLog is an append-only EventSink collecting the events of the
// enclosing state transition.
type TransitionLog struct {
	mu     sync.Mutex
	events []Event
}

func NewTransitionLog() *TransitionLog {
	return &TransitionLog{}
}

func (l *TransitionLog) Emit(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

// Events returns the emitted events in emission order.
func (l *TransitionLog) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	res := make([]Event, len(l.events))
	copy(res, l.events)
	return res
}
