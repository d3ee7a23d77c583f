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

// MemoryLedger is an in-process Currency and NonceAccountant. It backs the
// driver tooling and the test suites; production deployments inject the host
// ledger's own capabilities instead.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[NativeIdentity]Value
	nonces   map[NativeIdentity]uint64
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: map[NativeIdentity]Value{},
		nonces:   map[NativeIdentity]uint64{},
	}
}

func (l *MemoryLedger) Transfer(from, to NativeIdentity, amount Value, policy ExistencePolicy) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance := l.balances[from]
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %v < %v", ErrInsufficientBalance, balance, amount)
	}
	balance = Sub(balance, amount)
	if balance.IsZero() && policy == AllowDeath {
		delete(l.balances, from)
	} else {
		l.balances[from] = balance
	}
	l.balances[to] = Add(l.balances[to], amount)
	return nil
}

func (l *MemoryLedger) FreeBalance(identity NativeIdentity) Value {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[identity]
}

func (l *MemoryLedger) DepositCreating(identity NativeIdentity, amount Value) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[identity] = Add(l.balances[identity], amount)
}

func (l *MemoryLedger) AccountNonce(identity NativeIdentity) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.nonces[identity]
}

func (l *MemoryLedger) IncAccountNonce(identity NativeIdentity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nonces[identity]++
}
