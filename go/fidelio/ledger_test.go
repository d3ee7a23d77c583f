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
	"testing"
)

func TestMemoryLedger_TransferMovesFunds(t *testing.T) {
	ledger := NewMemoryLedger()
	from := NativeIdentity{1}
	to := NativeIdentity{2}
	ledger.DepositCreating(from, NewValue(100))

	if err := ledger.Transfer(from, to, NewValue(30), KeepAlive); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	if want, got := NewValue(70), ledger.FreeBalance(from); want != got {
		t.Errorf("unexpected source balance, wanted %v, got %v", want, got)
	}
	if want, got := NewValue(30), ledger.FreeBalance(to); want != got {
		t.Errorf("unexpected destination balance, wanted %v, got %v", want, got)
	}
}

func TestMemoryLedger_TransferFailsOnInsufficientFunds(t *testing.T) {
	ledger := NewMemoryLedger()
	from := NativeIdentity{1}
	ledger.DepositCreating(from, NewValue(10))

	err := ledger.Transfer(from, NativeIdentity{2}, NewValue(11), AllowDeath)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if want, got := NewValue(10), ledger.FreeBalance(from); want != got {
		t.Errorf("failed transfer must not move funds, wanted %v, got %v", want, got)
	}
}

func TestMemoryLedger_NoncesStartAtZeroAndIncrement(t *testing.T) {
	ledger := NewMemoryLedger()
	id := NativeIdentity{1}

	if got := ledger.AccountNonce(id); got != 0 {
		t.Errorf("fresh account must have nonce 0, got %v", got)
	}
	ledger.IncAccountNonce(id)
	ledger.IncAccountNonce(id)
	if got := ledger.AccountNonce(id); got != 2 {
		t.Errorf("unexpected nonce, wanted 2, got %v", got)
	}
}
