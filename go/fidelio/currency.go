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

//go:generate mockgen -source currency.go -destination currency_mock.go -package fidelio

// ExistencePolicy controls whether a transfer may reap the source account by
// draining it below the ledger's existential threshold.
type ExistencePolicy int

const (
	// AllowDeath permits the source account to be removed by the transfer.
	AllowDeath ExistencePolicy = iota
	// KeepAlive rejects transfers that would remove the source account.
	KeepAlive
)

func (p ExistencePolicy) String() string {
	switch p {
	case AllowDeath:
		return "allow_death"
	case KeepAlive:
		return "keep_alive"
	default:
		return "unknown"
	}
}

// Currency is the host ledger's balance capability. The ledger remains
// authoritative for balances; the bridge only reads and moves them.
type Currency interface {
	// Transfer moves amount from one identity to another. It fails without
	// side effects if the source's free balance is insufficient or the
	// ledger rejects the transfer.
	Transfer(from, to NativeIdentity, amount Value, policy ExistencePolicy) error

	// FreeBalance returns the spendable balance of an identity.
	FreeBalance(identity NativeIdentity) Value

	// DepositCreating credits an identity, creating the account if it does
	// not exist. Used at genesis, where there is no source to transfer from.
	DepositCreating(identity NativeIdentity, amount Value)
}

// NonceAccountant is the host ledger's transaction counter capability. The
// bridge reads nonces to derive account views; only the genesis loader
// advances them.
type NonceAccountant interface {
	AccountNonce(identity NativeIdentity) uint64
	IncAccountNonce(identity NativeIdentity)
}
