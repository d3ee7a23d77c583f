// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package fidelio defines the vocabulary of the EVM account bridge: the
// value types shared between the host ledger and the execution engine, and
// the capability interfaces (AddressMapping, OriginGuard, Currency, Runner)
// that a host injects into the dispatcher. The package contains no execution
// logic of its own; engines are registered through the runner registry and
// consumed as opaque capabilities.
package fidelio

// Address represents the 160-bit (20 bytes) address of an EVM-visible
// account. It is distinct from the native ledger's own identifier type.
type Address [20]byte

// Key represents the 256-bit (32 bytes) key of a contract storage slot.
type Key [32]byte

// Word represents an arbitrary 256-bit (32 byte) word of contract storage.
type Word [32]byte

// Value represents an amount of chain currency in big-endian byte order.
type Value [32]byte

// Hash represents a 256-bit (32 bytes) cryptographic summary, used for
// create2 salts and log topics.
type Hash [32]byte

// Code represents the byte-code of a contract.
type Code []byte

// Data represents the input or output of contract invocations.
type Data []byte

// Gas represents the type used to represent the Gas values.
type Gas int64

// NativeIdentity is the host ledger's own 32-byte account identifier. It is
// produced deterministically, and only by an AddressMapping, from an Address.
type NativeIdentity [32]byte

// Account is the derived nonce/balance view of an address, computed at read
// time from the native ledger for the mapped identity. It is never stored.
type Account struct {
	Nonce   Value
	Balance Value
}

// IsZero reports whether both the nonce and the balance are zero. Emptiness
// of a full account additionally requires a zero-length code, which is the
// state store's concern.
func (a Account) IsZero() bool {
	return a.Nonce == Value{} && a.Balance == Value{}
}
