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

import "golang.org/x/crypto/blake2b"

// AddressMapping derives the native ledger identity owning an EVM address.
// Implementations must be pure, total and deterministic, and injective in
// practice: two distinct addresses must not map to the same identity.
type AddressMapping interface {
	IntoNativeIdentity(Address) NativeIdentity
}

// IdentityAddressMapping embeds the address verbatim into the low bytes of
// the identity, leaving the remaining bytes zero. It is only a sound choice
// when the host treats such identities as reserved for the bridge.
type IdentityAddressMapping struct{}

func (IdentityAddressMapping) IntoNativeIdentity(address Address) NativeIdentity {
	var id NativeIdentity
	copy(id[:len(address)], address[:])
	return id
}

// hashedMappingTag is the domain separation prefix of HashedAddressMapping.
// It keeps bridge-derived identities disjoint from natively created ones.
const hashedMappingTag = "evm:"

// HashedAddressMapping derives the identity as the blake2b-256 digest of the
// tagged address. The derivation is one-way, so an EVM actor cannot choose an
// address that impersonates an existing native identity.
type HashedAddressMapping struct{}

func (HashedAddressMapping) IntoNativeIdentity(address Address) NativeIdentity {
	var data [len(hashedMappingTag) + len(address)]byte
	copy(data[:], hashedMappingTag)
	copy(data[len(hashedMappingTag):], address[:])
	return NativeIdentity(blake2b.Sum256(data[:]))
}
