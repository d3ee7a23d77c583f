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

// Origin identifies the principal dispatching a transaction: the chain's
// root/superuser, a single signed account, or nobody.
type Origin struct {
	kind   originKind
	signer NativeIdentity
}

type originKind int

const (
	originNone originKind = iota
	originRoot
	originSigned
)

// RootOrigin returns the root/superuser origin.
func RootOrigin() Origin {
	return Origin{kind: originRoot}
}

// SignedOrigin returns an origin for a transaction signed by the given
// native identity.
func SignedOrigin(signer NativeIdentity) Origin {
	return Origin{kind: originSigned, signer: signer}
}

// NoneOrigin returns the unauthenticated origin.
func NoneOrigin() Origin {
	return Origin{kind: originNone}
}

func (o Origin) IsRoot() bool {
	return o.kind == originRoot
}

// Signer returns the signing identity and true for signed origins.
func (o Origin) Signer() (NativeIdentity, bool) {
	return o.signer, o.kind == originSigned
}

func (o Origin) String() string {
	switch o.kind {
	case originRoot:
		return "root"
	case originSigned:
		return fmt.Sprintf("signed(%v)", o.signer)
	default:
		return "none"
	}
}

// OriginGuard decides whether an origin is authorized to act as a given EVM
// address. Try hands the origin back on failure so a caller can chain
// several guards over the same origin.
type OriginGuard interface {
	// Try performs the origin check. On success it returns the identity the
	// check resolved (policy dependent, may be zero) and ok=true. On failure
	// it returns the unconsumed origin and ok=false.
	Try(address Address, origin Origin) (success NativeIdentity, rest Origin, ok bool)
}

// EnsureAddressOrigin runs the guard and collapses a failed check into
// ErrUnauthorized.
func EnsureAddressOrigin(guard OriginGuard, address Address, origin Origin) (NativeIdentity, error) {
	id, _, ok := guard.Try(address, origin)
	if !ok {
		return NativeIdentity{}, ErrUnauthorized
	}
	return id, nil
}

// RootOnlyGuard authorizes the root origin for any address and rejects
// everything else. The resolved identity is zero.
type RootOnlyGuard struct{}

func (RootOnlyGuard) Try(_ Address, origin Origin) (NativeIdentity, Origin, bool) {
	if origin.IsRoot() {
		return NativeIdentity{}, origin, true
	}
	return NativeIdentity{}, origin, false
}

// NeverGuard rejects every origin. It is used to disable a capability, for
// instance to forbid withdrawals on a deployment.
type NeverGuard struct{}

func (NeverGuard) Try(_ Address, origin Origin) (NativeIdentity, Origin, bool) {
	return NativeIdentity{}, origin, false
}

// TruncatedHashGuard authorizes a signed origin whose identity starts with
// the same 20 bytes as the target address. This binds a natively signed
// transaction to its own truncated address without any registry; the
// resolved identity is the signer.
type TruncatedHashGuard struct{}

func (TruncatedHashGuard) Try(address Address, origin Origin) (NativeIdentity, Origin, bool) {
	signer, ok := origin.Signer()
	if !ok {
		return NativeIdentity{}, origin, false
	}
	if [20]byte(signer[:20]) != [20]byte(address) {
		return NativeIdentity{}, origin, false
	}
	return signer, origin, true
}
