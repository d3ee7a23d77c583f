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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// CreateAddress computes the address a contract created by source with the
// given account nonce receives. The derivation is independent of the
// execution outcome, which is why failed creations still report an address.
func CreateAddress(source Address, nonce uint64) Address {
	return Address(crypto.CreateAddress(common.Address(source), nonce))
}

// CreateAddress2 computes the address of a contract created through create2
// from the source, the caller-chosen salt, and the init code.
func CreateAddress2(source Address, salt Hash, initCode []byte) Address {
	return Address(crypto.CreateAddress2(common.Address(source), common.Hash(salt), crypto.Keccak256(initCode)))
}
