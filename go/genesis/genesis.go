// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package genesis applies the bridge's initial account set before the first
// transition. Balances are credited through supply-creating deposits, since
// at genesis there is no source account to transfer from.
package genesis

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/exp/maps"

	"github.com/fidelio-foundation/fidelio/go/fidelio"
	"github.com/fidelio-foundation/fidelio/go/state"
)

// Account is the input-only description of one genesis account. It is not
// retained after loading; it dissolves into the code table, the storage
// table and the ledger's balance/nonce state.
type Account struct {
	Nonce   uint64                       `json:"nonce"`
	Balance fidelio.Value                `json:"balance"`
	Storage map[fidelio.Key]fidelio.Word `json:"storage,omitempty"`
	Code    fidelio.Code                 `json:"code,omitempty"`
}

// Spec is the full genesis account set, keyed by address.
type Spec map[fidelio.Address]Account

// Decode reads a JSON-encoded genesis spec. Addresses, keys, words and
// balances are 0x-prefixed full-width hex strings.
func Decode(reader io.Reader) (Spec, error) {
	var spec Spec
	if err := json.NewDecoder(reader).Decode(&spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// Load applies the spec. It must run once, before the first transition;
// loading twice would deposit balances twice.
//
// There is no cross-address dependency, so the application order must not
// matter; addresses are still applied in sorted order to keep logs and
// backend write patterns reproducible.
//
// The account nonce is applied by advancing the ledger's counter, so a
// genesis contract's first creation derives the same address it would on a
// chain that reached this nonce organically.
func Load(
	spec Spec,
	store *state.Store,
	mapping fidelio.AddressMapping,
	currency fidelio.Currency,
	nonces fidelio.NonceAccountant,
) error {
	addresses := maps.Keys(spec)
	sort.Slice(addresses, func(i, j int) bool {
		return bytes.Compare(addresses[i][:], addresses[j][:]) < 0
	})

	for _, address := range addresses {
		account := spec[address]
		identity := mapping.IntoNativeIdentity(address)

		for n := uint64(0); n < account.Nonce; n++ {
			nonces.IncAccountNonce(identity)
		}
		currency.DepositCreating(identity, account.Balance)

		if err := store.SetCode(address, account.Code); err != nil {
			return err
		}
		for key, value := range account.Storage {
			if err := store.SetStorage(address, key, value); err != nil {
				return err
			}
		}

		log.Debug("genesis account loaded",
			"address", address,
			"nonce", account.Nonce,
			"balance", account.Balance,
			"code", len(account.Code),
			"storage", len(account.Storage),
		)
	}
	return nil
}
