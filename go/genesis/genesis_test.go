// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package genesis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fidelio-foundation/fidelio/go/fidelio"
	"github.com/fidelio-foundation/fidelio/go/state"
)

func newTestStore(t *testing.T) (*state.Store, *fidelio.MemoryLedger) {
	t.Helper()
	ledger := fidelio.NewMemoryLedger()
	store, err := state.NewStore(state.NewMemoryStore(), fidelio.HashedAddressMapping{}, ledger, ledger)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store, ledger
}

func TestGenesis_DecodeParsesFullSpec(t *testing.T) {
	document := `{
		"0x0100000000000000000000000000000000000000": {
			"nonce": 3,
			"balance": "0x0000000000000000000000000000000000000000000000000000000000000064",
			"code": "0x6000",
			"storage": {
				"0x0000000000000000000000000000000000000000000000000000000000000001":
				"0x0000000000000000000000000000000000000000000000000000000000000002"
			}
		}
	}`

	spec, err := Decode(strings.NewReader(document))
	if err != nil {
		t.Fatalf("failed to decode spec: %v", err)
	}

	account, found := spec[fidelio.Address{0x01}]
	if !found {
		t.Fatalf("address missing from decoded spec: %v", spec)
	}
	if account.Nonce != 3 {
		t.Errorf("unexpected nonce, wanted 3, got %v", account.Nonce)
	}
	if want, got := fidelio.NewValue(100), account.Balance; want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	if !bytes.Equal(account.Code, fidelio.Code{0x60, 0x00}) {
		t.Errorf("unexpected code: %x", account.Code)
	}
	if want, got := (fidelio.Word{31: 0x02}), account.Storage[fidelio.Key{31: 0x01}]; want != got {
		t.Errorf("unexpected storage value, wanted %v, got %v", want, got)
	}
}

func TestGenesis_DecodeRejectsMalformedAddresses(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"0x01": {"nonce": 0}}`)); err == nil {
		t.Errorf("short address must be rejected")
	}
}

func TestGenesis_LoadCreditsBalanceAndMarksAccountNonEmpty(t *testing.T) {
	store, ledger := newTestStore(t)
	address := fidelio.Address{0x01}
	spec := Spec{
		address: {Balance: fidelio.NewValue(100)},
	}

	if err := Load(spec, store, fidelio.HashedAddressMapping{}, ledger, ledger); err != nil {
		t.Fatalf("failed to load genesis: %v", err)
	}

	identity := fidelio.HashedAddressMapping{}.IntoNativeIdentity(address)
	if want, got := fidelio.NewValue(100), ledger.FreeBalance(identity); want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	empty, err := store.IsEmpty(address)
	if err != nil {
		t.Fatalf("failed emptiness check: %v", err)
	}
	if empty {
		t.Errorf("funded genesis account must not be empty")
	}
}

func TestGenesis_LoadAppliesCodeStorageAndNonce(t *testing.T) {
	store, ledger := newTestStore(t)
	address := fidelio.Address{0x02}
	spec := Spec{
		address: {
			Nonce:   3,
			Balance: fidelio.NewValue(1),
			Code:    fidelio.Code{0x60, 0x00},
			Storage: map[fidelio.Key]fidelio.Word{
				{31: 0x01}: {31: 0x02},
				{31: 0x03}: {31: 0x04},
			},
		},
	}

	if err := Load(spec, store, fidelio.HashedAddressMapping{}, ledger, ledger); err != nil {
		t.Fatalf("failed to load genesis: %v", err)
	}

	identity := fidelio.HashedAddressMapping{}.IntoNativeIdentity(address)
	if want, got := uint64(3), ledger.AccountNonce(identity); want != got {
		t.Errorf("unexpected nonce, wanted %v, got %v", want, got)
	}
	if want, got := fidelio.NewValue(3), store.AccountBasic(address).Nonce; want != got {
		t.Errorf("derived view must reflect the nonce, wanted %v, got %v", want, got)
	}

	code, err := store.CodeOf(address)
	if err != nil || !bytes.Equal(code, spec[address].Code) {
		t.Errorf("unexpected code, got %x, err %v", code, err)
	}
	for key, want := range spec[address].Storage {
		got, err := store.StorageOf(address, key)
		if err != nil || got != want {
			t.Errorf("unexpected storage for %v, wanted %v, got %v, err %v", key, want, got, err)
		}
	}
}

func TestGenesis_LoadOrderDoesNotMatter(t *testing.T) {
	addresses := []fidelio.Address{{0x03}, {0x01}, {0x02}}
	spec := Spec{}
	for i, address := range addresses {
		spec[address] = Account{Balance: fidelio.NewValue(uint64(i + 1))}
	}

	store, ledger := newTestStore(t)
	if err := Load(spec, store, fidelio.HashedAddressMapping{}, ledger, ledger); err != nil {
		t.Fatalf("failed to load genesis: %v", err)
	}

	for i, address := range addresses {
		identity := fidelio.HashedAddressMapping{}.IntoNativeIdentity(address)
		if want, got := fidelio.NewValue(uint64(i+1)), ledger.FreeBalance(identity); want != got {
			t.Errorf("unexpected balance for %v, wanted %v, got %v", address, want, got)
		}
	}
}
