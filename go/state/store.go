// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/fidelio-foundation/fidelio/go/fidelio"
)

// Key layout of the backend:
//
//	'c' || address          -> contract code
//	's' || address || key   -> storage slot value
//
// The storage table is prefix-scannable per address, which makes bulk
// removal of an account a single prefix operation.
const (
	codeKeyTag    = byte('c')
	storageKeyTag = byte('s')
)

func codeKey(address fidelio.Address) []byte {
	key := make([]byte, 1+len(address))
	key[0] = codeKeyTag
	copy(key[1:], address[:])
	return key
}

func storagePrefix(address fidelio.Address) []byte {
	prefix := make([]byte, 1+len(address))
	prefix[0] = storageKeyTag
	copy(prefix[1:], address[:])
	return prefix
}

func storageKey(address fidelio.Address, slot fidelio.Key) []byte {
	key := make([]byte, 1+len(address)+len(slot))
	key[0] = storageKeyTag
	copy(key[1:], address[:])
	copy(key[1+len(address):], slot[:])
	return key
}

// codeSizeCacheSize bounds the number of cached code lengths. Sized like the
// typical working set of one block's worth of distinct contracts.
const codeSizeCacheSize = 4096

// Store is the persisted account state of the bridge. Code and storage live
// in the key-value backend; nonce and balance are derived on demand from the
// injected ledger capabilities for the mapped identity.
//
// All operations run within one enclosing ledger transition; the store does
// no locking of its own beyond what the backend provides.
type Store struct {
	kv        KeyValueStore
	mapping   fidelio.AddressMapping
	currency  fidelio.Currency
	nonces    fidelio.NonceAccountant
	codeSizes *lru.Cache[fidelio.Address, int]
}

func NewStore(
	kv KeyValueStore,
	mapping fidelio.AddressMapping,
	currency fidelio.Currency,
	nonces fidelio.NonceAccountant,
) (*Store, error) {
	codeSizes, err := lru.New[fidelio.Address, int](codeSizeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create code size cache: %w", err)
	}
	return &Store{
		kv:        kv,
		mapping:   mapping,
		currency:  currency,
		nonces:    nonces,
		codeSizes: codeSizes,
	}, nil
}

// CodeOf returns the code stored for the address, empty if absent.
func (s *Store) CodeOf(address fidelio.Address) (fidelio.Code, error) {
	code, _, err := s.kv.Get(codeKey(address))
	if err != nil {
		return nil, err
	}
	return code, nil
}

// CodeSize returns the length of the stored code without materializing it
// on a cache hit. Used for cheap emptiness checks.
func (s *Store) CodeSize(address fidelio.Address) (int, error) {
	if size, found := s.codeSizes.Get(address); found {
		return size, nil
	}
	code, _, err := s.kv.Get(codeKey(address))
	if err != nil {
		return 0, err
	}
	s.codeSizes.Add(address, len(code))
	return len(code), nil
}

// SetCode stores the code of the address. Invoked by the engine's commit
// phase or the genesis loader, never by the dispatcher.
func (s *Store) SetCode(address fidelio.Address, code fidelio.Code) error {
	if err := s.kv.Put(codeKey(address), code); err != nil {
		return err
	}
	s.codeSizes.Add(address, len(code))
	return nil
}

// StorageOf returns the value of the storage slot, the zero word if absent.
func (s *Store) StorageOf(address fidelio.Address, slot fidelio.Key) (fidelio.Word, error) {
	value, found, err := s.kv.Get(storageKey(address, slot))
	if err != nil || !found {
		return fidelio.Word{}, err
	}
	if len(value) != len(fidelio.Word{}) {
		return fidelio.Word{}, fmt.Errorf("corrupted storage entry for %v/%v: %d bytes", address, slot, len(value))
	}
	return fidelio.Word(value), nil
}

// SetStorage writes a storage slot. Writing the zero word deletes the slot,
// preserving the absence-is-zero invariant.
func (s *Store) SetStorage(address fidelio.Address, slot fidelio.Key, value fidelio.Word) error {
	if value == (fidelio.Word{}) {
		return s.kv.Delete(storageKey(address, slot))
	}
	return s.kv.Put(storageKey(address, slot), value[:])
}

// AccountBasic derives the nonce/balance view of the address from the host
// ledger, widened into 256-bit values.
func (s *Store) AccountBasic(address fidelio.Address) fidelio.Account {
	identity := s.mapping.IntoNativeIdentity(address)
	return fidelio.Account{
		Nonce:   fidelio.NewValue(s.nonces.AccountNonce(identity)),
		Balance: s.currency.FreeBalance(identity),
	}
}

// IsEmpty reports whether the address has zero nonce, zero balance and no
// code. Emptiness is derived, never stored.
func (s *Store) IsEmpty(address fidelio.Address) (bool, error) {
	account := s.AccountBasic(address)
	if !account.IsZero() {
		return false, nil
	}
	size, err := s.CodeSize(address)
	if err != nil {
		return false, err
	}
	return size == 0, nil
}

// RemoveIfEmpty clears the code and storage of the address if it is empty.
func (s *Store) RemoveIfEmpty(address fidelio.Address) error {
	empty, err := s.IsEmpty(address)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	return s.Remove(address)
}

// Remove unconditionally clears the code entry and every storage slot of
// the address. Both happen within the enclosing transition, so no partial
// removal is observable.
func (s *Store) Remove(address fidelio.Address) error {
	if err := s.kv.Delete(codeKey(address)); err != nil {
		return err
	}
	if err := s.kv.DeletePrefix(storagePrefix(address)); err != nil {
		return err
	}
	s.codeSizes.Remove(address)
	return nil
}

// IterateStorage calls fn for every storage slot of the address.
func (s *Store) IterateStorage(address fidelio.Address, fn func(slot fidelio.Key, value fidelio.Word) error) error {
	prefix := storagePrefix(address)
	return s.kv.IteratePrefix(prefix, func(key, value []byte) error {
		if len(key) != len(prefix)+32 || len(value) != 32 {
			return fmt.Errorf("corrupted storage entry %x", key)
		}
		return fn(fidelio.Key(key[len(prefix):]), fidelio.Word(value))
	})
}
