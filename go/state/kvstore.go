// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package state persists the bridge's per-address contract state: the code
// table and the two-level storage-slot table. Both live in a raw key-value
// backend; the nonce/balance half of an account is never stored here, it is
// derived from the host ledger at read time.
package state

import (
	"sort"
	"strings"
	"sync"
)

// KeyValueStore is the raw persistence backend of the account state store.
// Keys with a common prefix are independently scannable, which the store
// relies on for bulk removal of an address's storage.
type KeyValueStore interface {
	// Get retrieves a value by key. The second result is false if the key
	// is not present.
	Get(key []byte) ([]byte, bool, error)
	Put(key, value []byte) error
	Delete(key []byte) error

	// DeletePrefix removes every entry whose key starts with prefix.
	DeletePrefix(prefix []byte) error

	// IteratePrefix calls fn for every entry whose key starts with prefix,
	// in ascending key order, until fn returns an error.
	IteratePrefix(prefix []byte, fn func(key, value []byte) error) error

	Close() error
}

// MemoryStore is a map-backed KeyValueStore for tests and tooling.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string][]byte{}}
}

func (s *MemoryStore) Get(key []byte) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, found := s.entries[string(key)]
	if !found {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *MemoryStore) Put(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[string(key)] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, string(key))
	return nil
}

func (s *MemoryStore) DeletePrefix(prefix []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.entries {
		if strings.HasPrefix(key, string(prefix)) {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *MemoryStore) IteratePrefix(prefix []byte, fn func(key, value []byte) error) error {
	s.mu.Lock()
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		if strings.HasPrefix(key, string(prefix)) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	values := make([][]byte, len(keys))
	for i, key := range keys {
		values[i] = append([]byte(nil), s.entries[key]...)
	}
	s.mu.Unlock()

	for i, key := range keys {
		if err := fn([]byte(key), values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
