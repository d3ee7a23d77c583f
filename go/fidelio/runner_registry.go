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
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// This file provides a registry for Runner implementations.
//
// The registry is intended to be used by host applications that would like
// to pick an execution engine by name. For an implementation to be available
// it needs to be registered. Typically, this registration is part of the
// init code of the package providing an implementation. Thus, by including
// the implementation package, engine implementations become available in
// this central registry.

// NewRunner performs a lookup for the given name (case-insensitive) in the
// registry and creates a new Runner using the given optional configuration.
// If no configuration is provided, the implementation uses its default
// configuration. An error is returned if no factory was registered under the
// given name.
func NewRunner(name string, config ...any) (Runner, error) {
	if len(config) > 1 {
		return nil, fmt.Errorf("invalid configuration: too many arguments")
	}
	factory := GetRunnerFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("runner not found: %s", name)
	}
	c := any(nil)
	if len(config) > 0 {
		c = config[0]
	}
	return factory(c)
}

// GetRunnerFactory performs a lookup for the given name (case-insensitive)
// in the registry. The result is nil if no factory was registered under the
// given name.
func GetRunnerFactory(name string) RunnerFactory {
	runnerRegistryLock.Lock()
	defer runnerRegistryLock.Unlock()
	return runnerRegistry[strings.ToLower(name)]
}

// GetAllRegisteredRunners obtains all registered implementations.
func GetAllRegisteredRunners() map[string]RunnerFactory {
	runnerRegistryLock.Lock()
	defer runnerRegistryLock.Unlock()
	return maps.Clone(runnerRegistry)
}

// RegisterRunnerFactory registers a new Runner implementation to be exported
// for general use in the binary. The name is not case-sensitive, and an
// error is returned if a factory was bound to the same name before, or the
// factory is nil. This function is mainly intended to be used by package
// initialization code.
func RegisterRunnerFactory(name string, factory RunnerFactory) error {
	key := strings.ToLower(name)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	runnerRegistryLock.Lock()
	defer runnerRegistryLock.Unlock()
	if _, found := runnerRegistry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	runnerRegistry[key] = factory
	return nil
}

// RunnerFactory is the type of a function that creates a new Runner using an
// engine specific configuration.
type RunnerFactory func(config any) (Runner, error)

// runnerRegistry is a global registry for Runner factories of different
// implementations and configurations.
var runnerRegistry = map[string]RunnerFactory{}

// runnerRegistryLock to protect access to the registry.
var runnerRegistryLock sync.Mutex
