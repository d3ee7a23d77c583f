// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package dispatch

// Config is the engine configuration shared by every dispatch. It is built
// once at startup and passed by reference; it must never be mutated at
// runtime.
type Config struct {
	// ChainID of the EVM-visible chain hosted by the bridge.
	ChainID uint64
	// Ruleset names the EVM specification revision the injected engine is
	// expected to apply.
	Ruleset string
}

const RulesetIstanbul = "istanbul"

// istanbulConfig is the process-wide default ruleset.
var istanbulConfig = Config{
	ChainID: 1,
	Ruleset: RulesetIstanbul,
}

func DefaultConfig() *Config {
	return &istanbulConfig
}
