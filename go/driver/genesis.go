// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	"github.com/fidelio-foundation/fidelio/go/fidelio"
	"github.com/fidelio-foundation/fidelio/go/genesis"
	"github.com/fidelio-foundation/fidelio/go/state"
)

var GenesisCmd = cli.Command{
	Name:  "genesis",
	Usage: "Inspects and applies genesis account files",
	Subcommands: []*cli.Command{
		&genesisCheckCmd,
		&genesisLoadCmd,
	},
}

var genesisCheckCmd = cli.Command{
	Action:    doGenesisCheck,
	Name:      "check",
	Usage:     "Validates a genesis file and prints a per-account summary",
	ArgsUsage: "<file>",
}

var genesisLoadCmd = cli.Command{
	Action:    doGenesisLoad,
	Name:      "load",
	Usage:     "Applies a genesis file to a database for offline inspection",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "db",
			Usage: "path of the database directory, in-memory if empty",
		},
	},
}

func readSpec(context *cli.Context) (genesis.Spec, error) {
	if context.Args().Len() != 1 {
		return nil, fmt.Errorf("expected one genesis file argument")
	}
	file, err := os.Open(context.Args().First())
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return genesis.Decode(file)
}

func doGenesisCheck(context *cli.Context) error {
	spec, err := readSpec(context)
	if err != nil {
		return err
	}

	addresses := maps.Keys(spec)
	sort.Slice(addresses, func(i, j int) bool {
		return bytes.Compare(addresses[i][:], addresses[j][:]) < 0
	})

	total := 0.0
	for _, address := range addresses {
		account := spec[address]
		balance, _ := account.Balance.ToBig().Float64()
		total += balance
		fmt.Printf("%v: nonce %d, balance %s, %d bytes of code, %d storage slots\n",
			address, account.Nonce,
			unitconv.FormatPrefix(balance, unitconv.SI, 3),
			len(account.Code), len(account.Storage),
		)
	}
	fmt.Printf("%d accounts, %s total supply\n",
		len(spec), unitconv.FormatPrefix(total, unitconv.SI, 3))
	return nil
}

func doGenesisLoad(context *cli.Context) error {
	spec, err := readSpec(context)
	if err != nil {
		return err
	}

	kv, err := state.NewLevelDBStore(context.String("db"))
	if err != nil {
		return err
	}
	defer kv.Close()

	// The load runs against a self-contained ledger; the resulting database
	// only holds the code and storage tables for offline inspection.
	ledger := fidelio.NewMemoryLedger()
	store, err := state.NewStore(kv, fidelio.HashedAddressMapping{}, ledger, ledger)
	if err != nil {
		return err
	}
	if err := genesis.Load(spec, store, fidelio.HashedAddressMapping{}, ledger, ledger); err != nil {
		return err
	}

	fmt.Printf("loaded %d accounts\n", len(spec))
	return nil
}
