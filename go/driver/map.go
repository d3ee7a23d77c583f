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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/fidelio-foundation/fidelio/go/fidelio"
)

var MapCmd = cli.Command{
	Action:    doMap,
	Name:      "map",
	Usage:     "Prints the native identities an EVM address maps to",
	ArgsUsage: "<address>",
}

func doMap(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected one address argument")
	}

	var address fidelio.Address
	if err := address.UnmarshalText([]byte(context.Args().First())); err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}

	fmt.Printf("address:  %v\n", address)
	fmt.Printf("identity: %v\n", fidelio.IdentityAddressMapping{}.IntoNativeIdentity(address))
	fmt.Printf("hashed:   %v\n", fidelio.HashedAddressMapping{}.IntoNativeIdentity(address))
	return nil
}
