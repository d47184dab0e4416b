// Copyright (C) 2025 aegiscache
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	setClientID string
	setPerms    []string
)

var setCmd = &cobra.Command{
	Use:   "set <item-key> <value>",
	Short: "Store a protected item and propagate its permissions",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

func init() {
	setCmd.Flags().StringVar(&setClientID, "client", "", "Writing client's ID")
	setCmd.Flags().StringSliceVar(&setPerms, "perm", nil, "Permission token to grant (repeatable)")
	setCmd.MarkFlagRequired("client")
}

func runSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	eng, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer eng.Close(ctx)

	itemKey, value := args[0], args[1]
	if err := eng.facade.Set(ctx, itemKey, []byte(value), cfg.Cache.ItemTTL, setClientID, setPerms...); err != nil {
		return fmt.Errorf("set failed: %w", err)
	}

	fmt.Printf("stored %q (%d perms granted to %s)\n", itemKey, len(setPerms), setClientID)
	return nil
}
