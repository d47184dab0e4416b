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

	"github.com/aegiscache/aegiscache/keyname"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <item-key>",
	Short: "Print which of an item's substrate keys are present",
	Long: `inspect reports the liveness of an item's value, perms, and
private keys without running the permission check, for diagnosing the
partial-expiry behavior spec.md §3 and §5 document as expected ("perms
alive but value gone" reads as a miss, not corruption).`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
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

	itemKey := args[0]
	checks := []struct {
		label string
		key   string
	}{
		{"value", keyname.ItemValue(itemKey)},
		{"perms", keyname.ItemPerms(itemKey)},
	}

	for _, c := range checks {
		present, err := eng.substrate.Exists(ctx, c.key)
		if err != nil {
			return fmt.Errorf("checking %s: %w", c.key, err)
		}
		status := "absent"
		if present {
			status = "present"
		}
		fmt.Printf("%-8s %-40s %s\n", c.label, c.key, status)
	}

	perms, err := eng.substrate.SMembers(ctx, keyname.ItemPerms(itemKey))
	if err != nil {
		return fmt.Errorf("reading perms: %w", err)
	}
	fmt.Printf("perms: %v\n", perms)

	return nil
}
