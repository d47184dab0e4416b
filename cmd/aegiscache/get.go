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
	"os"

	"github.com/spf13/cobra"
)

var getClientID string

var getCmd = &cobra.Command{
	Use:   "get <item-key>",
	Short: "Authorize a client against an item and print its value on a hit",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVar(&getClientID, "client", "", "Reading client's ID")
	getCmd.MarkFlagRequired("client")
}

func runGet(cmd *cobra.Command, args []string) error {
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

	res, err := eng.facade.Get(ctx, getClientID, args[0])
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}
	if !res.Hit {
		fmt.Println("miss")
		os.Exit(1)
	}
	fmt.Println(string(res.Value))
	return nil
}
