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

// Command aegiscache is the reference front-end for the access-aware
// cache engine: a server that exposes the engine's Redis substrate over
// its own admin HTTP endpoints (metrics, health), plus operator
// subcommands for poking at the cache from a terminal. Wiring the
// engine into a running process is explicitly out of scope for the
// engine package itself (spec.md §1); this binary is that wiring.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "aegiscache",
	Short: "Access-aware cache engine server and admin CLI",
	Long: `aegiscache runs the access-aware cache engine against a Redis
substrate and exposes its admin HTTP surface (metrics, health probes).

Configuration can be provided via:
  - a YAML or JSON config file (--config)
  - AEGISCACHE_<SECTION>_<FIELD> environment variables
  - command-line flags (highest priority)`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to configuration file (YAML or JSON)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
