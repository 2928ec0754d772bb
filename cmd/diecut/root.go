// seehuhn.de/go/diecut - die-cut layout processing pipeline
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	presetPath string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "diecut",
	Short: "diecut processes die-cut layout drawings into production-ready output",
	Long: `diecut reads a DXF-subset drawing, runs it through the bridge/plywood/
knife/text pipeline, and writes the result back out. Settings are taken
from the TOML preset file named by --preset, or from built-in defaults.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&presetPath, "preset", "", "path to a TOML preset file (defaults built in if omitted)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write structured JSON run logs to this file instead of stderr")
}

// initLogging installs the process-wide slog default handler. Without
// --log-file the default plain-text handler on stderr is left in
// place. With --log-file a JSON-lines handler writing to that file
// replaces it, so log records then go to the file only and no longer
// to stderr.
func initLogging() error {
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("diecut: open log file %s: %w", logFile, err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, nil)))
	return nil
}
