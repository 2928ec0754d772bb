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
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/diecut/annotate"
	"seehuhn.de/go/diecut/pipeline"
)

var (
	processOutputDir    string
	processOutputSuffix string
	processOverwrite    bool
	processSide         string
	processPlateType    string
	processJobNumber    string
	processPackageName  string
)

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processOutputDir, "output-dir", "o", "", "output directory (default: alongside each input file)")
	processCmd.Flags().StringVar(&processOutputSuffix, "suffix", "_out", "suffix inserted before the extension of each output file")
	processCmd.Flags().BoolVar(&processOverwrite, "overwrite", false, "overwrite existing output files")
	processCmd.Flags().StringVar(&processSide, "side", "", "override the preset's side (\"front\" or \"back\")")
	processCmd.Flags().StringVar(&processPlateType, "plate", "", "override the preset's plate type (\"copper\" or \"auto\")")
	processCmd.Flags().StringVar(&processJobNumber, "job-number", "", "job number stamped onto the generated annotation text")
	processCmd.Flags().StringVar(&processPackageName, "package-name", "", "package name stamped onto the generated annotation text")
}

var processCmd = &cobra.Command{
	Use:   "process <file>...",
	Short: "run the die-cut pipeline over one or more DXF-subset files",
	Long: `process reads each named file as a DXF-subset drawing, runs it
through the configured pipeline, and writes the resulting drawing
next to the input (or into --output-dir). Multiple files are processed
concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		opts.JobInfo = &annotate.JobInfo{
			Date:        time.Now(),
			JobNumber:   processJobNumber,
			PackageName: processPackageName,
			Side:        opts.Side,
			PlateType:   opts.PlateType,
		}

		bopts := batchOptions{
			OutputDir:         processOutputDir,
			OutputSuffix:      processOutputSuffix,
			OverwriteExisting: processOverwrite,
			Concurrency:       defaultConcurrency(),
			PipelineOptions:   opts,
		}

		result := runBatch(context.Background(), args, bopts, func(path string) itemResult {
			return processFile(path, bopts)
		})

		return reportResult(cmd, result)
	},
}

// loadOptions resolves the effective pipeline.Options: a TOML preset
// named by --preset if given, pipeline.DefaultOptions() otherwise, with
// --side/--plate applied on top.
func loadOptions() (pipeline.Options, error) {
	p, err := loadPreset()
	if err != nil {
		return pipeline.Options{}, err
	}
	if processSide != "" {
		p.Side = processSide
	}
	if processPlateType != "" {
		p.PlateType = processPlateType
	}
	return p.ToOptions()
}

// defaultConcurrency picks a worker count for batch processing. It is
// deliberately small and fixed rather than GOMAXPROCS-derived: pipeline
// runs are CPU-light and I/O-bound, so oversubscribing workers buys
// little and a fixed cap keeps output ordering easy to reason about
// when watching a directory.
func defaultConcurrency() int {
	return 4
}

// reportResult prints a one-line summary per file plus totals, and
// returns a non-nil error if any file failed.
func reportResult(cmd *cobra.Command, result *batchResult) error {
	for _, item := range result.Items {
		switch item.Status {
		case itemCompleted:
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (cut=%d crease=%d aux=%d)\n",
				item.InputPath, filepath.Base(item.OutputPath),
				item.Stats.Cut, item.Stats.Crease, item.Stats.Auxiliary)
		case itemFailed:
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: FAILED: %v\n", item.InputPath, item.Err)
		case itemSkipped:
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: skipped: %v\n", item.InputPath, item.Err)
		}
	}
	completed, failed, skipped := result.counts()
	fmt.Fprintf(cmd.OutOrStdout(), "%d completed, %d failed, %d skipped\n", completed, failed, skipped)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(result.Items))
	}
	return nil
}
