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
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"seehuhn.de/go/diecut/annotate"
	"seehuhn.de/go/diecut/iox/preset"
)

// presetLike is the in-memory preset value both process and watch
// resolve into a pipeline.Options; aliased here so watch.go does not
// need to repeat preset.Preset's import in two places.
type presetLike = preset.Preset

// loadPreset resolves --preset into a Preset, falling back to
// preset.Default() when the flag was not given.
func loadPreset() (presetLike, error) {
	if presetPath == "" {
		return preset.Default(), nil
	}
	return preset.Open(presetPath)
}

var (
	watchOutputDir    string
	watchOutputSuffix string
	watchOverwrite    bool
	watchSide         string
	watchPlateType    string
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOutputDir, "output-dir", "o", "", "output directory (default: alongside each input file)")
	watchCmd.Flags().StringVar(&watchOutputSuffix, "suffix", "_out", "suffix inserted before the extension of each output file")
	watchCmd.Flags().BoolVar(&watchOverwrite, "overwrite", false, "overwrite existing output files")
	watchCmd.Flags().StringVar(&watchSide, "side", "", "override the preset's side (\"front\" or \"back\")")
	watchCmd.Flags().StringVar(&watchPlateType, "plate", "", "override the preset's plate type (\"copper\" or \"auto\")")
}

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "watch a directory and process every .dxf file that appears in it",
	Long: `watch monitors a directory with fsnotify and runs the pipeline over
every ".dxf" file that is created or written there, until interrupted
with SIGINT or SIGTERM. Files already in flight are allowed to finish;
no new file is dispatched once a shutdown has been requested.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		p, err := loadWatchOptions()
		if err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		defer watcher.Close()
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch: add %s: %w", dir, err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		bopts := batchOptions{
			OutputDir:         watchOutputDir,
			OutputSuffix:      watchOutputSuffix,
			OverwriteExisting: watchOverwrite,
			Concurrency:       defaultConcurrency(),
		}
		bopts.PipelineOptions, err = p.ToOptions()
		if err != nil {
			return err
		}
		bopts.PipelineOptions.JobInfo = &annotate.JobInfo{
			Date:      time.Now(),
			Side:      bopts.PipelineOptions.Side,
			PlateType: bopts.PipelineOptions.PlateType,
		}

		return runWatchLoop(ctx, cmd, watcher, dir, bopts)
	},
}

func loadWatchOptions() (presetLike, error) {
	p, err := loadPreset()
	if err != nil {
		return p, err
	}
	if watchSide != "" {
		p.Side = watchSide
	}
	if watchPlateType != "" {
		p.PlateType = watchPlateType
	}
	return p, nil
}

// runWatchLoop dispatches one goroutine per qualifying fsnotify event
// into a bounded worker pool, checking ctx only between dispatches: a
// file already handed to processFile always runs to completion even
// after cancellation is requested, matching §5's batch semantics.
func runWatchLoop(ctx context.Context, cmd *cobra.Command, watcher *fsnotify.Watcher, dir string, bopts batchOptions) error {
	sem := make(chan struct{}, max(bopts.Concurrency, 1))
	var wg sync.WaitGroup
	var results batchResult

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			completed, failed, skipped := results.counts()
			fmt.Fprintf(cmd.OutOrStdout(), "watch stopped: %d completed, %d failed, %d skipped\n", completed, failed, skipped)
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				wg.Wait()
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".dxf") {
				continue
			}

			path := event.Name
			sem <- struct{}{}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				r := processFile(path, bopts)
				results.add(r)
				if r.isSuccess() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", r.InputPath, r.OutputPath)
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.InputPath, r.Err)
				}
			}()
		case err, ok := <-watcher.Errors:
			if !ok {
				wg.Wait()
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
		}
	}
}

