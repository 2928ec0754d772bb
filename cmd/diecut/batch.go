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
	"os"
	"path/filepath"
	"strings"
	"sync"

	"seehuhn.de/go/diecut/geomx"
	"seehuhn.de/go/diecut/iox/dxf"
	"seehuhn.de/go/diecut/pipeline"
)

// itemStatus is the outcome of processing one file, mirroring the
// status vocabulary a batch driver reports per item.
type itemStatus int

const (
	itemPending itemStatus = iota
	itemCompleted
	itemFailed
	itemSkipped
)

func (s itemStatus) String() string {
	switch s {
	case itemCompleted:
		return "completed"
	case itemFailed:
		return "failed"
	case itemSkipped:
		return "skipped"
	default:
		return "pending"
	}
}

// itemResult records what happened to a single input file.
type itemResult struct {
	InputPath  string
	OutputPath string
	Status     itemStatus
	Err        error
	Stats      pipeline.Statistics
}

func (r itemResult) isSuccess() bool { return r.Status == itemCompleted }

// batchResult aggregates the outcome of a full run over many files.
type batchResult struct {
	mu    sync.Mutex
	Items []itemResult
}

func (b *batchResult) add(r itemResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Items = append(b.Items, r)
}

func (b *batchResult) counts() (completed, failed, skipped int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, it := range b.Items {
		switch it.Status {
		case itemCompleted:
			completed++
		case itemFailed:
			failed++
		case itemSkipped:
			skipped++
		}
	}
	return
}

func (b *batchResult) failedItems() []itemResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []itemResult
	for _, it := range b.Items {
		if it.Status == itemFailed {
			out = append(out, it)
		}
	}
	return out
}

// batchOptions configures how a set of files is turned into output
// files around a single pipeline.Options value.
type batchOptions struct {
	OutputDir         string
	OutputSuffix      string
	OverwriteExisting bool
	Concurrency       int
	PipelineOptions   pipeline.Options
}

// outputPathFor derives the destination path for an input path, given
// an output directory (empty means alongside the input) and a suffix
// inserted before the extension.
func outputPathFor(inputPath, outputDir, suffix string) string {
	dir := filepath.Dir(inputPath)
	if outputDir != "" {
		dir = outputDir
	}
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	return filepath.Join(dir, base+suffix+ext)
}

// runBatch fans work for paths out across a bounded goroutine pool,
// checking ctx for cancellation only between dispatches: once a file
// has been handed to processOne, that single file always runs to
// completion. This mirrors the batch processor's "cooperative between
// items, uninterruptible within an item" cancellation contract.
func runBatch(ctx context.Context, paths []string, opts batchOptions, processOne func(path string) itemResult) *batchResult {
	result := &batchResult{}
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for _, path := range paths {
		select {
		case <-ctx.Done():
			result.add(itemResult{InputPath: path, Status: itemSkipped, Err: ctx.Err()})
			continue
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			defer func() { <-sem }()
			result.add(processOne(p))
		}(path)
	}

	wg.Wait()
	return result
}

// processFile runs the full read-process-write cycle for one DXF-subset
// file and reports its outcome as an itemResult.
func processFile(inputPath string, opts batchOptions) itemResult {
	entities, err := readEntities(inputPath)
	if err != nil {
		return itemResult{InputPath: inputPath, Status: itemFailed, Err: err}
	}

	res := pipeline.Run(entities, opts.PipelineOptions)
	if !res.Success {
		return itemResult{InputPath: inputPath, Status: itemFailed, Err: fmt.Errorf("pipeline: %s", res.Message)}
	}

	outPath := outputPathFor(inputPath, opts.OutputDir, opts.OutputSuffix)
	if !opts.OverwriteExisting {
		if _, err := os.Stat(outPath); err == nil {
			return itemResult{InputPath: inputPath, Status: itemSkipped, Err: fmt.Errorf("output %s already exists", outPath)}
		}
	}
	if err := writeEntities(outPath, res.Entities); err != nil {
		return itemResult{InputPath: inputPath, Status: itemFailed, Err: err}
	}

	return itemResult{InputPath: inputPath, OutputPath: outPath, Status: itemCompleted, Stats: res.Statistics}
}

// readEntities opens path and decodes it as a DXF-subset file.
func readEntities(path string) ([]geomx.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return (dxf.Reader{}).Read(f)
}

// writeEntities writes entities to path in the DXF-subset format,
// creating or truncating the file.
func writeEntities(path string, entities []geomx.Entity) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return (dxf.Writer{}).Write(f, entities)
}
