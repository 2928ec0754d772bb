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

// Package pipeline drives the die-cut layout components in the fixed
// order the system describes: connect, decompose, classify, bridge,
// mirror, plywood, knife, text, remove, statistics. It is the only
// package in this module that knows the whole shape of a run; every
// stage it calls is otherwise independent and ignorant of the others.
package pipeline

import (
	"fmt"

	"seehuhn.de/go/diecut/annotate"
	"seehuhn.de/go/diecut/bridge"
	"seehuhn.de/go/diecut/classify"
	"seehuhn.de/go/diecut/connect"
	"seehuhn.de/go/diecut/decompose"
	"seehuhn.de/go/diecut/geomx"
	"seehuhn.de/go/diecut/knife"
	"seehuhn.de/go/diecut/paper"
	"seehuhn.de/go/diecut/plywood"
	"seehuhn.de/go/diecut/remove"
)

// Options is the single parameter record accepted by Run.
type Options struct {
	Side      annotate.Side
	PlateType annotate.PlateType

	ConnectSegments    bool
	DecomposePolylines bool
	ApplyBridges       bool
	GeneratePlywood    bool
	ApplyStraightKnife bool
	GenerateText       bool
	RemoveExternal     bool

	// JobInfo, if non-nil, is the record GenerateText positions
	// against the plywood frame. Text generation is skipped if
	// GenerateText is true but JobInfo is nil.
	JobInfo *annotate.JobInfo

	// PaperSize, if non-nil, fixes the plywood frame to (0, 0,
	// PaperSize.Width, PaperSize.Height) instead of deriving it from
	// the drawing's bounding box.
	PaperSize *paper.Size

	CutBridgeSettings    bridge.Settings
	CreaseBridgeSettings bridge.Settings
	ConnectionTolerance  float64

	ClassifierUnknown classify.UnclassifiedHandling

	// PlywoodMargins overrides the margin profile used when the
	// plywood frame is derived from the drawing's bounding box. The
	// zero value means "derive the default profile from PlateType".
	PlywoodMargins   plywood.Margins
	RemoveSettings   remove.Settings
	AnnotateSettings annotate.Settings

	// SideMarker, if true, additionally emits the optional side-marker
	// text from §4.9 inside the drawing bbox.
	SideMarker bool
}

// DefaultOptions returns an Options value with every stage enabled and
// every nested settings record at its package default, suitable as a
// starting point a caller overrides selectively.
func DefaultOptions() Options {
	return Options{
		Side:                 annotate.Back,
		PlateType:            annotate.Copper,
		ConnectSegments:      true,
		DecomposePolylines:   true,
		ApplyBridges:         true,
		GeneratePlywood:      true,
		ApplyStraightKnife:   true,
		GenerateText:         true,
		RemoveExternal:       true,
		CutBridgeSettings:    bridge.ForCut(),
		CreaseBridgeSettings: bridge.ForCrease(),
		ConnectionTolerance:  connect.Default().Tolerance,
		ClassifierUnknown:    classify.TreatAsCut,
		RemoveSettings:       remove.Default(),
		AnnotateSettings:     annotate.DefaultSettings(),
	}
}

// Statistics tallies the final entity list by category, plus text
// entities (which carry no line category of their own).
type Statistics struct {
	Cut, Crease, Auxiliary, Plywood, Text, Unknown int
}

// Result is the output of a single Run call.
type Result struct {
	Entities        []geomx.Entity
	Success         bool
	Message         string
	Statistics      Statistics
	RemovedCount    int
	ConnectionCount int
	PolylineCount   int
	SkippedSegments int
}

// Run drives the pipeline over entities under opts in the fixed
// 11-step order from §4.10 and returns the resulting entity list plus
// statistics. Run never panics: any internal invariant violation is
// recovered at this boundary and reported as a failed Result rather
// than propagated to the caller, so a corrupt-but-parseable input can
// never crash a batch run built on top of this package.
func Run(entities []geomx.Entity, opts Options) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Success: false, Message: fmt.Sprintf("pipeline: %v", r)}
		}
	}()
	return process(entities, opts)
}

func process(entities []geomx.Entity, opts Options) Result {
	if len(entities) == 0 {
		return Result{Success: true, Message: "no entities to process", Entities: nil}
	}

	working := append([]geomx.Entity(nil), entities...)

	var connectionCount int
	if opts.ConnectSegments {
		settings := connect.Default()
		settings.Tolerance = opts.ConnectionTolerance
		connected, n := connect.Connect(working, settings)
		working = connected
		connectionCount = n
	}

	var polylineCount, skippedSegments int
	if opts.DecomposePolylines {
		decomposed := make([]geomx.Entity, 0, len(working))
		for _, e := range working {
			pl, ok := e.(geomx.Polyline)
			if !ok {
				decomposed = append(decomposed, e)
				continue
			}
			polylineCount++
			segs := decompose.Polyline(pl)
			skippedSegments += pl.SegmentCount() - len(segs)
			decomposed = append(decomposed, segs...)
		}
		working = decomposed
	}

	classifier := &classify.Classifier{
		Layers:  classify.DefaultLayerTable(),
		Colors:  classify.DefaultColorTable(),
		Unknown: opts.ClassifierUnknown,
	}
	working, _ = classifier.Classify(working)

	if opts.ApplyBridges {
		bridged := make([]geomx.Entity, 0, len(working))
		for _, e := range working {
			line, ok := e.(geomx.Line)
			if !ok {
				bridged = append(bridged, e)
				continue
			}
			switch line.Attrs().Category {
			case geomx.CategoryCut:
				for _, seg := range bridge.Apply(line, opts.CutBridgeSettings) {
					bridged = append(bridged, seg)
				}
			case geomx.CategoryCrease:
				for _, seg := range bridge.Apply(line, opts.CreaseBridgeSettings) {
					bridged = append(bridged, seg)
				}
			default:
				bridged = append(bridged, e)
			}
		}
		working = bridged
	}

	if opts.Side == annotate.Front {
		if drawingBBox, ok := geomx.UnionAll(working); ok {
			centre := drawingBBox.Center().X
			mirrored := make([]geomx.Entity, len(working))
			for i, e := range working {
				mirrored[i] = e.MirrorX(centre)
			}
			working = mirrored
		}
	}

	var plywoodBBox geomx.BBox
	var havePlywood bool
	nonPlywood := nonPlywoodEntities(working)
	if opts.GeneratePlywood {
		if _, any := geomx.UnionAll(nonPlywood); any {
			if opts.PaperSize != nil {
				lines, bbox := plywood.FromPaperSize(opts.PaperSize.Width, opts.PaperSize.Height)
				for _, l := range lines {
					working = append(working, l)
				}
				plywoodBBox = bbox
				havePlywood = true
			} else {
				lines, bbox, ok := plywood.FromDrawing(nonPlywood, marginsFor(opts))
				if ok {
					for _, l := range lines {
						working = append(working, l)
					}
					plywoodBBox = bbox
					havePlywood = true
				}
			}
		}
	}

	drawingBBox, haveDrawing := geomx.UnionAll(nonPlywoodEntities(working))

	if opts.ApplyStraightKnife && havePlywood && haveDrawing {
		ys := knife.CentreY(drawingBBox)
		for _, seg := range knife.Generate(drawingBBox, plywoodBBox, ys, true, opts.CutBridgeSettings) {
			working = append(working, seg)
		}
	}

	if opts.GenerateText && opts.JobInfo != nil && havePlywood {
		working = append(working, annotate.Generate(plywoodBBox, *opts.JobInfo, opts.AnnotateSettings)...)
		if opts.SideMarker && haveDrawing {
			working = append(working, annotate.SideMarker(drawingBBox, *opts.JobInfo, opts.AnnotateSettings))
		}
	}

	var removedCount int
	if opts.RemoveExternal && havePlywood {
		removed, n := remove.Remove(working, plywoodBBox, remove.Settings{
			Mode:           remove.RemoveAll,
			ExcludeLayers:  opts.RemoveSettings.ExcludeLayers,
			KeepCategories: opts.RemoveSettings.KeepCategories,
		})
		working = removed
		removedCount = n
	}

	return Result{
		Entities:        working,
		Success:         true,
		Message:         "ok",
		Statistics:      statistics(working),
		RemovedCount:    removedCount,
		ConnectionCount: connectionCount,
		PolylineCount:   polylineCount,
		SkippedSegments: skippedSegments,
	}
}

// marginsFor returns opts.PlywoodMargins if the caller set a non-zero
// profile, otherwise the default profile for opts.PlateType.
func marginsFor(opts Options) plywood.Margins {
	if opts.PlywoodMargins != (plywood.Margins{}) {
		return opts.PlywoodMargins
	}
	plate := plywood.PlateCopper
	if opts.PlateType == annotate.Auto {
		plate = plywood.PlateAuto
	}
	return plywood.DefaultMargins(plate)
}

func nonPlywoodEntities(entities []geomx.Entity) []geomx.Entity {
	out := make([]geomx.Entity, 0, len(entities))
	for _, e := range entities {
		if e.Attrs().Category != geomx.CategoryPlywood {
			out = append(out, e)
		}
	}
	return out
}

func statistics(entities []geomx.Entity) Statistics {
	var s Statistics
	for _, e := range entities {
		if _, isText := e.(geomx.Text); isText {
			s.Text++
			continue
		}
		switch e.Attrs().Category {
		case geomx.CategoryCut:
			s.Cut++
		case geomx.CategoryCrease:
			s.Crease++
		case geomx.CategoryAuxiliary:
			s.Auxiliary++
		case geomx.CategoryPlywood:
			s.Plywood++
		default:
			s.Unknown++
		}
	}
	return s
}

// FailureResult constructs a Result representing an orchestrator-level
// failure, for use by a caller-side stage (for example a paper-size or
// job-info validation step) that runs before Run is invoked.
func FailureResult(message string) Result {
	return Result{Success: false, Message: message}
}
