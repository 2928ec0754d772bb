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

package pipeline

import (
	"testing"
	"time"

	"seehuhn.de/go/diecut/annotate"
	"seehuhn.de/go/diecut/geomx"
	"seehuhn.de/go/diecut/paper"
)

func TestProcessEmptyInput(t *testing.T) {
	r := Run(nil, DefaultOptions())
	if !r.Success {
		t.Fatalf("expected success on empty input, got message %q", r.Message)
	}
	if len(r.Entities) != 0 {
		t.Fatalf("expected no entities, got %d", len(r.Entities))
	}
}

func TestProcessRemovesExternalElementKeepsPlywood(t *testing.T) {
	// Entity A lies outside the explicit plywood frame and is not in
	// the keep set; entity B carries the PLYWOOD layer and must
	// survive regardless of mode or position (scenario 6 in the
	// spec's end-to-end list).
	a := geomx.NewLine(geomx.Point{X: 0, Y: 1000}, geomx.Point{X: 50, Y: 1000}).
		WithAttrs(geomx.Attrs{Layer: "CUT", Color: geomx.ColorRed, Linetype: geomx.DefaultLinetype, Category: geomx.CategoryCut})
	b := geomx.NewLine(geomx.Point{X: 0, Y: 0}, geomx.Point{X: 50, Y: 0}).
		WithAttrs(geomx.Attrs{Layer: "PLYWOOD", Color: geomx.ColorWhite, Linetype: geomx.DefaultLinetype, Category: geomx.CategoryPlywood})

	size, err := paper.Custom(600, 500)
	if err != nil {
		t.Fatalf("paper.Custom: %v", err)
	}

	opts := DefaultOptions()
	opts.ConnectSegments = false
	opts.DecomposePolylines = false
	opts.ApplyBridges = false
	opts.ApplyStraightKnife = false
	opts.GenerateText = false
	opts.PaperSize = &size

	r := Run([]geomx.Entity{a, b}, opts)
	if !r.Success {
		t.Fatalf("Process failed: %s", r.Message)
	}

	var sawB bool
	for _, e := range r.Entities {
		if l, ok := e.(geomx.Line); ok && l.Attrs().Layer == "PLYWOOD" && l == b {
			sawB = true
		}
	}
	if !sawB {
		t.Fatalf("expected the original PLYWOOD-layer entity to survive removal")
	}
	if r.RemovedCount == 0 {
		t.Fatalf("expected at least one entity removed")
	}
}

func TestProcessAppliesBridgesToClassifiedCutLine(t *testing.T) {
	// L = 200mm on a CUT layer with the default profile yields 3
	// bridges (scenario 3), so apply_bridges must turn one line into
	// multiple segments.
	line := geomx.NewLine(geomx.Point{X: 0, Y: 0}, geomx.Point{X: 200, Y: 0}).
		WithAttrs(geomx.Attrs{Layer: "CUT", Color: geomx.DefaultColor, Linetype: geomx.DefaultLinetype})

	opts := DefaultOptions()
	opts.ConnectSegments = false
	opts.DecomposePolylines = false
	opts.GeneratePlywood = false
	opts.ApplyStraightKnife = false
	opts.GenerateText = false
	opts.RemoveExternal = false

	r := Run([]geomx.Entity{line}, opts)
	if !r.Success {
		t.Fatalf("Process failed: %s", r.Message)
	}

	var segments int
	for _, e := range r.Entities {
		if l, ok := e.(geomx.Line); ok && l.Attrs().Category == geomx.CategoryCut {
			segments++
		}
	}
	if segments != 4 { // 3 bridges split one line into 4 segments
		t.Fatalf("expected 4 segments after bridging, got %d", segments)
	}
	if r.Statistics.Cut != 4 {
		t.Fatalf("expected statistics.Cut == 4, got %d", r.Statistics.Cut)
	}
}

func TestProcessFrontSideMirrorsDrawing(t *testing.T) {
	line := geomx.NewLine(geomx.Point{X: 0, Y: 0}, geomx.Point{X: 10, Y: 0}).
		WithAttrs(geomx.Attrs{Layer: "CUT"})

	opts := DefaultOptions()
	opts.Side = annotate.Front
	opts.ConnectSegments = false
	opts.DecomposePolylines = false
	opts.ApplyBridges = false
	opts.GeneratePlywood = false
	opts.ApplyStraightKnife = false
	opts.GenerateText = false
	opts.RemoveExternal = false

	r := Run([]geomx.Entity{line}, opts)
	if !r.Success {
		t.Fatalf("Process failed: %s", r.Message)
	}
	mirrored := r.Entities[0].(geomx.Line)
	// The drawing bbox is (0,0)-(10,0), centre x = 5; mirroring about
	// the centre maps Start<->End on the x axis.
	if mirrored.Start.X != 10 || mirrored.End.X != 0 {
		t.Fatalf("expected mirrored endpoints (10,0)->(0,0), got %v->%v", mirrored.Start, mirrored.End)
	}
}

func TestProcessGeneratesTextAgainstPlywoodFrame(t *testing.T) {
	line := geomx.NewLine(geomx.Point{X: 0, Y: 0}, geomx.Point{X: 100, Y: 0}).
		WithAttrs(geomx.Attrs{Layer: "CUT"})

	job := annotate.JobInfo{
		Date:        time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC),
		JobNumber:   "42",
		PackageName: "sample box",
		Side:        annotate.Back,
		PlateType:   annotate.Copper,
	}

	opts := DefaultOptions()
	opts.ApplyStraightKnife = false
	opts.RemoveExternal = false
	opts.JobInfo = &job

	r := Run([]geomx.Entity{line}, opts)
	if !r.Success {
		t.Fatalf("Process failed: %s", r.Message)
	}
	if r.Statistics.Text != 3 {
		t.Fatalf("expected 3 text entities, got %d", r.Statistics.Text)
	}
}
