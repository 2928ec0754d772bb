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

// Package plywood builds the rectangular plywood frame around a
// drawing, either from its bounding box (expanded by a margin profile)
// or from an explicit paper size.
package plywood

import (
	"seehuhn.de/go/diecut/dieerr"
	"seehuhn.de/go/diecut/geomx"
)

// PlateType selects the bottom-margin variant of a margin profile.
type PlateType int

const (
	PlateCopper PlateType = iota
	PlateAuto
)

// Margins is a margin profile: top/left/right are shared across plate
// types, bottom varies.
type Margins struct {
	Top, Left, Right, Bottom float64
}

// DefaultMargins returns the margin profile for the given plate type:
// top 55, left 25, right 25, and bottom 25 (copper) or 15 (auto).
func DefaultMargins(plate PlateType) Margins {
	bottom := 25.0
	if plate == PlateAuto {
		bottom = 15.0
	}
	return Margins{Top: 55, Left: 25, Right: 25, Bottom: bottom}
}

func (m Margins) toBBoxMargins() geomx.Margins {
	return geomx.Margins{Top: m.Top, Bottom: m.Bottom, Left: m.Left, Right: m.Right}
}

// attrs returns the fixed plywood-entity attributes: layer "PLYWOOD",
// white color, category PLYWOOD.
func attrs() geomx.Attrs {
	return geomx.Attrs{
		Layer:    "PLYWOOD",
		Color:    geomx.ColorWhite,
		Linetype: geomx.DefaultLinetype,
		Category: geomx.CategoryPlywood,
	}
}

// FromDrawing computes the bbox of entities, expands it by margins,
// and returns the four frame lines (bottom, right, top, left) plus
// the resulting plywood bbox. If entities is empty, ok is false.
func FromDrawing(entities []geomx.Entity, margins Margins) (lines []geomx.Line, bbox geomx.BBox, ok bool) {
	drawingBBox, any := geomx.UnionAll(entities)
	if !any {
		return nil, geomx.BBox{}, false
	}
	expanded, err := drawingBBox.Expand(margins.toBBoxMargins())
	if err != nil {
		dieerr.LogSkip("plywood margins invalid", "error", err)
		return nil, geomx.BBox{}, false
	}
	return frameLines(expanded), expanded, true
}

// FromPaperSize builds the plywood bbox as (0,0,width,height) and
// returns its four frame lines.
func FromPaperSize(width, height float64) ([]geomx.Line, geomx.BBox) {
	bbox := geomx.BBox{MinX: 0, MinY: 0, MaxX: width, MaxY: height}
	return frameLines(bbox), bbox
}

// frameLines emits the four rectangle edges in bottom, right, top,
// left order, each carrying the plywood attribute set.
func frameLines(b geomx.BBox) []geomx.Line {
	a := attrs()
	bl := geomx.Point{X: b.MinX, Y: b.MinY}
	br := geomx.Point{X: b.MaxX, Y: b.MinY}
	tr := geomx.Point{X: b.MaxX, Y: b.MaxY}
	tl := geomx.Point{X: b.MinX, Y: b.MaxY}
	return []geomx.Line{
		geomx.NewLine(bl, br).WithAttrs(a), // bottom
		geomx.NewLine(br, tr).WithAttrs(a), // right
		geomx.NewLine(tr, tl).WithAttrs(a), // top
		geomx.NewLine(tl, bl).WithAttrs(a), // left
	}
}
