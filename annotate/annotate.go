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

// Package annotate generates the job-info and side-marker text
// entities positioned against the plywood frame.
package annotate

import (
	"fmt"
	"time"

	"seehuhn.de/go/diecut/geomx"
)

// Side identifies which face of the sheet a layout applies to.
type Side int

const (
	Front Side = iota
	Back
)

func (s Side) label() string {
	if s == Front {
		return "앞"
	}
	return "뒤"
}

// PlateType identifies the plate material a layout is cut for.
type PlateType int

const (
	Copper PlateType = iota
	Auto
)

func (p PlateType) label() string {
	if p == Copper {
		return "동판"
	}
	return "자동"
}

// JobInfo is the job record carried by a text-generation request.
type JobInfo struct {
	Date        time.Time
	JobNumber   string
	PackageName string
	Side        Side
	PlateType   PlateType
}

// Settings configures text sizing and placement.
type Settings struct {
	TextHeight        float64
	LineSpacing       float64
	MarginFromPlywood float64
}

// DefaultSettings returns text_height=3.5mm, line_spacing=1.5,
// margin_from_plywood=5.0mm.
func DefaultSettings() Settings {
	return Settings{TextHeight: 3.5, LineSpacing: 1.5, MarginFromPlywood: 5.0}
}

func attrs(height float64) geomx.Attrs {
	return geomx.Attrs{
		Layer:    "TEXT",
		Color:    geomx.DefaultColor,
		Linetype: geomx.DefaultLinetype,
		Category: geomx.CategoryUnknown,
	}
}

// Generate returns the three job-info text entities stacked above P's
// top edge at x = P.MinX, starting at y = P.MaxY + margin and
// incrementing by height*lineSpacing per line.
func Generate(p geomx.BBox, job JobInfo, s Settings) []geomx.Entity {
	lines := []string{
		fmt.Sprintf("%s  No.%s", job.Date.Format("2006-01-02"), job.JobNumber),
		job.PackageName,
		fmt.Sprintf("%s  %s", job.Side.label(), job.PlateType.label()),
	}

	a := attrs(s.TextHeight)
	out := make([]geomx.Entity, 0, len(lines))
	y := p.MaxY + s.MarginFromPlywood
	step := s.TextHeight * s.LineSpacing
	for _, content := range lines {
		out = append(out, geomx.NewText(content, geomx.Point{X: p.MinX, Y: y}, s.TextHeight, 0).WithAttrs(a))
		y += step
	}
	return out
}

// SideMarker returns the optional side-marker text placed inside the
// drawing bbox near its bottom-right corner, at double the normal text
// height.
func SideMarker(drawing geomx.BBox, job JobInfo, s Settings) geomx.Entity {
	position := geomx.Point{X: drawing.MaxX - 20, Y: drawing.MinY + 10}
	content := job.Side.label()
	return geomx.NewText(content, position, s.TextHeight*2, 0).WithAttrs(attrs(s.TextHeight * 2))
}
